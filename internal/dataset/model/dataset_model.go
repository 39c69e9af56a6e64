package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-sod/rango/internal/geom"
)

func NewDataset(name string, dims int, points []geom.Point, createdAt time.Time) Dataset {
	return Dataset{
		ID:         uuid.New(),
		Name:       name,
		Dimensions: dims,
		Points:     points,
		CreatedAt:  createdAt,
	}
}

// Dataset is a named point set a range tree can be built from.
type Dataset struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Dimensions int          `json:"dimensions"`
	Points     []geom.Point `json:"points"`
	CreatedAt  time.Time    `json:"createdAt"`
}

func (d Dataset) Len() int {
	return len(d.Points)
}
