package brute

import (
	"context"
	"fmt"

	"github.com/go-sod/rango/pkg/container/rangetree"
)

// New returns a linear scan searcher over points. It answers the same
// window queries as rangetree.Tree and serves as its reference.
func New(points []rangetree.Point, dims int) (*Index, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%w: dimensions %d", rangetree.ErrInvalidDimension, dims)
	}
	for i, p := range points {
		if p == nil || p.Dimensions() != dims {
			return nil, fmt.Errorf("%w: point %d", rangetree.ErrDimensionMismatch, i)
		}
	}
	data := make([]rangetree.Point, len(points))
	copy(data, points)
	return &Index{dims: dims, data: data}, nil
}

type Index struct {
	dims int
	data []rangetree.Point
}

func (b *Index) Len() int {
	return len(b.data)
}

func (b *Index) Dimensions() int {
	return b.dims
}

func (b *Index) Query(a, c rangetree.Point) ([]rangetree.Point, error) {
	return b.QueryContext(context.Background(), a, c)
}

func (b *Index) QueryContext(ctx context.Context, a, c rangetree.Point) ([]rangetree.Point, error) {
	ids, err := b.scan(ctx, a, c)
	if err != nil {
		return nil, err
	}
	points := make([]rangetree.Point, len(ids))
	for i, id := range ids {
		points[i] = b.data[id]
	}
	return points, nil
}

func (b *Index) QueryIDs(a, c rangetree.Point) ([]int, error) {
	return b.scan(context.Background(), a, c)
}

func (b *Index) scan(ctx context.Context, a, c rangetree.Point) ([]int, error) {
	w, err := rangetree.Window(a, c, b.dims)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := []int{}
	for i, p := range b.data {
		if rangetree.Inside(w, p) {
			ids = append(ids, i)
		}
	}
	return ids, nil
}
