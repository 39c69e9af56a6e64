// Package workload describes batches of window queries.
//
// A workload file is TOML:
//
//	[[window]]
//	name  = "center"
//	lower = [10, 10]
//	upper = [90, 90]
package workload

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/valyala/fastrand"

	"github.com/go-sod/rango/internal/geom"
)

var ErrBadWindow = errors.New("bad window")

// Window is a query box given by two opposite corners.
type Window struct {
	Name  string     `toml:"name"`
	Lower geom.Point `toml:"lower"`
	Upper geom.Point `toml:"upper"`
}

type file struct {
	Windows []Window `toml:"window"`
}

// Load reads windows from a TOML file and checks they cover dims axes.
func Load(path string, dims int) ([]Window, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode workload %s: %w", path, err)
	}
	return check(f.Windows, dims)
}

// Decode is Load over TOML text.
func Decode(data string, dims int) ([]Window, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode workload: %w", err)
	}
	return check(f.Windows, dims)
}

func check(windows []Window, dims int) ([]Window, error) {
	for i := range windows {
		w := &windows[i]
		if w.Name == "" {
			w.Name = "window-" + strconv.Itoa(i)
		}
		if w.Lower.Dimensions() < dims || w.Upper.Dimensions() < dims {
			return nil, fmt.Errorf("%w: %s has %d and %d coordinates, want %d",
				ErrBadWindow, w.Name, w.Lower.Dimensions(), w.Upper.Dimensions(), dims)
		}
	}
	return windows, nil
}

// Random returns n windows with both corners drawn from [0, max) on every axis.
func Random(rng *fastrand.RNG, n, dims, max int) []Window {
	corners := geom.Random(rng, 2*n, dims, max)
	windows := make([]Window, n)
	for i := range windows {
		windows[i] = Window{
			Name:  "random-" + strconv.Itoa(i),
			Lower: corners[2*i],
			Upper: corners[2*i+1],
		}
	}
	return windows
}
