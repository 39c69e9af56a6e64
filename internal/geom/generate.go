package geom

import (
	"github.com/valyala/fastrand"
)

// DefaultMaxCoord bounds generated coordinates when no limit is given.
const DefaultMaxCoord = 1000000

// NewRNG returns a generator seeded with seed. Zero leaves it to be seeded
// from the runtime on first use.
func NewRNG(seed uint32) *fastrand.RNG {
	rng := &fastrand.RNG{}
	if seed != 0 {
		rng.Seed(seed)
	}
	return rng
}

// Random returns n points of dims coordinates drawn uniformly from [0, max).
func Random(rng *fastrand.RNG, n, dims, max int) []Point {
	if max <= 0 {
		max = DefaultMaxCoord
	}
	points := make([]Point, n)
	for i := range points {
		p := make(Point, dims)
		for j := range p {
			p[j] = int(rng.Uint32n(uint32(max)))
		}
		points[i] = p
	}
	return points
}

// Known returns n points where coordinate j of point i is i+j.
func Known(n, dims int) []Point {
	points := make([]Point, n)
	for i := range points {
		p := make(Point, dims)
		for j := range p {
			p[j] = i + j
		}
		points[i] = p
	}
	return points
}
