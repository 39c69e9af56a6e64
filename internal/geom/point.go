package geom

import (
	"strconv"
	"strings"

	"github.com/go-sod/rango/pkg/container/rangetree"
)

var _ rangetree.Point = Point{}

// Point is an integer coordinate vector.
type Point []int

func New(coords ...int) Point {
	return coords
}

func (v Point) Dimensions() int {
	return len(v)
}

func (v Point) Dim(idx int) int {
	return v[idx]
}

func (v Point) Coords() []int {
	return v
}

func (v Point) Copy() Point {
	var v1 = make(Point, len(v))
	copy(v1, v)
	return v1
}

func (v Point) SizeEqual(vec Point) bool {
	return len(v) == len(vec)
}

func (v Point) Equal(vec Point) bool {
	if len(v) != len(vec) {
		return false
	}
	for i, value := range v {
		if vec[i] != value {
			return false
		}
	}
	return true
}

// String formats the point as "(x, y, ...)".
func (v Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(')')
	return b.String()
}

// Of converts generic points to Points. Points of another type are copied
// coordinate by coordinate.
func Of(points []rangetree.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		if gp, ok := p.(Point); ok {
			out[i] = gp
			continue
		}
		gp := make(Point, p.Dimensions())
		for j := range gp {
			gp[j] = p.Dim(j)
		}
		out[i] = gp
	}
	return out
}

// Items converts Points to the interface slice the containers accept.
func Items(points []Point) []rangetree.Point {
	items := make([]rangetree.Point, len(points))
	for i := range points {
		items[i] = points[i]
	}
	return items
}
