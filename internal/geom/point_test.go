package geom

import "testing"

func TestPoint_Dimensions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		expected int
	}{
		{name: "positive", p: New(1, 2, 3, 4, 5), expected: 5},
		{name: "empty", p: New(), expected: 0},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cmp := test.p.Dimensions()
			if cmp != test.expected {
				t.Errorf("the comparison is incorrect got: %v, expected: %v", cmp, test.expected)
			}
		})
	}
}

func TestPoint_Dim(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		expected int
		idx      int
	}{
		{name: "first", p: New(1, 2, 3), idx: 0, expected: 1},
		{name: "middle", p: New(1, 2, 3), idx: 1, expected: 2},
		{name: "last", p: New(1, 2, 3), idx: 2, expected: 3},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := test.p.Dim(test.idx)
			if test.expected != got {
				t.Errorf("dimension specified incorrectly, got: %d, expected: %d", got, test.expected)
			}
		})
	}
}

func TestPoint_Equal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected bool
	}{
		{name: "positive", p: Point{10, 10}, p1: Point{10, 10}, expected: true},
		{name: "negative", p: Point{10, 10}, p1: Point{11, 10}, expected: false},
		{name: "size", p: Point{10, 10}, p1: Point{10}, expected: false},
	}
	for _, test := range tests {
		if test.p.Equal(test.p1) != test.expected {
			t.Errorf("the comparison of points, got: %v, expected: %v", test.p.Equal(test.p1), test.expected)
		}
	}
}

func TestPoint_Copy(t *testing.T) {
	t.Parallel()
	p := Point{1, 2}
	c := p.Copy()
	c[0] = 5
	if p[0] != 1 {
		t.Errorf("copy shares storage with the original, got: %v", p)
	}
}

func TestPoint_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		expected string
	}{
		{name: "pair", p: Point{1, 5}, expected: "(1, 5)"},
		{name: "negative", p: Point{-3, 0, 7}, expected: "(-3, 0, 7)"},
		{name: "empty", p: Point{}, expected: "()"},
	}
	for _, test := range tests {
		if got := test.p.String(); got != test.expected {
			t.Errorf("%s: got: %q, expected: %q", test.name, got, test.expected)
		}
	}
}

func TestOf(t *testing.T) {
	t.Parallel()
	points := []Point{{1, 2}, {3, 4}}
	back := Of(Items(points))
	for i := range points {
		if !back[i].Equal(points[i]) {
			t.Errorf("point %d changed, got: %v, expected: %v", i, back[i], points[i])
		}
	}
}
