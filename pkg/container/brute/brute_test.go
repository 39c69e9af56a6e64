package brute

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sod/rango/pkg/container/rangetree"
)

type pt []int

func (p pt) Dim(idx int) int { return p[idx] }
func (p pt) Dimensions() int { return len(p) }

func TestIndex_Query(t *testing.T) {
	points := []rangetree.Point{pt{0, 0}, pt{1, 5}, pt{2, 3}, pt{3, 3}, pt{4, 9}}
	idx, err := New(points, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name     string
		a, b     pt
		expected []int
	}{
		{name: "window", a: pt{1, 2}, b: pt{3, 6}, expected: []int{1, 2, 3}},
		{name: "swapped", a: pt{3, 6}, b: pt{1, 2}, expected: []int{1, 2, 3}},
		{name: "point", a: pt{4, 9}, b: pt{4, 9}, expected: []int{4}},
		{name: "empty", a: pt{5, 0}, b: pt{9, 9}, expected: []int{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := idx.QueryIDs(test.a, test.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(test.expected) {
				t.Fatalf("got: %v, expected: %v", got, test.expected)
			}
			for i := range got {
				if got[i] != test.expected[i] {
					t.Errorf("got: %v, expected: %v", got, test.expected)
				}
			}
		})
	}
}

func TestIndex_Errors(t *testing.T) {
	if _, err := New(nil, 0); !errors.Is(err, rangetree.ErrInvalidDimension) {
		t.Errorf("got: %v, expected: %v", err, rangetree.ErrInvalidDimension)
	}
	if _, err := New([]rangetree.Point{pt{1}}, 2); !errors.Is(err, rangetree.ErrDimensionMismatch) {
		t.Errorf("got: %v, expected: %v", err, rangetree.ErrDimensionMismatch)
	}
	idx, _ := New([]rangetree.Point{pt{1, 1}}, 2)
	if _, err := idx.Query(pt{1}, pt{1, 1}); !errors.Is(err, rangetree.ErrDimensionMismatch) {
		t.Errorf("got: %v, expected: %v", err, rangetree.ErrDimensionMismatch)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := idx.QueryContext(ctx, pt{0, 0}, pt{1, 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("got: %v, expected: %v", err, context.Canceled)
	}
}
