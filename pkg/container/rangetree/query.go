package rangetree

import (
	"context"
	"fmt"
	"sort"
)

// Range is a closed interval of one axis.
type Range struct {
	Min, Max int
}

func (r Range) contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// Window returns the per-axis bounds of the box spanned by two opposite
// corners. The corners need not be ordered on any axis.
func Window(a, b Point, dims int) ([]Range, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil corner", ErrDimensionMismatch)
	}
	if a.Dimensions() < dims || b.Dimensions() < dims {
		return nil, fmt.Errorf("%w: corners have %d and %d dimensions, want %d",
			ErrDimensionMismatch, a.Dimensions(), b.Dimensions(), dims)
	}
	w := make([]Range, dims)
	for i := range w {
		lo, hi := a.Dim(i), b.Dim(i)
		if lo > hi {
			lo, hi = hi, lo
		}
		w[i] = Range{Min: lo, Max: hi}
	}
	return w, nil
}

// Query returns every point whose coordinates lie inside the closed box with
// opposite corners a and b. The order of the result is unspecified.
func (t *Tree) Query(a, b Point) ([]Point, error) {
	return t.QueryContext(context.Background(), a, b)
}

// QueryContext is Query with cancellation checked before every nested tree
// is searched.
func (t *Tree) QueryContext(ctx context.Context, a, b Point) ([]Point, error) {
	found, err := t.search(ctx, a, b)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(found))
	for i, e := range found {
		points[i] = e.point
	}
	return points, nil
}

// QueryIDs is Query returning the indexes the matching points had in the
// slice the tree was built from.
func (t *Tree) QueryIDs(a, b Point) ([]int, error) {
	found, err := t.search(context.Background(), a, b)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(found))
	for i, e := range found {
		ids[i] = e.id
	}
	return ids, nil
}

func (t *Tree) search(ctx context.Context, a, b Point) ([]*entry, error) {
	w, err := Window(a, b, t.dims)
	if err != nil {
		return nil, err
	}
	return t.collect(ctx, w, []*entry{})
}

// collect appends the entries of t inside w to out.
func (t *Tree) collect(ctx context.Context, w []Range, out []*entry) ([]*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t == nil || t.size == 0 {
		return out, nil
	}
	if t.level == t.dims-1 {
		return append(out, t.slice(w[t.level])...), nil
	}

	subtrees, singles := t.canonical(w[t.level])
	for _, e := range singles {
		if containsFrom(e, w, t.level+1) {
			out = append(out, e)
		}
	}
	var err error
	for _, sub := range subtrees {
		if out, err = sub.collect(ctx, w, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// slice returns the run of ordered entries whose coordinate lies in r.
func (t *Tree) slice(r Range) []*entry {
	lo := sort.Search(len(t.ordered), func(i int) bool {
		return t.ordered[i].coord(t.level) >= r.Min
	})
	hi := sort.Search(len(t.ordered), func(i int) bool {
		return t.ordered[i].coord(t.level) > r.Max
	})
	if lo >= hi {
		return nil
	}
	return t.ordered[lo:hi]
}

// splitNode returns the highest node whose coordinate lies in r, or nil when
// no point of the tree falls in r.
func (t *Tree) splitNode(r Range) *node {
	n := t.root
	for n != nil {
		v := n.coord(t.level)
		switch {
		case v < r.Min:
			n = n.right
		case v > r.Max:
			n = n.left
		default:
			return n
		}
	}
	return nil
}

// canonical decomposes the points of t with a level coordinate in r into
// disjoint pieces: nested trees of whole subtrees inside r, and path nodes
// whose own entry lies in r.
func (t *Tree) canonical(r Range) ([]*Tree, []*entry) {
	split := t.splitNode(r)
	if split == nil {
		return nil, nil
	}
	if r.Min <= split.min && split.max <= r.Max {
		return []*Tree{split.sub}, nil
	}

	var (
		subtrees []*Tree
		singles  = []*entry{split.entry}
	)

	// Everything left of split is <= its coordinate <= r.Max.
	for n := split.left; n != nil; {
		if r.Min <= n.min {
			subtrees = append(subtrees, n.sub)
			break
		}
		if n.coord(t.level) < r.Min {
			n = n.right
			continue
		}
		singles = append(singles, n.entry)
		if n.right != nil {
			subtrees = append(subtrees, n.right.sub)
		}
		n = n.left
	}

	// Everything right of split is >= its coordinate >= r.Min.
	for n := split.right; n != nil; {
		if n.max <= r.Max {
			subtrees = append(subtrees, n.sub)
			break
		}
		if n.coord(t.level) > r.Max {
			n = n.left
			continue
		}
		singles = append(singles, n.entry)
		if n.left != nil {
			subtrees = append(subtrees, n.left.sub)
		}
		n = n.right
	}
	return subtrees, singles
}

// Inside reports whether every axis of p covered by w lies in its range.
func Inside(w []Range, p Point) bool {
	return insideFrom(w, p, 0)
}

func containsFrom(e *entry, w []Range, level int) bool {
	return insideFrom(w, e.point, level)
}

func insideFrom(w []Range, p Point, level int) bool {
	for i := level; i < len(w); i++ {
		if !w[i].contains(p.Dim(i)) {
			return false
		}
	}
	return true
}
