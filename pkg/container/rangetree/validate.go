package rangetree

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrValidation = errors.New("range tree validation failed")

// ValidationError reports the first broken invariant found by Validate.
type ValidationError struct {
	// Level is the axis of the tree holding the offending node.
	Level int
	// ID is the insertion index of the offending node's point, or -1 when the
	// failure concerns a whole tree.
	ID     int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID < 0 {
		return fmt.Sprintf("%v: level %d: %s", ErrValidation, e.Level, e.Reason)
	}
	return fmt.Sprintf("%v: level %d, point %d: %s", ErrValidation, e.Level, e.ID, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate walks the whole structure and checks ordering, min/max
// augmentation, subtree counts and that every nested tree holds exactly the
// points of the subtree owning it. It is meant for tests and diagnostics.
func Validate(t *Tree) error {
	if t == nil {
		return &ValidationError{ID: -1, Reason: "nil tree"}
	}
	return t.validate()
}

func (t *Tree) validate() error {
	if t.level < 0 || t.level >= t.dims {
		return t.failTree("level outside [0, %d)", t.dims)
	}
	if len(t.ordered) != t.size {
		return t.failTree("ordered holds %d points, size is %d", len(t.ordered), t.size)
	}
	for i := 1; i < len(t.ordered); i++ {
		if t.ordered[i-1].coord(t.level) > t.ordered[i].coord(t.level) {
			return t.fail(t.ordered[i], "ordered points are not sorted")
		}
	}

	count := 0
	if t.root != nil {
		count = t.root.count
	}
	if count != t.size {
		return t.failTree("root holds %d points, size is %d", count, t.size)
	}
	if !sameEntries(t.root.entries(), t.ordered) {
		return t.failTree("ordered points differ from the tree points")
	}

	_, _, err := t.validateNode(t.root, math.MinInt, math.MaxInt)
	return err
}

// validateNode checks the subtree of n against the inherited bounds and
// returns its true coordinate range.
func (t *Tree) validateNode(n *node, lo, hi int) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	v := n.coord(t.level)
	if v < lo || v > hi {
		return 0, 0, t.fail(n.entry, "coordinate %d out of order, want [%d, %d]", v, lo, hi)
	}

	min, max := v, v
	count := 1
	if n.left != nil {
		lmin, _, err := t.validateNode(n.left, lo, v)
		if err != nil {
			return 0, 0, err
		}
		min = lmin
		count += n.left.count
	}
	if n.right != nil {
		_, rmax, err := t.validateNode(n.right, v, hi)
		if err != nil {
			return 0, 0, err
		}
		max = rmax
		count += n.right.count
	}

	if n.count != count {
		return 0, 0, t.fail(n.entry, "count %d, children and node hold %d", n.count, count)
	}
	if n.min != min || n.max != max {
		return 0, 0, t.fail(n.entry, "augmented range [%d, %d], subtree spans [%d, %d]", n.min, n.max, min, max)
	}

	if t.level == t.dims-1 {
		if n.sub != nil {
			return 0, 0, t.fail(n.entry, "last level node owns a nested tree")
		}
		return min, max, nil
	}
	if n.sub == nil {
		return 0, 0, t.fail(n.entry, "missing nested tree")
	}
	if n.sub.level != t.level+1 || n.sub.dims != t.dims {
		return 0, 0, t.fail(n.entry, "nested tree at level %d of %d", n.sub.level, n.sub.dims)
	}
	if n.sub.size != n.count {
		return 0, 0, t.fail(n.entry, "nested tree holds %d points, subtree holds %d", n.sub.size, n.count)
	}
	if !sameEntries(n.entries(), n.sub.ordered) {
		return 0, 0, t.fail(n.entry, "nested tree points differ from the subtree points")
	}
	if err := n.sub.validate(); err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

func (t *Tree) fail(e *entry, format string, args ...interface{}) error {
	return &ValidationError{Level: t.level, ID: e.id, Reason: fmt.Sprintf(format, args...)}
}

func (t *Tree) failTree(format string, args ...interface{}) error {
	return &ValidationError{Level: t.level, ID: -1, Reason: fmt.Sprintf(format, args...)}
}

func sameEntries(a, b []*entry) bool {
	if len(a) != len(b) {
		return false
	}
	ids := func(entries []*entry) []int {
		out := make([]int, len(entries))
		for i, e := range entries {
			out[i] = e.id
		}
		sort.Ints(out)
		return out
	}
	x, y := ids(a), ids(b)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
