package rangetree

import "sort"

// entry pins a point to its insertion index. Every level of the structure
// shares the same entries, so sorting by another axis reorders references only.
type entry struct {
	id    int
	point Point
}

func (e *entry) coord(level int) int {
	return e.point.Dim(level)
}

type node struct {
	entry *entry
	left  *node
	right *node
	// sub is the tree of the next level over every entry of this subtree.
	// It is nil at the last level.
	sub   *Tree
	min   int
	max   int
	count int
}

func (n *node) coord(level int) int {
	return n.entry.coord(level)
}

func (n *node) entries() []*entry {
	var out []*entry
	n.walk(func(e *entry) {
		out = append(out, e)
	})
	return out
}

func (n *node) walk(fn func(e *entry)) {
	if n == nil {
		return
	}
	n.left.walk(fn)
	fn(n.entry)
	n.right.walk(fn)
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

type sortEntries struct {
	level   int
	entries []*entry
}

func (b *sortEntries) Len() int {
	return len(b.entries)
}

func (b *sortEntries) Less(i, j int) bool {
	return b.entries[i].coord(b.level) < b.entries[j].coord(b.level)
}

func (b *sortEntries) Swap(i, j int) {
	b.entries[i], b.entries[j] = b.entries[j], b.entries[i]
}

// buildTree sorts a private copy of entries by the level axis and builds the
// balanced tree over it. The caller's slice order is left untouched.
func buildTree(entries []*entry, level, dims int) *Tree {
	ordered := make([]*entry, len(entries))
	copy(ordered, entries)
	sort.Sort(&sortEntries{level: level, entries: ordered})

	return &Tree{
		size:    len(ordered),
		dims:    dims,
		level:   level,
		root:    buildNodeRecursive(ordered, level, dims),
		ordered: ordered,
	}
}

// buildNodeRecursive expects entries sorted by the level axis. The pivot is the
// lower median, so the left half never holds more entries than the right one.
// The pivot is excluded from both halves.
func buildNodeRecursive(entries []*entry, level, dims int) *node {
	if len(entries) == 0 {
		return nil
	}

	mid := (len(entries) - 1) / 2
	n := &node{
		entry: entries[mid],
		left:  buildNodeRecursive(entries[:mid], level, dims),
		right: buildNodeRecursive(entries[mid+1:], level, dims),
		count: len(entries),
	}

	n.min, n.max = n.coord(level), n.coord(level)
	if n.left != nil {
		n.min = n.left.min
	}
	if n.right != nil {
		n.max = n.right.max
	}

	if level+1 < dims {
		n.sub = buildTree(entries, level+1, dims)
	}
	return n
}
