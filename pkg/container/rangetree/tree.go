/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package rangetree implements a static layered range tree for orthogonal
// window queries over integer points.
//
// The level 0 tree is a balanced search tree ordered by axis 0. Every node owns
// a tree of the next level built over the points of its subtree, down to the
// last axis, whose trees answer a window by slicing a sorted array.
// A built Tree is never mutated, so it can be queried from many goroutines
// without locking.
package rangetree

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrDimensionMismatch = errors.New("point dimension mismatch")
)

// Point is an integer coordinate vector. Dim must return the same value for the
// lifetime of every Tree holding the point.
type Point interface {
	Dim(idx int) int
	Dimensions() int
}

type Tree struct {
	size    int
	dims    int
	level   int
	root    *node
	ordered []*entry
}

// New builds a tree over points using their first dims axes. Query results
// identify points by their index in the points slice. An empty points slice
// yields an empty tree.
func New(points []Point, dims int) (*Tree, error) {
	return NewAt(points, 0, dims)
}

// NewAt builds the tree of a single level, ordered by axis level and nesting the
// axes after it. New is NewAt with level 0.
func NewAt(points []Point, level, dims int) (*Tree, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%w: dimensions %d", ErrInvalidDimension, dims)
	}
	if level < 0 || level >= dims {
		return nil, fmt.Errorf("%w: level %d outside [0, %d)", ErrInvalidDimension, level, dims)
	}

	entries := make([]*entry, len(points))
	for i, p := range points {
		if p == nil {
			return nil, fmt.Errorf("%w: point %d is nil", ErrDimensionMismatch, i)
		}
		if p.Dimensions() != dims {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, want %d",
				ErrDimensionMismatch, i, p.Dimensions(), dims)
		}
		entries[i] = &entry{id: i, point: p}
	}
	return buildTree(entries, level, dims), nil
}

func (t *Tree) Len() int {
	return t.size
}

func (t *Tree) Dimensions() int {
	return t.dims
}

// Level returns the axis this tree is ordered by.
func (t *Tree) Level() int {
	return t.level
}

// Points returns the points in ascending order of the tree's axis.
func (t *Tree) Points() []Point {
	points := make([]Point, len(t.ordered))
	for i, e := range t.ordered {
		points[i] = e.point
	}
	return points
}

type Stats struct {
	// Points is the number of indexed points.
	Points int
	// Nodes counts nodes of every nested tree, i.e. stored point references.
	Nodes int
	// Trees counts the tree itself plus every nested tree.
	Trees int
	// Height of the top level tree.
	Height int
}

func (t *Tree) Stats() Stats {
	s := Stats{Points: t.size, Height: t.root.height()}
	t.count(&s)
	return s
}

func (t *Tree) count(s *Stats) {
	s.Trees++
	s.Nodes += t.size
	if t.root == nil || t.root.sub == nil {
		return
	}
	var visit func(n *node)
	visit = func(n *node) {
		if n == nil {
			return
		}
		n.sub.count(s)
		visit(n.left)
		visit(n.right)
	}
	visit(t.root)
}
