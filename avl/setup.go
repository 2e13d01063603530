// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Less - strict weak ordering used to compare keys
type Less[T any] func(a T, b T) bool

// Set - type to hold the root node of a tree
//
// a set must be created by New, NewFunc, Of or one of the From
// functions; the zero value has no ordering and Insert panics with
// fault.ErrMissingOrdering
type Set[T any] struct {
	root *node[T]
	less Less[T]
	pool allocator[T]
}

// New - create an initially empty set using the natural ordering of T
func New[T constraints.Ordered]() *Set[T] {
	return NewFunc(func(a T, b T) bool {
		return a < b
	})
}

// NewFunc - create an initially empty set using a custom ordering
func NewFunc[T any](less Less[T]) *Set[T] {
	return &Set[T]{
		root: nil,
		less: less,
	}
}

// Of - create a set holding the given keys, later duplicates are ignored
func Of[T constraints.Ordered](keys ...T) *Set[T] {
	tree := New[T]()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

// FromSlice - create a set holding the keys of a slice
func FromSlice[T constraints.Ordered](keys []T) *Set[T] {
	return Of(keys...)
}

// FromRange - create a set holding the keys in the half open range
// [first, last) of another set
func FromRange[T constraints.Ordered](first Iterator[T], last Iterator[T]) *Set[T] {
	return FromRangeFunc(func(a T, b T) bool {
		return a < b
	}, first, last)
}

// FromRangeFunc - as FromRange but with a custom ordering
func FromRangeFunc[T any](less Less[T], first Iterator[T], last Iterator[T]) *Set[T] {
	tree := NewFunc(less)
	for it := first; !it.Equal(last); it.Next() {
		tree.Insert(it.Key())
	}
	return tree
}

// Size - number of keys currently in the set
func (tree *Set[T]) Size() int {
	return size(tree.root)
}

// IsEmpty - true if the set contains no keys
func (tree *Set[T]) IsEmpty() bool {
	return 0 == size(tree.root)
}

// Height - number of nodes on the longest path from the root to a leaf
func (tree *Set[T]) Height() int {
	return height(tree.root)
}

// Clear - remove all keys
func (tree *Set[T]) Clear() {
	tree.pool.forget(tree.root)
	tree.root = nil
}

// install a new root, the root never has a parent
func (tree *Set[T]) setRoot(p *node[T]) {
	tree.root = p
	detach(p)
}

// a pair of keys are the same if neither is less than the other
func (tree *Set[T]) same(a T, b T) bool {
	return !tree.less(a, b) && !tree.less(b, a)
}
