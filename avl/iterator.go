// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedset/fault"
)

// Iterator - a cursor over the keys of a set in ascending order
//
// The end position stays anchored at the highest node so that
// stepping back from End() gives the highest key.  An iterator is
// only valid until the next Insert or Erase on its set.
type Iterator[T any] struct {
	node *node[T]
	end  bool
}

// Begin - iterator at the lowest key, End() for an empty set
func (tree *Set[T]) Begin() Iterator[T] {
	if tree.IsEmpty() {
		return tree.End()
	}
	return Iterator[T]{
		node: tree.root.first(),
	}
}

// End - iterator one past the highest key
func (tree *Set[T]) End() Iterator[T] {
	return Iterator[T]{
		node: tree.root.last(),
		end:  true,
	}
}

// iterator for a search result, End() when nothing was found
func (tree *Set[T]) iteratorAt(p *node[T]) Iterator[T] {
	if nil == p {
		return tree.End()
	}
	return Iterator[T]{
		node: p,
	}
}

// Key - the key at the current position
func (it Iterator[T]) Key() T {
	if it.end {
		panic(fault.ErrIteratorAtEnd)
	}
	return it.node.key
}

// IsEnd - true if the iterator is past the highest key
func (it Iterator[T]) IsEnd() bool {
	return it.end
}

// Equal - true if both iterators are at the same position
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.end == other.end
}

// Next - advance to the next higher key, or to End() after the
// highest key
func (it *Iterator[T]) Next() {
	if it.end {
		panic(fault.ErrIteratorAtEnd)
	}

	p := it.node
	if nil != p.right {
		it.node = p.right.first()
		return
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	if nil == p.up {
		// was the highest node, keep it as the anchor
		it.end = true
		return
	}
	it.node = p.up
}

// Prev - step back to the next lower key, from End() this is the
// highest key
//
// stepping back from the lowest key panics and leaves the iterator
// unchanged
func (it *Iterator[T]) Prev() {
	if it.end {
		if nil == it.node { // end of an empty set
			panic(fault.ErrIteratorBeforeBegin)
		}
		it.end = false
		return
	}

	p := it.node
	if nil != p.left {
		it.node = p.left.last()
		return
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	if nil == p.up {
		panic(fault.ErrIteratorBeforeBegin)
	}
	it.node = p.up
}
