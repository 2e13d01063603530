// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - the lowest key, false if the set is empty
func (tree *Set[T]) First() (T, bool) {
	return keyOf(tree.root.first())
}

// Last - the highest key, false if the set is empty
func (tree *Set[T]) Last() (T, bool) {
	return keyOf(tree.root.last())
}

// Get - key at a zero based position in ascending order
func (tree *Set[T]) Get(index int) (T, bool) {
	if index < 0 || index >= tree.Size() {
		var zero T
		return zero, false
	}
	return keyOf(get(index, tree.root))
}

// Rank - zero based position of a key in ascending order, -1 if the
// key is not present
func (tree *Set[T]) Rank(key T) int {
	return tree.rank(key, tree.root, 0)
}

// Keys - all keys in ascending order
func (tree *Set[T]) Keys() []T {
	keys := make([]T, 0, tree.Size())
	tree.Do(func(key T) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Do - call f for each key in ascending order until f returns false
func (tree *Set[T]) Do(f func(key T) bool) {
	for it := tree.Begin(); !it.IsEnd(); it.Next() {
		if !f(it.Key()) {
			return
		}
	}
}

func get[T any](index int, p *node[T]) *node[T] {
	if nil == p {
		return nil
	}

	nl := size(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}

func (tree *Set[T]) rank(key T, p *node[T], index int) int {
	if nil == p {
		return -1
	}

	switch {
	case tree.less(key, p.key):
		return tree.rank(key, p.left, index)
	case tree.less(p.key, key):
		return tree.rank(key, p.right, index+size(p.left)+1)
	default:
		return index + size(p.left)
	}
}

func keyOf[T any](p *node[T]) (T, bool) {
	if nil == p {
		var zero T
		return zero, false
	}
	return p.key, true
}
