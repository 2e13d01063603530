// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - iterator to a specific key, or End() if it is not present
func (tree *Set[T]) Find(key T) Iterator[T] {
	return tree.iteratorAt(tree.find(tree.root, key))
}

// Contains - true if the key is present
func (tree *Set[T]) Contains(key T) bool {
	return nil != tree.find(tree.root, key)
}

// LowerBound - iterator to the first key that is not less than key,
// or End() if there is no such key
func (tree *Set[T]) LowerBound(key T) Iterator[T] {
	return tree.iteratorAt(tree.lowerBound(tree.root, key))
}

// UpperBound - iterator to the first key that is greater than key,
// or End() if there is no such key
func (tree *Set[T]) UpperBound(key T) Iterator[T] {
	return tree.iteratorAt(tree.upperBound(tree.root, key))
}

func (tree *Set[T]) find(p *node[T], key T) *node[T] {
	if nil == p {
		return nil
	}
	switch {
	case tree.less(key, p.key):
		return tree.find(p.left, key)
	case tree.less(p.key, key):
		return tree.find(p.right, key)
	default:
		return p
	}
}

// smallest key not less than key
func (tree *Set[T]) lowerBound(p *node[T], key T) *node[T] {
	if nil == p {
		return nil
	}
	if tree.less(p.key, key) {
		return tree.lowerBound(p.right, key)
	}
	if !tree.less(key, p.key) { // exact match
		return p
	}
	if l := tree.lowerBound(p.left, key); nil != l {
		return l
	}
	return p
}

// smallest key strictly greater than key
func (tree *Set[T]) upperBound(p *node[T], key T) *node[T] {
	if nil == p {
		return nil
	}
	if !tree.less(key, p.key) { // p.key <= key
		return tree.upperBound(p.right, key)
	}
	if l := tree.upperBound(p.left, key); nil != l {
		return l
	}
	return p
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
