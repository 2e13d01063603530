// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedset/fault"
)

// Insert - add a key to the set, nothing happens if it is already present
func (tree *Set[T]) Insert(key T) {
	if nil == tree.less {
		panic(fault.ErrMissingOrdering)
	}
	tree.setRoot(tree.insert(tree.root, key))
}

// internal routine for insert
// returns the possibly updated root of the sub-tree
func (tree *Set[T]) insert(p *node[T], key T) *node[T] {
	if nil == p { // insert new node
		return tree.pool.newNode(key)
	}

	switch {
	case tree.less(key, p.key):
		detach(p.left)
		p.left = tree.insert(p.left, key)
	case tree.less(p.key, key):
		detach(p.right)
		p.right = tree.insert(p.right, key)
	default: // duplicate
		return p
	}
	return balance(p)
}
