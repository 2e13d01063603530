// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - independent deep copy of a set
func (tree *Set[T]) Clone() *Set[T] {
	c := NewFunc(tree.less)
	c.setRoot(c.copyTree(nil, tree.root))
	return c
}

// Assign - replace the contents of this set with a deep copy of src
//
// assigning a set to itself leaves it unchanged
func (tree *Set[T]) Assign(src *Set[T]) {
	if tree == src {
		return
	}

	// build the copy before releasing the current tree
	root := tree.copyTree(nil, src.root)
	tree.pool.forget(tree.root)
	tree.less = src.less
	tree.setRoot(root)
}

// internal: copy a sub-tree, linking the copy to the given parent
func (tree *Set[T]) copyTree(up *node[T], src *node[T]) *node[T] {
	if nil == src {
		return nil
	}
	p := tree.pool.newNode(src.key)
	p.up = up
	p.left = tree.copyTree(p, src.left)
	p.right = tree.copyTree(p, src.right)
	pull(p)
	return p
}
