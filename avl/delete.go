// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - removes a specific key from the set, nothing happens if
// the key is not present
func (tree *Set[T]) Erase(key T) {
	tree.setRoot(tree.remove(tree.root, key))
}

// internal delete routine
// returns the possibly updated root of the sub-tree
func (tree *Set[T]) remove(p *node[T], key T) *node[T] {
	if nil == p { // key not in tree
		return nil
	}

	switch {
	case tree.less(key, p.key):
		detach(p.left)
		p.left = tree.remove(p.left, key)
	case tree.less(p.key, key):
		detach(p.right)
		p.right = tree.remove(p.right, key)
	default: // found: delete p
		l := p.left
		r := p.right
		detach(l)
		detach(r)
		tree.pool.freeNode(p) // return deleted node to pool

		if nil == r {
			return l
		}

		// splice the in-order successor into the vacated position
		s := r.first()
		r = removeMin(r)
		detach(s)
		s.left = l
		s.right = r
		return balance(s)
	}
	return balance(p)
}

// delete: unlink the lowest node of a non-empty sub-tree, the node
// itself is left for the caller to re-use
func removeMin[T any](p *node[T]) *node[T] {
	if nil == p.left {
		r := p.right
		detach(r)
		return r
	}
	detach(p.left)
	p.left = removeMin(p.left)
	return balance(p)
}
