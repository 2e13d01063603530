// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, zero for an empty one
func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// number of nodes in a sub-tree, zero for an empty one
func size[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.size
}

// height(right) - height(left); p must not be nil
func balanceFactor[T any](p *node[T]) int {
	return height(p.right) - height(p.left)
}

// recompute the cached height and size of p from its children and
// point the children back at p
//
// must be called after every change to a child pointer, before the
// node is handed back to its parent
func pull[T any](p *node[T]) {
	if nil == p {
		return
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.size = 1 + size(p.left) + size(p.right)
	if nil != p.left {
		p.left.up = p
	}
	if nil != p.right {
		p.right.up = p
	}
}

// clear a parent link, the caller's pull will restore it
func detach[T any](p *node[T]) {
	if nil != p {
		p.up = nil
	}
}

// single left rotation, p.right must not be nil
//
//	  p               r
//	 / \             / \
//	a   r     →     p   c
//	   / \         / \
//	  b   c       a   b
//
// returns the new sub-tree root with its parent link cleared
func rotateLeft[T any](p *node[T]) *node[T] {
	r := p.right
	detach(p)
	detach(r)
	p.right = r.left
	r.left = p
	pull(p)
	pull(r)
	return r
}

// single right rotation, mirror of rotateLeft, p.left must not be nil
func rotateRight[T any](p *node[T]) *node[T] {
	l := p.left
	detach(p)
	detach(l)
	p.left = l.right
	l.right = p
	pull(p)
	pull(l)
	return l
}

// restore the AVL condition at p after a single insert or delete
// below it, the balance factor can only be in the range -2 … +2
//
// returns the root of the sub-tree; if a rotation took place its
// parent link is cleared
func balance[T any](p *node[T]) *node[T] {
	pull(p)
	switch balanceFactor(p) {
	case -2: // left branch is too high
		if balanceFactor(p.left) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
			pull(p)
		}
		return rotateRight(p)
	case +2: // right branch is too high
		if balanceFactor(p.right) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
			pull(p)
		}
		return rotateLeft(p)
	}
	return p
}
