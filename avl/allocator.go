// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedset/fault"
)

// maximum number of reclaimed nodes a set will hold on to
const maxFreeNodes = 256

// a node in the tree
type node[T any] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	up     *node[T] // points to parent node (next free node while in the pool)
	key    T        // key for ordering
	height int      // nodes on the longest path down to a leaf
	size   int      // nodes in this sub-tree
}

// per set node allocator
type allocator[T any] struct {
	pool       *node[T] // linked list of reclaimed nodes
	totalNodes int      // live nodes created by this allocator
	freeNodes  int      // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[T]) newNode(key T) *node[T] {
	if nil == a.pool {
		if 0 != a.freeNodes {
			panic(fault.ErrPoolCorrupt)
		}
		a.totalNodes += 1
		return &node[T]{
			key:    key,
			height: 1,
			size:   1,
		}
	}
	p := a.pool
	a.pool = p.up
	p.key = key
	p.height = 1
	p.size = 1
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	a.totalNodes += 1
	return p
}

// reclaim a node and keep it in the pool unless the pool is full
func (a *allocator[T]) freeNode(p *node[T]) {
	var zero T

	p.left = nil
	p.right = nil
	p.key = zero
	p.height = 0
	p.size = 0
	a.totalNodes -= 1

	if a.freeNodes >= maxFreeNodes {
		p.up = nil
		return
	}
	p.up = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1
}

// account for a whole sub-tree handed over to the garbage collector
func (a *allocator[T]) forget(p *node[T]) {
	a.totalNodes -= size(p)
}
