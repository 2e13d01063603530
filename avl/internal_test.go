// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build a sub-tree by hand with correct bookkeeping
func makeNode(key int, l *node[int], r *node[int]) *node[int] {
	p := &node[int]{key: key, left: l, right: r}
	pull(p)
	return p
}

func TestBookkeeping(t *testing.T) {
	var empty *node[int]
	assert.Equal(t, 0, height(empty), "empty height")
	assert.Equal(t, 0, size(empty), "empty size")

	l := makeNode(1, nil, nil)
	r := makeNode(3, nil, makeNode(4, nil, nil))
	p := makeNode(2, l, r)

	assert.Equal(t, 3, p.height, "height")
	assert.Equal(t, 4, p.size, "size")
	assert.Equal(t, 1, balanceFactor(p), "balance factor")
	assert.Equal(t, p, l.up, "left parent")
	assert.Equal(t, p, r.up, "right parent")
}

func TestRotateLeft(t *testing.T) {
	// 1 → 2 → 3 chain leaning right
	c := makeNode(3, nil, nil)
	b := makeNode(2, nil, c)
	a := makeNode(1, nil, b)
	require.Equal(t, 2, balanceFactor(a))

	top := rotateLeft(a)

	assert.Equal(t, b, top, "new root")
	assert.Nil(t, top.up, "new root parent cleared")
	assert.Equal(t, a, top.left, "left")
	assert.Equal(t, c, top.right, "right")
	assert.Equal(t, top, a.up, "old root parent")
	assert.Equal(t, top, c.up, "right parent")
	assert.Equal(t, 2, top.height, "height")
	assert.Equal(t, 3, top.size, "size")
	assert.Equal(t, 1, a.height, "old root height")
	assert.Equal(t, 1, a.size, "old root size")
}

func TestRotateRight(t *testing.T) {
	a := makeNode(1, nil, nil)
	b := makeNode(2, a, nil)
	c := makeNode(3, b, nil)

	top := rotateRight(c)

	assert.Equal(t, b, top, "new root")
	assert.Nil(t, top.up, "new root parent cleared")
	assert.Equal(t, a, top.left, "left")
	assert.Equal(t, c, top.right, "right")
	assert.Equal(t, 2, top.height, "height")
	assert.Equal(t, 3, top.size, "size")
}

func TestBalanceDoubleRotations(t *testing.T) {
	// left-right case: 3 with left 1 which has right 2
	lr := makeNode(3, makeNode(1, nil, makeNode(2, nil, nil)), nil)
	top := balance(lr)
	assert.Equal(t, 2, top.key, "left-right root")
	assert.Equal(t, 1, top.left.key, "left-right left")
	assert.Equal(t, 3, top.right.key, "left-right right")
	assert.Equal(t, 0, balanceFactor(top), "left-right balanced")

	// right-left case: 1 with right 3 which has left 2
	rl := makeNode(1, nil, makeNode(3, makeNode(2, nil, nil), nil))
	top = balance(rl)
	assert.Equal(t, 2, top.key, "right-left root")
	assert.Equal(t, 1, top.left.key, "right-left left")
	assert.Equal(t, 3, top.right.key, "right-left right")

	// already balanced sub-trees are returned unchanged
	ok := makeNode(2, makeNode(1, nil, nil), nil)
	assert.Equal(t, ok, balance(ok), "balanced")
}

func TestRemoveMin(t *testing.T) {
	tree := Of(4, 2, 6, 1, 3, 5, 7)

	root := removeMin(tree.root)
	tree.setRoot(root)

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, tree.Keys(), "keys")
	assert.NoError(t, tree.Check(), "check")
}

func TestNodePool(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 10; i += 1 {
		tree.Insert(i)
	}
	assert.Equal(t, 10, tree.pool.totalNodes, "nodes after inserts")
	assert.Equal(t, 0, tree.pool.freeNodes, "free after inserts")

	for i := 0; i < 10; i += 2 {
		tree.Erase(i)
	}
	assert.Equal(t, 5, tree.pool.totalNodes, "nodes after erase")
	assert.Equal(t, 5, tree.pool.freeNodes, "free after erase")

	// duplicates and absent keys do not touch the pool
	tree.Insert(1)
	tree.Erase(100)
	assert.Equal(t, 5, tree.pool.totalNodes, "nodes after no-ops")

	for i := 10; i < 13; i += 1 {
		tree.Insert(i)
	}
	assert.Equal(t, 8, tree.pool.totalNodes, "nodes after reuse")
	assert.Equal(t, 2, tree.pool.freeNodes, "free after reuse")
	assert.Equal(t, tree.Size(), tree.pool.totalNodes, "size matches live nodes")
	assert.NoError(t, tree.Check(), "check")

	c := tree.Clone()
	assert.Equal(t, c.Size(), c.pool.totalNodes, "clone live nodes")

	tree.Assign(c)
	assert.Equal(t, c.Size(), tree.pool.totalNodes, "assign live nodes")

	tree.Clear()
	assert.Equal(t, 0, tree.pool.totalNodes, "nodes after clear")
}

func TestNodePoolLimit(t *testing.T) {
	tree := New[int]()
	for i := 0; i < maxFreeNodes+50; i += 1 {
		tree.Insert(i)
	}
	for i := 0; i < maxFreeNodes+50; i += 1 {
		tree.Erase(i)
	}
	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.pool.totalNodes, "live nodes")
	assert.Equal(t, maxFreeNodes, tree.pool.freeNodes, "free list is capped")
}

func TestCheckDetectsDamage(t *testing.T) {
	tree := Of(2, 1, 3)
	tree.root.left.key = 5
	assert.Error(t, tree.Check(), "order")

	tree = Of(2, 1, 3)
	tree.root.size = 7
	assert.Error(t, tree.Check(), "size")

	tree = Of(2, 1, 3)
	tree.root.right.up = tree.root.left
	assert.Error(t, tree.Check(), "parent")

	tree = Of(2, 1, 3)
	tree.root.left.height = 2
	assert.Error(t, tree.Check(), "height")
}
