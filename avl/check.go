// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedset/fault"
)

// Check - verify the structure of the whole tree
//
// returns the first problem found: key order, AVL balance, the
// cached heights and sizes or the parent pointers
func (tree *Set[T]) Check() error {
	return tree.check(tree.root, nil, nil, nil)
}

// internal: consistency checker, all keys below p must lie strictly
// between the keys of low and high (when present)
func (tree *Set[T]) check(p *node[T], up *node[T], low *node[T], high *node[T]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fault.ErrInconsistentParent
	}
	if nil != low && !tree.less(low.key, p.key) {
		return fault.ErrKeyOutOfOrder
	}
	if nil != high && !tree.less(p.key, high.key) {
		return fault.ErrKeyOutOfOrder
	}

	if err := tree.check(p.left, p, low, p); nil != err {
		return err
	}
	if err := tree.check(p.right, p, p, high); nil != err {
		return err
	}

	hl := height(p.left)
	hr := height(p.right)
	h := 1 + hr
	if hl > hr {
		h = 1 + hl
	}
	if h != p.height {
		return fault.ErrHeightMismatch
	}
	if 1+size(p.left)+size(p.right) != p.size {
		return fault.ErrSizeMismatch
	}
	if b := hr - hl; b < -1 || b > 1 {
		return fault.ErrTreeUnbalanced
	}
	return nil
}
