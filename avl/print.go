// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// the right sub-tree is drawn above its parent, returns the depth
func (tree *Set[T]) Print(w io.Writer, details bool) int {
	return printTree(w, tree.root, "", root, details)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, p *node[T], prefix string, br branch, details bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, details)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if details {
		up := interface{}(nil)
		if nil != p.up {
			up = p.up.key
		}
		fmt.Fprintf(w, "%v ^%v %+2d h:%d n:%d\n", p.key, up, balanceFactor(p), p.height, p.size)
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, details)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
