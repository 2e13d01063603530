// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered set of unique keys held in an AVL balanced
// tree with the addition of parent pointers to allow iteration
// through the nodes without an auxiliary stack
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height and the size of its sub-tree.  The
// height drives the rebalancing and the size gives O(log n) indexing
// (Get) and ranking (Rank).
//
// Every mutation is a recursive routine that returns the (possibly
// new) root of the sub-tree it was given and the caller always
// re-installs that returned root.  Rotations clear the parent link of
// the node they return and the caller restores it.
//
// Keys are only ever compared with a strict "less" predicate, two
// keys are the same when neither is less than the other.  Inserting
// a key that is already present does nothing.
//
// Iterators are invalidated by any Insert or Erase.  Misuse of an
// iterator (reading or advancing past the end, stepping back before
// the first key) panics with a fault.ProcessError.
package avl
