// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main is a stress tester for the avl ordered set.
//
// Every trial inserts random keys into its own set, clones it, then
// erases random keys, running the structural check after each change
// and comparing iteration in both directions with a plain map.
package main
