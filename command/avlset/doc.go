// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Build an ordered set from configuration keys and key files, then
// list or query it
//
// e.g. list the keys of two files in descending order:
//
//   avlset --file=a.keys --file=b.keys list --reverse
//
// integer keys compare numerically:
//
//   avlset --integer --file=numbers.txt lower 42
package main
