// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file for the
// ordered set tools
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table, e.g.
//
//	local M = {}
//	M.data_directory = "."
//	M.key_type = "integer"
//	M.keys = { "5", "3", "8" }
//	M.files = { "more-keys.txt" }
//	M.logging = { file = "avlset.log", levels = { DEFAULT = "info" } }
//	return M
package configuration
