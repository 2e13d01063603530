// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := m.set.Keys(c.Bool("reverse"))

	if c.Bool("json") {
		return printJson(m.w, keys)
	}

	for _, key := range keys {
		fmt.Fprintf(m.w, "%s\n", key)
	}
	return nil
}
