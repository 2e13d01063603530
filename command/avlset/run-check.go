// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	depth := m.set.Print(m.w, c.Bool("details"))
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.set.Check(); nil != err {
		m.log.Errorf("check failed: %s", err)
		return err
	}

	fmt.Fprintf(m.w, "keys: %s  height: %d  status: ok\n", humanize.Comma(int64(m.set.Size())), m.set.Height())
	return nil
}
