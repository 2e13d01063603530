// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedset/fault"
)

// find, lower and upper
func runQuery(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkArgument(c)
	if nil != err {
		return err
	}

	query := m.set.Find
	switch c.Command.Name {
	case "lower":
		query = m.set.LowerBound
	case "upper":
		query = m.set.UpperBound
	}

	found, err := query(key)
	if nil != err {
		m.log.Debugf("%s: %q  error: %s", c.Command.Name, key, err)
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: %q → %q\n", c.Command.Name, key, found)
	}
	fmt.Fprintf(m.w, "%s\n", found)
	return nil
}

func runRank(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkArgument(c)
	if nil != err {
		return err
	}

	rank, err := m.set.Rank(key)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%d\n", rank)
	return nil
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := checkArgument(c)
	if nil != err {
		return err
	}
	index, err := strconv.Atoi(s)
	if nil != err {
		return fault.ErrInvalidIndex
	}

	key, err := m.set.Get(index)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", key)
	return nil
}

// exactly one argument is required
func checkArgument(c *cli.Context) (string, error) {
	if 1 != len(c.Args()) {
		return "", fault.ErrMissingArgument
	}
	return c.Args().First(), nil
}
