// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedset/configuration"
	"github.com/bitmark-inc/orderedset/fault"
)

type metadata struct {
	config  *configuration.Configuration
	set     operations
	log     *logger.L
	stop    func()
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// start the logger and the fault channel, returns the matching shutdown
var startLogging = func(config *configuration.Configuration) (func(), error) {
	if err := logger.Initialise(config.LoggerConfiguration()); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return nil, err
	}
	return func() {
		fault.Finalise()
		logger.Finalise()
	}, nil
}

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avlset"
	app.Usage = "ordered set of unique keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "integer, i",
			Usage: " keys are integers (overrides configuration key_type)",
		},
		cli.StringSliceFlag{
			Name:  "file, f",
			Usage: " read keys from `FILE`, one per line (repeatable)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "list",
			Usage: "list all keys in ascending order",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " descending order",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " output a JSON array",
				},
			},
			Action: runList,
		},
		{
			Name:      "find",
			Usage:     "show a key if it is present",
			ArgsUsage: "KEY",
			Action:    runQuery,
		},
		{
			Name:      "lower",
			Usage:     "first key not less than KEY",
			ArgsUsage: "KEY",
			Action:    runQuery,
		},
		{
			Name:      "upper",
			Usage:     "first key greater than KEY",
			ArgsUsage: "KEY",
			Action:    runQuery,
		},
		{
			Name:      "rank",
			Usage:     "zero based position of KEY",
			ArgsUsage: "KEY",
			Action:    runRank,
		},
		{
			Name:      "get",
			Usage:     "key at zero based INDEX",
			ArgsUsage: "INDEX",
			Action:    runGet,
		},
		{
			Name:  "print",
			Usage: "draw the tree",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "details, d",
					Usage: " show parent, balance, height and size of each node",
				},
			},
			Action: runPrint,
		},
		{
			Name:   "check",
			Usage:  "verify the tree structure",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and build the set
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		switch c.Args().Get(0) {
		case "", "help", "h", "version":
			return nil
		}

		var config *configuration.Configuration
		var err error
		if file := c.GlobalString("config"); "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			config, err = configuration.GetConfiguration(file)
		} else {
			config, err = configuration.Default()
		}
		if nil != err {
			return err
		}

		if c.GlobalBool("integer") {
			config.KeyType = configuration.KeyTypeInteger
		}
		for _, file := range c.GlobalStringSlice("file") {
			file, err := filepath.Abs(file)
			if nil != err {
				return err
			}
			config.Files = append(config.Files, file)
		}

		stop, err := startLogging(config)
		if nil != err {
			return err
		}
		log := logger.New("avlset")

		keys, err := config.AllKeys()
		if nil != err {
			log.Errorf("read keys error: %s", err)
			stop()
			return err
		}

		set, err := makeKeySet(config.KeyType, keys)
		if nil != err {
			log.Errorf("key conversion error: %s", err)
			stop()
			return err
		}
		log.Infof("key type: %s  keys read: %d  unique: %d  height: %d", config.KeyType, len(keys), set.Size(), set.Height())

		if verbose {
			fmt.Fprintf(e, "keys read: %d  unique: %d\n", len(keys), set.Size())
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			set:     set,
			log:     log,
			stop:    stop,
			verbose: verbose,
			e:       e,
			w:       c.App.Writer,
		}
		return nil
	}

	// flush the logs
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		m.stop()
		delete(c.App.Metadata, "config")
		return nil
	}

	return app
}
