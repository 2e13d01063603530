// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Randomised insert and erase trials on independent sets, each
// mutation is followed by a full structural check
//
//   avlset-stress [--verbose] [--count=N] [--delete=M] [--trials=T] [--workers=W] [--seed=S]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/orderedset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "trials", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--delete=M] [--trials=T] [--workers=W] [--seed=S]", program)
	}

	verbose := len(options["verbose"]) > 0

	p, err := getParameters(options, time.Now().UnixNano())
	if nil != err {
		exitwithstatus.Message("%s: parameter error: %s", program, err)
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "avlset-stress.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("stress")
	log.Infof("count: %d  delete: %d  trials: %d  workers: %d  seed: %d", p.count, p.delete, p.trials, p.workers, p.seed)

	start := time.Now()
	t := &totals{}
	err = runTrials(context.Background(), p, t, log)
	elapsed := time.Since(start)

	fmt.Printf("trials:     %s\n", humanize.Comma(int64(t.trials.Uint64())))
	fmt.Printf("inserts:    %s\n", humanize.Comma(int64(t.inserts.Uint64())))
	fmt.Printf("duplicates: %s\n", humanize.Comma(int64(t.duplicates.Uint64())))
	fmt.Printf("erases:     %s\n", humanize.Comma(int64(t.erases.Uint64())))
	fmt.Printf("absent:     %s\n", humanize.Comma(int64(t.absent.Uint64())))
	fmt.Printf("checks:     %s\n", humanize.Comma(int64(t.checks.Uint64())))
	fmt.Printf("elapsed:    %s\n", elapsed)

	if nil != err {
		log.Criticalf("stress failed: %s", err)
		exitwithstatus.Message("%s: failed with error: %s", program, err)
	}
	log.Info("all trials passed")
}
