// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"strconv"

	"github.com/bitmark-inc/orderedset/fault"
)

const (
	defaultCount  = 1000
	defaultTrials = 4
)

type parameters struct {
	count   int   // keys inserted per trial
	delete  int   // keys erased per trial
	trials  int   // number of independent sets
	workers int   // trials run at the same time
	seed    int64 // first trial seed, each later trial adds one
}

// convert the command line options, defaultSeed is used when there
// is no --seed
func getParameters(options map[string][]string, defaultSeed int64) (*parameters, error) {
	p := &parameters{
		count:   defaultCount,
		delete:  -1,
		trials:  defaultTrials,
		workers: runtime.NumCPU(),
		seed:    defaultSeed,
	}

	for _, o := range []struct {
		name  string
		value *int
	}{
		{"count", &p.count},
		{"delete", &p.delete},
		{"trials", &p.trials},
		{"workers", &p.workers},
	} {
		if len(options[o.name]) > 0 {
			n, err := strconv.Atoi(options[o.name][0])
			if nil != err || n < 0 {
				return nil, fault.ErrInvalidCount
			}
			*o.value = n
		}
	}

	if len(options["seed"]) > 0 {
		n, err := strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidCount
		}
		p.seed = n
	}

	if p.delete < 0 {
		p.delete = p.count / 2
	}
	if p.count < 1 || p.trials < 1 || p.workers < 1 {
		return nil, fault.ErrInvalidCount
	}
	if p.delete > p.count {
		return nil, fault.ErrDeleteExceedsCount
	}
	return p, nil
}
