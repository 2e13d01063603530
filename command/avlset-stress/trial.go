// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/orderedset/avl"
	"github.com/bitmark-inc/orderedset/counter"
	"github.com/bitmark-inc/orderedset/fault"
)

// running totals shared by all trials
type totals struct {
	trials     counter.Counter
	inserts    counter.Counter
	duplicates counter.Counter
	erases     counter.Counter
	absent     counter.Counter
	checks     counter.Counter
}

// move the counts of a finished trial into the running totals,
// returns the trial's inserts, erases and checks
func (t *totals) collect(trial *totals) (uint64, uint64, uint64) {
	t.trials.Add(int(trial.trials.Take()))
	inserts := trial.inserts.Take()
	t.inserts.Add(int(inserts))
	t.duplicates.Add(int(trial.duplicates.Take()))
	erases := trial.erases.Take()
	t.erases.Add(int(erases))
	t.absent.Add(int(trial.absent.Take()))
	checks := trial.checks.Take()
	t.checks.Add(int(checks))
	return inserts, erases, checks
}

// run all trials, at most p.workers at a time, the first failure
// cancels the trials that have not yet started
func runTrials(ctx context.Context, p *parameters, t *totals, log *logger.L) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := 0; i < p.trials; i += 1 {
		n := i
		seed := p.seed + int64(n)
		g.Go(func() error {
			if err := ctx.Err(); nil != err {
				return err
			}
			local := &totals{}
			err := runTrial(seed, p.count, p.delete, local)
			inserts, erases, checks := t.collect(local)
			if nil != err {
				log.Errorf("trial: %d  seed: %d  error: %s", n, seed, err)
				return fmt.Errorf("trial %d seed %d: %w", n, seed, err)
			}
			log.Debugf("trial: %d  seed: %d  inserts: %d  erases: %d  checks: %d  passed", n, seed, inserts, erases, checks)
			return nil
		})
	}
	return g.Wait()
}

// one trial on its own set: insert count random keys, then erase
// deleteCount keys of which some may already be absent
func runTrial(seed int64, count int, deleteCount int, t *totals) (err error) {
	defer func() {
		if r := recover(); nil != r {
			err = fault.Recovered(r)
		}
	}()

	t.trials.Increment()

	rng := rand.New(rand.NewSource(seed))
	set := avl.New[int64]()
	shadow := make(map[int64]struct{}, count)
	limit := int64(count) * 4

	check := func() error {
		t.checks.Increment()
		if err := set.Check(); nil != err {
			return err
		}
		if set.Size() != len(shadow) {
			return fault.ErrSizeMismatch
		}
		return nil
	}

	for i := 0; i < count; i += 1 {
		key := rng.Int63n(limit)
		if _, ok := shadow[key]; ok {
			t.duplicates.Increment()
		}
		shadow[key] = struct{}{}
		set.Insert(key)
		t.inserts.Increment()
		if err := check(); nil != err {
			return err
		}
		if !set.Contains(key) {
			return fault.ErrKeyNotFound
		}
	}

	clone := set.Clone()
	if err := sameKeys(clone, sortedKeys(shadow)); nil != err {
		return err
	}
	cloneSize := clone.Size()

	for i := 0; i < deleteCount; i += 1 {
		key := rng.Int63n(limit)
		if _, ok := shadow[key]; !ok {
			t.absent.Increment()
		}
		delete(shadow, key)
		set.Erase(key)
		t.erases.Increment()
		if err := check(); nil != err {
			return err
		}
		if set.Contains(key) {
			return fault.ErrKeyNotErased
		}
	}

	if clone.Size() != cloneSize {
		return fault.ErrCloneNotIndependent
	}
	if err := clone.Check(); nil != err {
		return err
	}

	return sameKeys(set, sortedKeys(shadow))
}

// walk the set both ways and compare against the expected keys
func sameKeys(set *avl.Set[int64], expected []int64) error {
	if set.Size() != len(expected) {
		return fault.ErrSizeMismatch
	}

	i := 0
	for it := set.Begin(); !it.IsEnd(); it.Next() {
		if i >= len(expected) || it.Key() != expected[i] {
			return fault.ErrUnexpectedIteration
		}
		i += 1
	}
	if i != len(expected) {
		return fault.ErrUnexpectedIteration
	}

	if 0 == len(expected) {
		return nil
	}

	it := set.End()
	for i = len(expected) - 1; i >= 0; i -= 1 {
		it.Prev()
		if it.Key() != expected[i] {
			return fault.ErrUnexpectedIteration
		}
	}
	if !it.Equal(set.Begin()) {
		return fault.ErrUnexpectedIteration
	}
	return nil
}

func sortedKeys(shadow map[int64]struct{}) []int64 {
	keys := make([]int64, 0, len(shadow))
	for k := range shadow {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
