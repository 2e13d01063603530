// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/orderedset/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Add(3)

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Take(); 5 != n {
		t.Errorf("take returned: %d  expected: 5", n)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

// many go routines updating one counter
func TestConcurrentCounter(t *testing.T) {

	const workers = 8
	const loops = 1000

	var c1 counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				c1.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*loops != c1.Uint64() {
		t.Errorf("counter: %d  expected: %d", c1.Uint64(), workers*loops)
	}
}
