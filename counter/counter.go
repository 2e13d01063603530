// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - operation counts that can be updated from
// several go routines at once
package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously
// incremented, just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n int) uint64 {
	return atomic.AddUint64((*uint64)(ic), uint64(n))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Take - return the current value and reset to zero
func (ic *Counter) Take() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}
