// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/orderedset/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, true},
		{fault.ErrIteratorAtEnd, false, false, false, true, false},
		{fault.ErrIteratorBeforeBegin, false, false, false, true, false},
		{fault.ErrTreeUnbalanced, false, false, false, false, true},
		{fault.ErrKeyNotFound, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// a message with no logger channel goes to stdout and must not panic
func TestCriticalWithoutLogger(t *testing.T) {
	fault.Critical("no logger channel")
	fault.Criticalf("no logger channel: %d", 42)
}

func TestPanicIfError(t *testing.T) {
	fault.PanicIfError("no error", nil)

	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("expected a panic")
		}
		s, ok := r.(string)
		if !ok {
			t.Fatalf("panic value: %v  is not a string", r)
		}
		const expected = "check failed with error: tree is not balanced"
		if expected != s {
			t.Fatalf("panic value: %q  expected: %q", s, expected)
		}
	}()
	fault.PanicIfError("check", fault.ErrTreeUnbalanced)
}

func TestRecovered(t *testing.T) {
	if err := fault.Recovered(nil); nil != err {
		t.Fatalf("nil recover value gave: %v", err)
	}

	if err := fault.Recovered(fault.ErrIteratorAtEnd); fault.ErrIteratorAtEnd != err {
		t.Fatalf("error value changed to: %v", err)
	}

	err := fault.Recovered("something odd")
	if !fault.IsErrProcess(err) {
		t.Fatalf("string value not a process error: %v", err)
	}
	if "recovered: something odd" != err.Error() {
		t.Fatalf("unexpected message: %q", err)
	}
}
