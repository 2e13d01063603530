// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCloneNotIndependent   = RecordError("clone shares nodes with its source")
	ErrDeleteExceedsCount    = InvalidError("delete count exceeds insert count")
	ErrHeightMismatch        = RecordError("cached height does not match sub-tree")
	ErrInconsistentParent    = RecordError("parent pointer does not match child pointer")
	ErrInvalidConfigResult   = InvalidError("configuration did not return a table")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidDataDirectory  = InvalidError("data directory is invalid")
	ErrInvalidIndex          = InvalidError("index is invalid")
	ErrInvalidKey            = InvalidError("key is invalid")
	ErrInvalidKeyType        = InvalidError("key type is invalid")
	ErrInvalidLogCount       = InvalidError("log file count is invalid")
	ErrInvalidLogSize        = InvalidError("log file size is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPath           = InvalidError("file name must not contain a directory")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrIteratorAtEnd         = ProcessError("iterator is at end")
	ErrIteratorBeforeBegin   = ProcessError("iterator moved before first key")
	ErrKeyNotErased          = ExistsError("erased key is still present")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOutOfOrder         = RecordError("key is out of order")
	ErrMissingArgument       = InvalidError("missing argument")
	ErrMissingOrdering       = ProcessError("set has no ordering function")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrPoolCorrupt           = ProcessError("node pool corrupt")
	ErrSizeMismatch          = RecordError("cached size does not match sub-tree")
	ErrTreeUnbalanced        = RecordError("tree is not balanced")
	ErrUnexpectedIteration   = RecordError("iteration does not match inserted keys")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
