// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/orderedset/avl"
	"github.com/bitmark-inc/orderedset/configuration"
	"github.com/bitmark-inc/orderedset/fault"
)

// the set operations the commands need, independent of key type
// all keys go in and come out as text
type operations interface {
	Size() int
	Height() int
	Keys(reverse bool) []string
	Find(key string) (string, error)
	LowerBound(key string) (string, error)
	UpperBound(key string) (string, error)
	Rank(key string) (int, error)
	Get(index int) (string, error)
	Print(w io.Writer, details bool) int
	Check() error
}

type keySet[T constraints.Ordered] struct {
	set   *avl.Set[T]
	parse func(string) (T, error)
}

// build a set of the configured key type
func makeKeySet(keyType string, keys []string) (operations, error) {
	switch keyType {
	case configuration.KeyTypeInteger:
		n, err := configuration.ParseIntegerKeys(keys)
		if nil != err {
			return nil, err
		}
		return &keySet[int64]{
			set:   avl.Of(n...),
			parse: parseInteger,
		}, nil
	case configuration.KeyTypeString:
		return &keySet[string]{
			set:   avl.Of(keys...),
			parse: parseString,
		}, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

func parseInteger(s string) (int64, error) {
	n, err := configuration.ParseIntegerKeys([]string{s})
	if nil != err {
		return 0, err
	}
	return n[0], nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func (k *keySet[T]) Size() int {
	return k.set.Size()
}

func (k *keySet[T]) Height() int {
	return k.set.Height()
}

// all keys, descending order steps back from the end
func (k *keySet[T]) Keys(reverse bool) []string {
	keys := make([]string, 0, k.set.Size())
	if !reverse {
		k.set.Do(func(key T) bool {
			keys = append(keys, fmt.Sprint(key))
			return true
		})
		return keys
	}

	begin := k.set.Begin()
	for it := k.set.End(); !it.Equal(begin); {
		it.Prev()
		keys = append(keys, fmt.Sprint(it.Key()))
	}
	return keys
}

func (k *keySet[T]) Find(s string) (string, error) {
	key, err := k.parse(s)
	if nil != err {
		return "", err
	}
	return result(k.set.Find(key))
}

func (k *keySet[T]) LowerBound(s string) (string, error) {
	key, err := k.parse(s)
	if nil != err {
		return "", err
	}
	return result(k.set.LowerBound(key))
}

func (k *keySet[T]) UpperBound(s string) (string, error) {
	key, err := k.parse(s)
	if nil != err {
		return "", err
	}
	return result(k.set.UpperBound(key))
}

func (k *keySet[T]) Rank(s string) (int, error) {
	key, err := k.parse(s)
	if nil != err {
		return -1, err
	}
	r := k.set.Rank(key)
	if r < 0 {
		return -1, fault.ErrKeyNotFound
	}
	return r, nil
}

func (k *keySet[T]) Get(index int) (string, error) {
	key, ok := k.set.Get(index)
	if !ok {
		return "", fault.ErrInvalidIndex
	}
	return fmt.Sprint(key), nil
}

func (k *keySet[T]) Print(w io.Writer, details bool) int {
	return k.set.Print(w, details)
}

func (k *keySet[T]) Check() error {
	return k.set.Check()
}

func result[T any](it avl.Iterator[T]) (string, error) {
	if it.IsEnd() {
		return "", fault.ErrKeyNotFound
	}
	return fmt.Sprint(it.Key()), nil
}
