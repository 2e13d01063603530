// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/orderedset/fault"
)

// ReadKeyFile - read one key per line
// blank lines and lines starting with '#' are skipped
func ReadKeyFile(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	keys := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" == s || strings.HasPrefix(s, "#") {
			continue
		}
		keys = append(keys, s)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return keys, nil
}

// AllKeys - keys listed in the configuration followed by those from
// each key file in order
func (c *Configuration) AllKeys() ([]string, error) {
	keys := make([]string, 0, len(c.Keys))
	keys = append(keys, c.Keys...)
	for _, fileName := range c.Files {
		k, err := ReadKeyFile(fileName)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k...)
	}
	return keys, nil
}

// ParseIntegerKeys - convert text keys for an integer set
func ParseIntegerKeys(keys []string) ([]int64, error) {
	n := make([]int64, len(keys))
	for i, s := range keys {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		n[i] = v
	}
	return n, nil
}
