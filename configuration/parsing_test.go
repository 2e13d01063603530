// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/orderedset/configuration"
	"github.com/bitmark-inc/orderedset/fault"
)

const sampleConfig = `
local M = {}

M.data_directory = "."
M.key_type = "Integer"
M.keys = { "5", "3", "8" }
M.files = { "extra.keys" }

M.logging = {
    file = "test.log",
    size = 4096,
    count = 3,
    console = true,
    levels = {
        avlset = "debug",
    },
}

return M
`

const extraKeys = `
# more keys
1
4

7
`

func writeFile(t *testing.T, directory string, name string, content string) string {
	fileName := filepath.Join(directory, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err, "write: %s", fileName)
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "avlset.conf", sampleConfig)
	writeFile(t, directory, "extra.keys", extraKeys)

	c, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, configuration.KeyTypeInteger, c.KeyType, "key type")
	assert.Equal(t, []string{"5", "3", "8"}, c.Keys, "keys")
	assert.Equal(t, []string{filepath.Join(directory, "extra.keys")}, c.Files, "files")

	assert.Equal(t, filepath.Join(directory, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "test.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.True(t, c.Logging.Console, "console")
	assert.Equal(t, "debug", c.Logging.Levels["avlset"], "merged level")
	assert.Equal(t, "info", c.Logging.Levels["main"], "default level")

	info, err := os.Stat(c.Logging.Directory)
	require.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")

	keys, err := c.AllKeys()
	require.NoError(t, err, "all keys")
	assert.Equal(t, []string{"5", "3", "8", "1", "4", "7"}, keys, "all keys")

	n, err := configuration.ParseIntegerKeys(keys)
	require.NoError(t, err, "integer keys")
	assert.Equal(t, []int64{5, 3, 8, 1, 4, 7}, n, "integer keys")

	lc := c.LoggerConfiguration()
	assert.Equal(t, c.Logging.Directory, lc.Directory, "logger directory")
	assert.Equal(t, c.Logging.Levels, lc.Levels, "logger levels")
}

func TestMinimalConfiguration(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "min.conf", "return {}\n")

	c, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, configuration.KeyTypeString, c.KeyType, "default key type")
	assert.Empty(t, c.Keys, "no keys")
	assert.Equal(t, "avlset.log", c.Logging.File, "default log file")
	assert.Equal(t, "critical", c.Logging.Levels["DEFAULT"], "default level")
}

func TestConfigurationErrors(t *testing.T) {
	directory := t.TempDir()

	_, err := configuration.GetConfiguration(filepath.Join(directory, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	fileName := writeFile(t, directory, "bad-type.conf", `return { key_type = "float" }`)
	_, err = configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "key type")

	fileName = writeFile(t, directory, "bad-count.conf", `return { logging = { count = 0 } }`)
	_, err = configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidLogCount, err, "log count")

	fileName = writeFile(t, directory, "bad-file.conf", `return { logging = { file = "sub/x.log" } }`)
	_, err = configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidPath, err, "log file path")

	fileName = writeFile(t, directory, "no-table.conf", `return 42`)
	_, err = configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidConfigResult, err, "not a table")

	fileName = writeFile(t, directory, "syntax.conf", `return {`)
	_, err = configuration.GetConfiguration(fileName)
	assert.Error(t, err, "lua syntax")
}

func TestParseConfigurationFileNeedsStruct(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "x.conf", "return {}\n")

	var s string
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &s), "pointer to string")
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, configuration.Configuration{}), "struct value")
}

func TestReadKeyFileErrors(t *testing.T) {
	_, err := configuration.ReadKeyFile(filepath.Join(t.TempDir(), "none"))
	assert.Error(t, err, "missing key file")

	_, err = configuration.ParseIntegerKeys([]string{"1", "two"})
	assert.Equal(t, fault.ErrInvalidKey, err, "bad integer")
}

func TestDefault(t *testing.T) {
	c, err := configuration.Default()
	require.NoError(t, err, "default")
	assert.Equal(t, configuration.KeyTypeString, c.KeyType, "key type")
	assert.True(t, filepath.IsAbs(c.DataDirectory), "absolute data directory")
}
