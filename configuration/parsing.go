// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedset/fault"
)

// key types
const (
	KeyTypeString  = "string"
	KeyTypeInteger = "integer"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultKeyType       = KeyTypeString

	defaultLogDirectory = "log"
	defaultLogFile      = "avlset.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoggerType - logging section
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// Configuration - everything the tools read from a configuration file
type Configuration struct {
	DataDirectory string     `gluamapper:"data_directory"`
	KeyType       string     `gluamapper:"key_type"`
	Keys          []string   `gluamapper:"keys"`
	Files         []string   `gluamapper:"files"`
	Logging       LoggerType `gluamapper:"logging"`
}

// log levels are a fresh map each time so the defaults are never
// modified by a merge from the configuration file
func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		"config":          "info",
		logger.DefaultTag: "critical",
	}
}

// Default - configuration used when no file is given
//
// data lives in the current directory and logs go to the system
// temporary directory
func Default() (*Configuration, error) {
	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	options := defaults()
	options.DataDirectory = dataDirectory
	options.Logging.Directory = os.TempDir()
	return finalise(options)
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundConfigFile
		}
		return nil, err
	}

	// absolute path to the main directory
	configDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// relative data directory is taken from the configuration file location
	switch options.DataDirectory {
	case "", "~":
		return nil, fault.ErrInvalidDataDirectory
	case ".":
		options.DataDirectory = configDirectory
	default:
		options.DataDirectory = ensureAbsolute(configDirectory, options.DataDirectory)
	}

	return finalise(options)
}

func defaults() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyType:       defaultKeyType,
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// validate values and make every path absolute
func finalise(options *Configuration) (*Configuration, error) {

	options.KeyType = strings.ToLower(strings.TrimSpace(options.KeyType))
	switch options.KeyType {
	case KeyTypeString, KeyTypeInteger:
	default:
		return nil, fault.ErrInvalidKeyType
	}

	if options.Logging.Count < 1 {
		return nil, fault.ErrInvalidLogCount
	}
	if options.Logging.Size < 1 {
		return nil, fault.ErrInvalidLogSize
	}

	// the log file must be a plain name, its directory is separate
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrInvalidPath
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	for i, f := range options.Files {
		options.Files[i] = ensureAbsolute(options.DataDirectory, f)
	}

	// create the log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// LoggerConfiguration - convert the logging section for logger.Initialise
func (c *Configuration) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
