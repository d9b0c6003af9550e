// Kestrel - UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The Kestrel Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package logging wraps op/go-logging with a single stderr backend and a
// fixed format, so every package in the engine gets a consistently
// formatted, named logger with one line of setup.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	setupOnce sync.Once
	backend   logging.LeveledBackend
)

const format = `%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`

func setup(level logging.Level) {
	setupOnce.Do(func() {
		rawBackend := logging.NewLogBackend(os.Stderr, "", 0)
		formatter := logging.NewBackendFormatter(rawBackend, logging.MustStringFormatter(format))
		leveled := logging.AddModuleLevel(formatter)
		leveled.SetLevel(level, "")
		logging.SetBackend(leveled)
		backend = leveled
	})
}

// SetLevel changes the global minimum logged level. Call before GetLog
// if a level other than Info is wanted; safe to skip entirely.
func SetLevel(level logging.Level) {
	setup(level)
	if backend != nil {
		backend.SetLevel(level, "")
	}
}

// GetLog returns a named logger. The first call to either GetLog or
// SetLevel in the process performs one-time backend initialization.
func GetLog(name string) *logging.Logger {
	setup(logging.INFO)
	return logging.MustGetLogger(name)
}

// levelNames maps the command-line/config spelling of a log level to the
// op/go-logging constant it selects.
var levelNames = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

// ParseLevel resolves a level name (as used in the config file and the
// -loglvl flag) to a logging.Level, reporting ok=false for anything
// unrecognized.
func ParseLevel(name string) (level logging.Level, ok bool) {
	level, ok = levelNames[name]
	return level, ok
}
