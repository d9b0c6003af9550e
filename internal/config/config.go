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

// Package config holds the engine's startup configuration, loaded once
// from an optional TOML file and otherwise defaulted.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kestrel-engine/kestrel/internal/logging"
)

var log = logging.GetLog("config")

// Conf is the top-level configuration tree, grouped the way the engine's
// subsystems are grouped.
type Conf struct {
	Log    logConfiguration    `toml:"log"`
	Search searchConfiguration `toml:"search"`
	Eval   evalConfiguration   `toml:"eval"`
}

type logConfiguration struct {
	Level string `toml:"level"`
}

type searchConfiguration struct {
	UsePruning         bool `toml:"use_pruning"`
	UseRaycastFallback bool `toml:"use_raycast_fallback"`
	DefaultMoveTimeMS  int  `toml:"default_movetime_ms"`
}

type evalConfiguration struct {
	Mode string `toml:"mode"`
}

// Settings is the process-wide configuration, populated by Setup.
var Settings = defaults()

func defaults() Conf {
	return Conf{
		Log:    logConfiguration{Level: "info"},
		Search: searchConfiguration{UsePruning: true, UseRaycastFallback: false, DefaultMoveTimeMS: 5000},
		Eval:   evalConfiguration{Mode: "material"},
	}
}

// Setup loads path (if non-empty and present) over the compiled-in
// defaults. A missing file is not an error: Kestrel runs fine unconfigured.
func Setup(path string) error {
	Settings = defaults()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Infof("config: no config file at %s, using defaults", path)
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return err
	}
	log.Infof("config: loaded %s", path)
	return nil
}
