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

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/config"
	"github.com/kestrel-engine/kestrel/internal/eval"
	klog "github.com/kestrel-engine/kestrel/internal/logging"
	"github.com/kestrel-engine/kestrel/internal/movegen"
	"github.com/kestrel-engine/kestrel/internal/search"
	"github.com/kestrel-engine/kestrel/internal/uci"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./kestrel.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level (critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartFEN, "fen used by -perft")
	perft := flag.Int("perft", 0, "run perft to the given depth from -fen and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "record a CPU profile to ./cpu.pprof and exit on interrupt")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := config.Setup(*configFile); err != nil {
		out.Printf("config: %v\n", err)
		os.Exit(1)
	}

	if lvl, ok := klog.ParseLevel(*logLvl); ok {
		klog.SetLevel(lvl)
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	evalFn := eval.For(eval.Mode(config.Settings.Eval.Mode))
	s := search.NewSearch(nil, evalFn, config.Settings.Search.UsePruning)
	engine := uci.NewKestrelEngine(s)
	handler := uci.NewHandler(engine, os.Stdin, os.Stdout)
	s.SetSink(handler)
	handler.Loop()
}

func runPerft(fen string, depth int) {
	pos, err := board.FromFEN(fen)
	if err != nil {
		out.Printf("fen: %v\n", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(pos, d)
		out.Printf("perft(%d) = %d\n", d, nodes)
	}
	out.Printf("cpus: %d goroutines: %d\n", runtime.NumCPU(), runtime.NumGoroutine())
}
