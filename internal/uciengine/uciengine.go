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

// Package uciengine defines the narrow types that let search report to
// uci without an import cycle: search reports progress through a Sink
// that uci implements. The Engine interface uci drives is defined in
// package uci.
package uciengine

import "github.com/kestrel-engine/kestrel/internal/types"

// ProgressInfo is one "info" line's worth of search progress.
type ProgressInfo struct {
	Depth      int
	ScoreCP    int
	MateIn     int
	IsMate     bool
	Nodes      uint64
	ElapsedMS  int64
	PV         []types.Move
}

// Sink receives progress and completion notifications from a running
// search. Implementations must not block for long: the worker goroutine
// calls SendInfo synchronously after each completed epoch, and
// SendBestMove once when the search ends.
type Sink interface {
	SendInfo(ProgressInfo)
	SendBestMove(best, ponder types.Move)
}
