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

package search

import (
	"time"

	"github.com/kestrel-engine/kestrel/internal/config"
)

// Limits bounds a single search. A zero Depth means no depth limit (up to
// maxSearchDepth). With no MoveTime and no clock for the side to move,
// the configured default move time applies. Infinite removes every time
// limit; a non-zero Depth still applies.
type Limits struct {
	Infinite  bool
	MoveTime  time.Duration
	Depth     int
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
}

// moveTimeFor derives an allotted thinking time from the limits and the
// side to move, approximating a 30-move horizon plus the increment.
func (l Limits) moveTimeFor(whiteToMove bool) (time.Duration, bool) {
	if l.Infinite {
		return 0, false
	}
	if l.MoveTime > 0 {
		return l.MoveTime, true
	}
	var clock, inc time.Duration
	if whiteToMove {
		clock, inc = l.WhiteTime, l.WhiteInc
	} else {
		clock, inc = l.BlackTime, l.BlackInc
	}
	if clock <= 0 {
		if ms := config.Settings.Search.DefaultMoveTimeMS; ms > 0 {
			return time.Duration(ms) * time.Millisecond, true
		}
		return 0, false
	}
	budget := clock/30 + inc
	if budget <= 0 {
		budget = time.Millisecond
	}
	return budget, true
}

func (l Limits) depthLimit() int {
	if l.Depth > 0 {
		return l.Depth
	}
	return maxSearchDepth
}

// maxSearchDepth bounds iterative deepening when neither a depth nor a
// time limit constrains it further (an "infinite" or time-only search
// still must terminate the epoch loop eventually).
const maxSearchDepth = 64
