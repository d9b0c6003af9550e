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

import "github.com/kestrel-engine/kestrel/internal/types"

// MateValue is the sentinel score magnitude assigned to a forced mate.
// Scores near it are reported to the UCI layer as "mate in N" rather than
// a centipawn value.
const MateValue = 1_000_000

// Result is the outcome of one search: the principal variation the
// engine believes best, and the score of that line. Score is absolute
// and White-relative, like eval.Func: positive favours White regardless
// of which side was to move at the root.
type Result struct {
	BestMove types.Move
	Ponder   types.Move
	Score    int
	Depth    int
	Nodes    uint64
	PV       []types.Move
}

// IsMate reports whether Score represents a forced mate and, if so, in
// how many full moves (positive: White mates, negative: Black mates).
func (r Result) IsMate() (int, bool) {
	d := MateValue - abs(r.Score)
	if d > 64 {
		return 0, false
	}
	sign := 1
	if r.Score < 0 {
		sign = -1
	}
	pliesToMate := d
	mateIn := (pliesToMate + 1) / 2
	return sign * mateIn, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
