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

package types

// Color identifies one of the two sides in a chess game.
type Color uint8

const (
	White Color = iota
	Black
	ColorNone
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// moveDirection holds the forward pawn-push direction per color: +1 for
// White (towards rank 8), -1 for Black (towards rank 1).
var moveDirection = [2]int{1, -1}

// PawnDir returns the rank delta of a single pawn push for this color.
func (c Color) PawnDir() int {
	return moveDirection[c]
}

// Better reports whether score a is preferable to score b from this
// color's point of view (White maximizes, Black minimizes).
func (c Color) Better(a, b int) bool {
	if c == White {
		return a > b
	}
	return a < b
}

// Worst returns the score a search from this color's perspective should
// initialize its running best-score accumulator to.
func (c Color) Worst() int {
	if c == White {
		return -infinity
	}
	return infinity
}

const infinity = 1 << 30
