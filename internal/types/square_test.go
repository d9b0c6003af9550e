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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq        Square
		file      File
		rank      Rank
		algebraic string
	}{
		{SqA1, FileA, Rank1, "a1"},
		{SqH1, FileH, Rank1, "h1"},
		{SqE4, FileE, Rank4, "e4"},
		{SqH8, FileH, Rank8, "h8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.file, tt.sq.FileOf())
		assert.Equal(t, tt.rank, tt.sq.RankOf())
		assert.Equal(t, tt.algebraic, tt.sq.String())
		assert.Equal(t, tt.sq, MakeSquare(tt.file, tt.rank))
	}
}

func TestSquareValid(t *testing.T) {
	assert.True(t, SqA1.Valid())
	assert.True(t, SqH8.Valid())
	assert.False(t, SquareNone.Valid())
}

func TestSquareFromString(t *testing.T) {
	assert.Equal(t, SqE4, SquareFromString("e4"))
	assert.Equal(t, SqA1, SquareFromString("a1"))
	assert.Equal(t, SquareNone, SquareFromString("-"))
	assert.Equal(t, SquareNone, SquareFromString("z9"))
	assert.Equal(t, SquareNone, SquareFromString(""))
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, sq, SquareFromString(sq.String()))
	}
}
