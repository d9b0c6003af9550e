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

func TestPieceTypeFromChar(t *testing.T) {
	assert.Equal(t, Pawn, PieceTypeFromChar('p'))
	assert.Equal(t, Queen, PieceTypeFromChar('q'))
	assert.Equal(t, King, PieceTypeFromChar('k'))
	assert.Equal(t, PieceTypeNone, PieceTypeFromChar('x'))
}

func TestPieceTypeValue(t *testing.T) {
	assert.Equal(t, 100, Pawn.Value())
	assert.Equal(t, 900, Queen.Value())
	assert.Equal(t, 0, King.Value())
}

func TestPieceMakeAndUnpack(t *testing.T) {
	p := MakePiece(White, Queen)
	assert.Equal(t, Queen, p.TypeOf())
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, "Q", p.String())

	p2 := MakePiece(Black, Queen)
	assert.Equal(t, "q", p2.String())
}

func TestCastlingRightsHasAndString(t *testing.T) {
	cr := WhiteKingside | BlackQueenside
	assert.True(t, cr.Has(WhiteKingside))
	assert.False(t, cr.Has(WhiteQueenside))
	assert.Equal(t, "Kq", cr.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAll.String())
}
