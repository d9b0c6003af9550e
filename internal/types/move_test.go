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

func TestMoveFields(t *testing.T) {
	m := NewMove(SqE2, SqE4, Pawn, PieceTypeNone, MoveNormal)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.Piece())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, MoveNormal, m.Kind())
	assert.Equal(t, "e2e4", m.UCI())
}

func TestMovePromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, Pawn, Queen, MoveNormal)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "e7e8q", m.UCI())
}

func TestMoveValueRoundTripsThroughSignedRange(t *testing.T) {
	for _, v := range []int{0, 1, -1, 2047, -2048, 100, -100} {
		m := NewMoveValue(SqA1, SqH8, Knight, PieceTypeNone, MoveNormal, v)
		assert.Equal(t, v, m.Value())
	}
}

func TestMoveWithValuePreservesOtherFields(t *testing.T) {
	m := NewMove(SqG1, SqF3, Knight, PieceTypeNone, MoveNormal)
	m2 := m.WithValue(42)
	assert.Equal(t, 42, m2.Value())
	assert.Equal(t, m.From(), m2.From())
	assert.Equal(t, m.To(), m2.To())
	assert.Equal(t, m.Piece(), m2.Piece())
}

func TestMoveIsValid(t *testing.T) {
	assert.True(t, NewMove(SqA1, SqA2, Pawn, PieceTypeNone, MoveNormal).IsValid())
	assert.False(t, NewMove(SqA1, SqA1, Pawn, PieceTypeNone, MoveNormal).IsValid())
	assert.False(t, Move(0).IsValid())
}

func TestMoveZeroValueIsNone(t *testing.T) {
	var m Move
	assert.Equal(t, "(none)", m.String())
}

func TestMoveCastleAndEnPassantKinds(t *testing.T) {
	castle := NewMove(SqE1, SqG1, King, PieceTypeNone, MoveCastle)
	assert.Equal(t, MoveCastle, castle.Kind())

	ep := NewMove(SqE5, SqD6, Pawn, PieceTypeNone, MoveEnPassant)
	assert.Equal(t, MoveEnPassant, ep.Kind())
}
