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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-engine/kestrel/internal/types"
)

func TestFromFENStartPos(t *testing.T) {
	b, err := FromFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, types.White, b.SideToMove)
	assert.Equal(t, types.CastlingAll, b.Castling)
	assert.Equal(t, types.SquareNone, b.EnPassantSquare)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Equal(t, 1, b.FullmoveNumber)
	assert.Equal(t, 16, b.PiecesOf(types.White, types.Pawn).PopCount()+b.PiecesOf(types.White, types.Rook).PopCount()+
		b.PiecesOf(types.White, types.Knight).PopCount()+b.PiecesOf(types.White, types.Bishop).PopCount()+
		b.PiecesOf(types.White, types.Queen).PopCount()+b.PiecesOf(types.White, types.King).PopCount())
	assert.Equal(t, types.SqE1, b.KingSquare(types.White))
	assert.Equal(t, types.SqE8, b.KingSquare(types.Black))
}

func TestFromFENTolerantOfMissingMoveCounters(t *testing.T) {
	b, err := FromFEN("8/8/8/4k3/8/8/8/4K3 w - -")
	assert.NoError(t, err)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Equal(t, 0, b.FullmoveNumber)
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	_, err := FromFEN("not a fen")
	assert.Error(t, err)

	_, err = FromFEN("8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/3pP3/8/8/8/k6K w - d6 0 5",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestApplySimplePawnPush(t *testing.T) {
	b, _ := FromFEN(StartFEN)
	m := types.NewMove(types.SqE2, types.SqE4, types.Pawn, types.PieceTypeNone, types.MoveNormal)
	Apply(m, b)
	assert.Equal(t, types.Black, b.SideToMove)
	p, ok := b.PieceAt(types.SqE4)
	assert.True(t, ok)
	assert.Equal(t, types.Pawn, p.TypeOf())
	_, occupiedBefore := b.PieceAt(types.SqE2)
	assert.False(t, occupiedBefore)
	assert.Equal(t, types.SqE3, b.EnPassantSquare)
	assert.Equal(t, 0, b.HalfmoveClock)
}

func TestApplyCaptureResetsHalfmoveClock(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/8/3p4/4P3/8/4K3 w - - 12 30")
	capture := types.NewMove(types.SqE3, types.SqD4, types.Pawn, types.PieceTypeNone, types.MoveNormal)
	Apply(capture, b)
	assert.Equal(t, 0, b.HalfmoveClock)
	p, ok := b.PieceAt(types.SqD4)
	assert.True(t, ok)
	assert.Equal(t, types.White, p.ColorOf())
}

func TestApplyQuietMoveIncrementsHalfmoveClock(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 4 10")
	m := types.NewMove(types.SqA1, types.SqA2, types.Rook, types.PieceTypeNone, types.MoveNormal)
	Apply(m, b)
	assert.Equal(t, 5, b.HalfmoveClock)
	assert.False(t, b.Castling.Has(types.WhiteQueenside))
}

func TestApplyCastlingMovesRookToo(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	m := types.NewMove(types.SqE1, types.SqG1, types.King, types.PieceTypeNone, types.MoveCastle)
	Apply(m, b)
	rook, ok := b.PieceAt(types.SqF1)
	assert.True(t, ok)
	assert.Equal(t, types.Rook, rook.TypeOf())
	king, ok := b.PieceAt(types.SqG1)
	assert.True(t, ok)
	assert.Equal(t, types.King, king.TypeOf())
	assert.False(t, b.Castling.Has(types.WhiteKingside))
	assert.False(t, b.Castling.Has(types.WhiteQueenside))
}

func TestApplyEnPassantRemovesCapturedPawn(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m := types.NewMove(types.SqE5, types.SqD6, types.Pawn, types.PieceTypeNone, types.MoveEnPassant)
	Apply(m, b)
	_, stillThere := b.PieceAt(types.SqD5)
	assert.False(t, stillThere)
	p, ok := b.PieceAt(types.SqD6)
	assert.True(t, ok)
	assert.Equal(t, types.Pawn, p.TypeOf())
	assert.Equal(t, 0, b.HalfmoveClock)
}

func TestApplyPromotionReplacesPiece(t *testing.T) {
	b, _ := FromFEN("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	m := types.NewMove(types.SqE7, types.SqE8, types.Pawn, types.Queen, types.MoveNormal)
	Apply(m, b)
	p, ok := b.PieceAt(types.SqE8)
	assert.True(t, ok)
	assert.Equal(t, types.Queen, p.TypeOf())
}

func TestParseUCIMoveResolvesAgainstLegalList(t *testing.T) {
	legal := []types.Move{
		types.NewMove(types.SqE7, types.SqE8, types.Pawn, types.Queen, types.MoveNormal),
		types.NewMove(types.SqE7, types.SqE8, types.Pawn, types.Rook, types.MoveNormal),
	}
	m, err := ParseUCIMove("e7e8q", legal)
	assert.NoError(t, err)
	assert.Equal(t, types.Queen, m.Promotion())

	_, err = ParseUCIMove("e7e8b", legal)
	assert.Error(t, err)
}
