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

package movegen

import (
	"github.com/kestrel-engine/kestrel/internal/bitboard"
	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/magic"
	"github.com/kestrel-engine/kestrel/internal/types"
)

func genPawnMoves(moves *[]types.Move, b *board.Board, us, them types.Color, king types.Square, occupied, enemy bitboard.Bitboard,
	pinned bitboard.Bitboard, pinRay map[types.Square]bitboard.Bitboard, checkMask bitboard.Bitboard) {

	dir := types.Direction(8)
	startRank := types.Rank2
	promoRank := types.Rank8
	if us == types.Black {
		dir = types.Direction(-8)
		startRank = types.Rank7
		promoRank = types.Rank1
	}

	pawns := b.PiecesOf(us, types.Pawn)
	for _, from := range pawns.Scan() {
		allowed := bitboard.Full
		if pinned.Set(from) {
			allowed = pinRay[from]
		}

		one := bitboard.ShiftOne(bitboard.SquareBB(from), dir)
		if one&^occupied != 0 && one&checkMask != 0 && one&allowed != 0 {
			emitPawnMove(moves, from, one.Lsb(), us, promoRank)
		}
		if from.RankOf() == startRank && one&^occupied != 0 {
			two := bitboard.ShiftOne(one, dir)
			if two&^occupied != 0 && two&checkMask != 0 && two&allowed != 0 {
				*moves = append(*moves, types.NewMove(from, two.Lsb(), types.Pawn, types.PieceTypeNone, types.MoveNormal))
			}
		}

		captures := bitboard.PawnAttacks(us, from) & enemy & checkMask & allowed
		for _, to := range captures.Scan() {
			emitPawnMove(moves, from, to, us, promoRank)
		}

		if b.EnPassantSquare.Valid() {
			epTargets := bitboard.PawnAttacks(us, from) & bitboard.SquareBB(b.EnPassantSquare) & allowed
			if epTargets != 0 {
				capturedSq := types.Square(int(b.EnPassantSquare) - us.PawnDir()*8)
				resolves := checkMask.Set(b.EnPassantSquare) || checkMask.Set(capturedSq)
				if resolves && enPassantSafe(king, occupied, from, b.EnPassantSquare, capturedSq, b, them) {
					*moves = append(*moves, types.NewMove(from, b.EnPassantSquare, types.Pawn, types.PieceTypeNone, types.MoveEnPassant))
				}
			}
		}
	}
}

func emitPawnMove(moves *[]types.Move, from, to types.Square, us types.Color, promoRank types.Rank) {
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			*moves = append(*moves, types.NewMove(from, to, types.Pawn, pt, types.MoveNormal))
		}
		return
	}
	*moves = append(*moves, types.NewMove(from, to, types.Pawn, types.PieceTypeNone, types.MoveNormal))
}

// enPassantSafe rejects the rare case where capturing en passant removes
// both the moving pawn and the captured pawn from the same rank, exposing
// the king to a rook or queen that was blocked by them.
func enPassantSafe(king types.Square, occupied bitboard.Bitboard, from, to, capturedSq types.Square, b *board.Board, them types.Color) bool {
	hypOccupied := occupied
	hypOccupied = hypOccupied.Without(from).Without(capturedSq).With(to)
	attackers := b.PiecesOf(them, types.Rook) | b.PiecesOf(them, types.Queen)
	if attackers == 0 {
		return true
	}
	return magic.RookAttacks(king, hypOccupied)&attackers == 0
}
