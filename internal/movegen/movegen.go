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

// Package movegen produces the exact legal move list for a position in a
// single bitboard-parallel pass, with no make/unmake of candidate moves:
// a check mask and a pin mask are computed up front from the king's point
// of view, and every piece's destinations are filtered against them.
package movegen

import (
	"github.com/kestrel-engine/kestrel/internal/bitboard"
	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/magic"
	"github.com/kestrel-engine/kestrel/internal/types"
)

var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// Generate returns every strictly legal move for the side to move in b,
// along with whether that side's king is currently in check.
func Generate(b *board.Board) ([]types.Move, bool) {
	magic.Init()

	us := b.SideToMove
	them := us.Flip()
	king := b.KingSquare(us)
	occupied := b.Occupied()
	friendly := b.ColorBB(us)
	enemy := b.ColorBB(them)

	enemyPawns := b.PiecesOf(them, types.Pawn)
	enemyKnights := b.PiecesOf(them, types.Knight)
	enemyBishops := b.PiecesOf(them, types.Bishop)
	enemyRooks := b.PiecesOf(them, types.Rook)
	enemyQueens := b.PiecesOf(them, types.Queen)
	enemyKing := b.KingSquare(them)

	occNoKing := occupied &^ bitboard.SquareBB(king)
	attacked := attackedSquares(them, enemyPawns, enemyKnights, enemyBishops, enemyRooks, enemyQueens, enemyKing, occNoKing)

	checkMask, numCheckers := computeCheckMask(king, occupied, enemyPawns, enemyKnights, enemyBishops, enemyRooks, enemyQueens, us)
	pinned, pinRay := computePins(king, occupied, friendly, enemyBishops, enemyRooks, enemyQueens)

	inCheck := numCheckers > 0
	moves := make([]types.Move, 0, 48)

	destFilter := ^friendly
	if numCheckers >= 2 {
		destFilter &= bitboard.Empty
	} else {
		destFilter &= checkMask
	}

	// Knights
	for _, sq := range b.PiecesOf(us, types.Knight).Scan() {
		if pinned.Set(sq) {
			continue
		}
		addMoves(&moves, sq, types.Knight, bitboard.KnightAttacks(sq)&destFilter)
	}

	// Bishops / Rooks / Queens
	genSlider(&moves, b, us, types.Bishop, destFilter, pinned, pinRay, occupied, magic.BishopAttacks)
	genSlider(&moves, b, us, types.Rook, destFilter, pinned, pinRay, occupied, magic.RookAttacks)
	genSlider(&moves, b, us, types.Queen, destFilter, pinned, pinRay, occupied, magic.QueenAttacks)

	// Pawns
	genPawnMoves(&moves, b, us, them, king, occupied, enemy, pinned, pinRay, checkMask)

	// King
	kingDest := bitboard.KingAttacks(king) &^ friendly &^ attacked
	addMoves(&moves, king, types.King, kingDest)

	// Castling
	if numCheckers == 0 {
		genCastling(&moves, b, us, occupied, attacked)
	}

	return moves, inCheck
}

func addMoves(moves *[]types.Move, from types.Square, pt types.PieceType, dests bitboard.Bitboard) {
	for _, to := range dests.Scan() {
		*moves = append(*moves, types.NewMove(from, to, pt, types.PieceTypeNone, types.MoveNormal))
	}
}

type sliderAttackFn func(types.Square, bitboard.Bitboard) bitboard.Bitboard

func genSlider(moves *[]types.Move, b *board.Board, us types.Color, pt types.PieceType, destFilter bitboard.Bitboard,
	pinned bitboard.Bitboard, pinRay map[types.Square]bitboard.Bitboard, occupied bitboard.Bitboard, attacksFor sliderAttackFn) {
	for _, sq := range b.PiecesOf(us, pt).Scan() {
		dests := attacksFor(sq, occupied) & destFilter
		if pinned.Set(sq) {
			dests &= pinRay[sq]
		}
		addMoves(moves, sq, pt, dests)
	}
}

// attackedSquares unions the attack sets of every enemy piece, using
// occNoKing so sliders see through the square the friendly king currently
// occupies (the king must not treat itself as a blocker when computing
// its own escape squares).
func attackedSquares(them types.Color, pawns, knights, bishops, rooks, queens bitboard.Bitboard, king types.Square, occNoKing bitboard.Bitboard) bitboard.Bitboard {
	var a bitboard.Bitboard
	for _, sq := range pawns.Scan() {
		a |= bitboard.PawnAttacks(them, sq)
	}
	for _, sq := range knights.Scan() {
		a |= bitboard.KnightAttacks(sq)
	}
	for _, sq := range bishops.Scan() {
		a |= magic.BishopAttacks(sq, occNoKing)
	}
	for _, sq := range rooks.Scan() {
		a |= magic.RookAttacks(sq, occNoKing)
	}
	for _, sq := range queens.Scan() {
		a |= magic.QueenAttacks(sq, occNoKing)
	}
	if king.Valid() {
		a |= bitboard.KingAttacks(king)
	}
	return a
}

// computeCheckMask returns the set of squares a non-king move must land
// on to resolve check (Full if not in check, Empty if doubly checked) and
// the number of checking pieces.
func computeCheckMask(king types.Square, occupied bitboard.Bitboard, enemyPawns, enemyKnights, enemyBishops, enemyRooks, enemyQueens bitboard.Bitboard, us types.Color) (bitboard.Bitboard, int) {
	numCheckers := 0
	mask := bitboard.Empty

	if pawnCheckers := bitboard.PawnAttacks(us, king) & enemyPawns; pawnCheckers != 0 {
		numCheckers += pawnCheckers.PopCount()
		mask |= pawnCheckers
	}
	if knightCheckers := bitboard.KnightAttacks(king) & enemyKnights; knightCheckers != 0 {
		numCheckers += knightCheckers.PopCount()
		mask |= knightCheckers
	}

	bishopAttackers := magic.BishopAttacks(king, occupied) & (enemyBishops | enemyQueens)
	for _, sq := range bishopAttackers.Scan() {
		numCheckers++
		mask |= bitboard.Between(king, sq) | bitboard.SquareBB(sq)
	}
	rookAttackers := magic.RookAttacks(king, occupied) & (enemyRooks | enemyQueens)
	for _, sq := range rookAttackers.Scan() {
		numCheckers++
		mask |= bitboard.Between(king, sq) | bitboard.SquareBB(sq)
	}

	if numCheckers == 0 {
		return bitboard.Full, 0
	}
	if numCheckers >= 2 {
		return bitboard.Empty, numCheckers
	}
	return mask, numCheckers
}

// computePins casts an x-ray from the king through the first friendly
// blocker on each ray; if an enemy slider of the matching kind sits
// beyond it, the friendly piece is pinned and may only move along that
// ray (recorded in pinRay).
func computePins(king types.Square, occupied, friendly, enemyBishops, enemyRooks, enemyQueens bitboard.Bitboard) (bitboard.Bitboard, map[types.Square]bitboard.Bitboard) {
	pinned := bitboard.Empty
	pinRay := make(map[types.Square]bitboard.Bitboard)

	considerDir := func(attackerSet bitboard.Bitboard, raysFrom func(types.Square, bitboard.Bitboard) bitboard.Bitboard) {
		xray := raysFrom(king, occupied&^friendly)
		candidates := xray & friendly
		for _, blocker := range candidates.Scan() {
			beyond := raysFrom(king, occupied&^bitboard.SquareBB(blocker)) &^ raysFrom(king, occupied)
			if pinner := beyond & attackerSet; pinner != 0 {
				pinned |= bitboard.SquareBB(blocker)
				pinRay[blocker] = bitboard.Line(king, pinner.Lsb())
			}
		}
	}
	considerDir(enemyBishops|enemyQueens, magic.BishopAttacks)
	considerDir(enemyRooks|enemyQueens, magic.RookAttacks)

	return pinned, pinRay
}

func genCastling(moves *[]types.Move, b *board.Board, us types.Color, occupied, attacked bitboard.Bitboard) {
	if us == types.White {
		if b.Castling.Has(types.WhiteKingside) &&
			occupied&(bitboard.SquareBB(types.SqF1)|bitboard.SquareBB(types.SqG1)) == 0 &&
			attacked&(bitboard.SquareBB(types.SqE1)|bitboard.SquareBB(types.SqF1)|bitboard.SquareBB(types.SqG1)) == 0 {
			*moves = append(*moves, types.NewMove(types.SqE1, types.SqG1, types.King, types.PieceTypeNone, types.MoveCastle))
		}
		if b.Castling.Has(types.WhiteQueenside) &&
			occupied&(bitboard.SquareBB(types.SqB1)|bitboard.SquareBB(types.SqC1)|bitboard.SquareBB(types.SqD1)) == 0 &&
			attacked&(bitboard.SquareBB(types.SqE1)|bitboard.SquareBB(types.SqD1)|bitboard.SquareBB(types.SqC1)) == 0 {
			*moves = append(*moves, types.NewMove(types.SqE1, types.SqC1, types.King, types.PieceTypeNone, types.MoveCastle))
		}
	} else {
		if b.Castling.Has(types.BlackKingside) &&
			occupied&(bitboard.SquareBB(types.SqF8)|bitboard.SquareBB(types.SqG8)) == 0 &&
			attacked&(bitboard.SquareBB(types.SqE8)|bitboard.SquareBB(types.SqF8)|bitboard.SquareBB(types.SqG8)) == 0 {
			*moves = append(*moves, types.NewMove(types.SqE8, types.SqG8, types.King, types.PieceTypeNone, types.MoveCastle))
		}
		if b.Castling.Has(types.BlackQueenside) &&
			occupied&(bitboard.SquareBB(types.SqB8)|bitboard.SquareBB(types.SqC8)|bitboard.SquareBB(types.SqD8)) == 0 &&
			attacked&(bitboard.SquareBB(types.SqE8)|bitboard.SquareBB(types.SqD8)|bitboard.SquareBB(types.SqC8)) == 0 {
			*moves = append(*moves, types.NewMove(types.SqE8, types.SqC8, types.King, types.PieceTypeNone, types.MoveCastle))
		}
	}
}
