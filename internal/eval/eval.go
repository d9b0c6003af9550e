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

// Package eval provides static position evaluation, returning a
// centipawn score from White's point of view.
package eval

import (
	"github.com/kestrel-engine/kestrel/internal/bitboard"
	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/types"
)

// Mode selects an evaluator implementation.
type Mode string

const (
	// Material sums piece values only.
	Material Mode = "material"
	// Tapered blends middlegame/endgame positional terms by game phase.
	Tapered Mode = "tapered"
)

// Func scores b from White's perspective: positive favours White.
type Func func(b *board.Board) int

// For resolves a Mode to its evaluator, defaulting to Material for an
// unrecognized or empty mode.
func For(m Mode) Func {
	if m == Tapered {
		return EvaluateTapered
	}
	return EvaluateMaterial
}

// EvaluateMaterial sums piece values for both sides and returns the
// White-minus-Black difference.
func EvaluateMaterial(b *board.Board) int {
	score := 0
	for pt := types.Pawn; pt < types.King; pt++ {
		white := b.PiecesOf(types.White, pt).PopCount()
		black := b.PiecesOf(types.Black, pt).PopCount()
		score += (white - black) * pt.Value()
	}
	return score
}

// phase classifies the game stage used to taper positional terms.
type phase int

const (
	phaseMiddlegame phase = iota
	phaseTransition
	phaseEndgame
)

func classifyPhase(b *board.Board) phase {
	whiteQueens := b.PiecesOf(types.White, types.Queen).PopCount()
	blackQueens := b.PiecesOf(types.Black, types.Queen).PopCount()
	switch {
	case whiteQueens > 0 && blackQueens > 0:
		return phaseMiddlegame
	case whiteQueens == 0 && blackQueens == 0:
		return phaseEndgame
	default:
		return phaseTransition
	}
}

const bishopPairBonus = 30
const rookOpenFileBonus = 15

// EvaluateTapered extends material scoring with positional terms: a
// bishop-pair bonus, a rook-on-open-file bonus, a penalty per isolated
// pawn, and, in the endgame phase only, a king-centralisation term. Passed
// and connected pawns are not scored, and the other terms do not vary
// with the game phase.
func EvaluateTapered(b *board.Board) int {
	score := EvaluateMaterial(b)

	for _, c := range []types.Color{types.White, types.Black} {
		sign := 1
		if c == types.Black {
			sign = -1
		}
		if b.PiecesOf(c, types.Bishop).PopCount() >= 2 {
			score += sign * bishopPairBonus
		}
		score += sign * rookFileScore(b, c)
		score += sign * pawnStructureScore(b, c)
	}

	if classifyPhase(b) == phaseEndgame {
		score += kingActivityScore(b)
	}

	return score
}

func rookFileScore(b *board.Board, c types.Color) int {
	pawns := b.Pieces(types.Pawn)
	total := 0
	for _, sq := range b.PiecesOf(c, types.Rook).Scan() {
		file := sq.FileOf()
		if pawns&fileMask(file) == 0 {
			total += rookOpenFileBonus
		}
	}
	return total
}

func fileMask(f types.File) bitboard.Bitboard {
	var m bitboard.Bitboard
	for r := types.Rank(0); r < 8; r++ {
		m = m.With(types.MakeSquare(f, r))
	}
	return m
}

func adjacentFiles(f types.File) bitboard.Bitboard {
	var m bitboard.Bitboard
	if f > types.FileA {
		m |= fileMask(f - 1)
	}
	if f < types.FileH {
		m |= fileMask(f + 1)
	}
	return m
}

func kingActivityScore(b *board.Board) int {
	wk := b.KingSquare(types.White)
	bk := b.KingSquare(types.Black)
	return centerDistanceBonus(bk) - centerDistanceBonus(wk)
}

func centerDistanceBonus(sq types.Square) int {
	f := int(sq.FileOf())
	r := int(sq.RankOf())
	df := f - 3
	if df < 0 {
		df = -df
	}
	dr := r - 3
	if dr < 0 {
		dr = -dr
	}
	return (df + dr) * 2
}

func pawnStructureScore(b *board.Board, c types.Color) int {
	pawns := b.PiecesOf(c, types.Pawn)
	score := 0
	for _, sq := range pawns.Scan() {
		f := sq.FileOf()
		if pawns&adjacentFiles(f) == 0 {
			score -= 10 // isolated pawn
		}
	}
	return score
}
