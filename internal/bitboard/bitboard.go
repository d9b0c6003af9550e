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

// Package bitboard implements 64-bit square-set primitives: directional
// shifts, Kogge-Stone occluded fills, and reference sliding-attack
// generation used both to build the magic tables and as a cross-check
// oracle in tests.
package bitboard

import (
	"math/bits"

	"github.com/kestrel-engine/kestrel/internal/types"
)

// Bitboard is a 64-bit set of board squares, bit i corresponding to
// types.Square(i).
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = 0xFFFFFFFFFFFFFFFF

	fileA Bitboard = 0x0101010101010101
	fileH Bitboard = fileA << 7
	rank1 Bitboard = 0xFF
	rank8 Bitboard = rank1 << 56

	notFileA = ^fileA
	notFileH = ^fileH
)

// SquareBB returns the singleton set containing sq.
func SquareBB(sq types.Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set reports whether sq is a member of b.
func (b Bitboard) Set(sq types.Square) bool {
	return b&SquareBB(sq) != 0
}

// With returns b with sq added.
func (b Bitboard) With(sq types.Square) Bitboard {
	return b | SquareBB(sq)
}

// Without returns b with sq removed.
func (b Bitboard) Without(sq types.Square) Bitboard {
	return b &^ SquareBB(sq)
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or types.SquareNone if b
// is empty.
func (b Bitboard) Lsb() types.Square {
	if b == 0 {
		return types.SquareNone
	}
	return types.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least-significant square and b with that square
// cleared.
func (b Bitboard) PopLsb() (types.Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// Scan returns every set square in ascending order.
func (b Bitboard) Scan() []types.Square {
	out := make([]types.Square, 0, b.PopCount())
	for b != 0 {
		var sq types.Square
		sq, b = b.PopLsb()
		out = append(out, sq)
	}
	return out
}

// edgeMask returns the mask to apply after a single shift in dir: it
// drops the file a bit wrapped across the left/right board edge lands on.
func edgeMask(dir types.Direction) Bitboard {
	switch dir {
	case types.East, types.NorthEast, types.SouthEast:
		return notFileA
	case types.West, types.NorthWest, types.SouthWest:
		return notFileH
	default:
		return Full
	}
}

// ShiftOne shifts every bit of b by one step in dir, discarding bits that
// would wrap around a file edge.
func ShiftOne(b Bitboard, dir types.Direction) Bitboard {
	if dir >= 0 {
		return (b << uint(dir)) & edgeMask(dir)
	}
	return (b >> uint(-dir)) & edgeMask(dir)
}

// OccludedFill performs a Kogge-Stone style iterative fill of the empty
// squares in dir starting from the generator set gen, stopping at (but
// including) the first blocker encountered.
func OccludedFill(gen, empty Bitboard, dir types.Direction) Bitboard {
	flood := gen
	e := empty & edgeMask(dir)
	for {
		next := flood | (ShiftOne(flood, dir) & e)
		if next == flood {
			return flood
		}
		flood = next
	}
}

// directions lists the eight compass directions for sliding-attack
// assembly.
var (
	rookDirs   = [4]types.Direction{types.North, types.South, types.East, types.West}
	bishopDirs = [4]types.Direction{types.NorthEast, types.NorthWest, types.SouthEast, types.SouthWest}
)

// rayAttack returns the squares a slider on sq attacks travelling in a
// single direction dir, given blockers, including the first blocker hit.
func rayAttack(sq types.Square, blockers Bitboard, dir types.Direction) Bitboard {
	gen := SquareBB(sq)
	empty := ^blockers
	return ShiftOne(OccludedFill(gen, empty, dir), dir)
}

// RookRaycastReference computes the rook attack set on sq given blockers
// using direct ray-casting (no magic lookup). Used as a test oracle.
func RookRaycastReference(sq types.Square, blockers Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range rookDirs {
		attacks |= rayAttack(sq, blockers, d)
	}
	return attacks
}

// BishopRaycastReference computes the bishop attack set on sq given
// blockers using direct ray-casting (no magic lookup). Used as a test
// oracle.
func BishopRaycastReference(sq types.Square, blockers Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range bishopDirs {
		attacks |= rayAttack(sq, blockers, d)
	}
	return attacks
}

var (
	knightAttackTable [64]Bitboard
	kingAttackTable   [64]Bitboard
	pawnAttackTable   [2][64]Bitboard
)

func init() {
	for sq := types.Square(0); sq < 64; sq++ {
		b := SquareBB(sq)
		knightAttackTable[sq] = knightAttacksFrom(b)
		kingAttackTable[sq] = kingAttacksFrom(b)
		pawnAttackTable[types.White][sq] = ShiftOne(b, types.NorthEast) | ShiftOne(b, types.NorthWest)
		pawnAttackTable[types.Black][sq] = ShiftOne(b, types.SouthEast) | ShiftOne(b, types.SouthWest)
	}
}

func knightAttacksFrom(b Bitboard) Bitboard {
	l1 := (b >> 1) & notFileH
	l2 := (b >> 2) & Bitboard(0x3F3F3F3F3F3F3F3F)
	r1 := (b << 1) & notFileA
	r2 := (b << 2) & Bitboard(0xFCFCFCFCFCFCFCFC)
	h1 := l1 | r1
	h2 := l2 | r2
	return (h1 << 16) | (h1 >> 16) | (h2 << 8) | (h2 >> 8)
}

func kingAttacksFrom(b Bitboard) Bitboard {
	attacks := ShiftOne(b, types.East) | ShiftOne(b, types.West)
	combined := b | attacks
	attacks |= ShiftOne(combined, types.North) | ShiftOne(combined, types.South)
	return attacks
}

// KnightAttacks returns the knight-move attack set from sq.
func KnightAttacks(sq types.Square) Bitboard { return knightAttackTable[sq] }

// KingAttacks returns the king-move attack set from sq.
func KingAttacks(sq types.Square) Bitboard { return kingAttackTable[sq] }

// PawnAttacks returns the diagonal capture set of a color's pawn on sq.
func PawnAttacks(c types.Color, sq types.Square) Bitboard { return pawnAttackTable[c][sq] }

var (
	betweenTable [64][64]Bitboard
	lineTable    [64][64]Bitboard
)

func init() {
	dirs := [8]types.Direction{
		types.North, types.South, types.East, types.West,
		types.NorthEast, types.NorthWest, types.SouthEast, types.SouthWest,
	}
	for a := types.Square(0); a < 64; a++ {
		for _, d := range dirs {
			ray := rayAttack(a, Empty, d)
			full := SquareBB(a) | ray
			for ray != 0 {
				var sq types.Square
				sq, ray = ray.PopLsb()
				betweenTable[a][sq] = rayAttack(a, SquareBB(sq), d) &^ SquareBB(sq)
				lineTable[a][sq] = full
			}
		}
	}
}

// Between returns the squares strictly between a and b if they share a
// rank, file, or diagonal; otherwise Empty.
func Between(a, b types.Square) Bitboard {
	return betweenTable[a][b]
}

// Line returns the full rank/file/diagonal line through both a and b if
// they share one; otherwise Empty.
func Line(a, b types.Square) Bitboard {
	return lineTable[a][b]
}

// Aligned reports whether a, b, and c all lie on a single rank, file, or
// diagonal.
func Aligned(a, b, c types.Square) bool {
	return Line(a, b).Set(c)
}
