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

// Package magic precomputes and serves rook/bishop sliding-piece attack
// tables via perfect-hash "magic" multipliers, so that a hot-path lookup
// is a multiply, a shift, and a slice index.
package magic

import (
	"fmt"
	"sync"

	"github.com/kestrel-engine/kestrel/internal/bitboard"
	"github.com/kestrel-engine/kestrel/internal/config"
	"github.com/kestrel-engine/kestrel/internal/types"
)

// Entry holds the precomputed magic data for one square and one slider
// kind (rook-like or bishop-like).
type Entry struct {
	Mask    bitboard.Bitboard
	Magic   bitboard.Bitboard
	Shift   uint
	Attacks []bitboard.Bitboard
}

func (e *Entry) index(occupied bitboard.Bitboard) uint {
	occ := occupied & e.Mask
	occ *= e.Magic
	occ >>= e.Shift
	return uint(occ)
}

var (
	rookTable   [64]Entry
	bishopTable [64]Entry
	once        sync.Once
	initErr     error
)

// trialBudget bounds the number of magic-candidate attempts per square
// before construction is considered to have failed.
const trialBudget = 10_000_000

// Init builds the rook and bishop magic tables. It is safe to call from
// multiple goroutines; the computation itself runs exactly once. A
// construction failure is a fatal condition: magic numbers exist for the
// classic 64-square board and not finding one indicates a mask or PRNG
// bug, not a transient issue.
func Init() {
	once.Do(func() {
		initErr = build(&rookTable, rookDirs[:])
		if initErr == nil {
			initErr = build(&bishopTable, bishopDirs[:])
		}
		if initErr != nil {
			panic(fmt.Sprintf("magic: table construction failed: %v", initErr))
		}
	})
}

var (
	rookDirs   = [4]types.Direction{types.North, types.South, types.East, types.West}
	bishopDirs = [4]types.Direction{types.NorthEast, types.NorthWest, types.SouthEast, types.SouthWest}
)

// RookAttacks returns the rook attack set on sq given an occupied-square
// bitboard. Init must have been called first. When
// config.Settings.Search.UseRaycastFallback is set, the magic table is
// bypassed in favour of the reference ray-casting implementation; results
// are identical, only the hot path differs.
func RookAttacks(sq types.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	if config.Settings.Search.UseRaycastFallback {
		return bitboard.RookRaycastReference(sq, occupied)
	}
	e := &rookTable[sq]
	return e.Attacks[e.index(occupied)]
}

// BishopAttacks returns the bishop attack set on sq given an
// occupied-square bitboard. Init must have been called first. Subject to
// the same raycast fallback as RookAttacks.
func BishopAttacks(sq types.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	if config.Settings.Search.UseRaycastFallback {
		return bitboard.BishopRaycastReference(sq, occupied)
	}
	e := &bishopTable[sq]
	return e.Attacks[e.index(occupied)]
}

// QueenAttacks is the union of rook- and bishop-style attacks.
func QueenAttacks(sq types.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// slidingAttack computes the reference attack set for sq given occupied,
// walking each direction square by square. Used only at precompute time;
// the hot path never calls this.
func slidingAttack(dirs []types.Direction, sq types.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	var attack bitboard.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next, ok := step(s, d)
			if !ok {
				break
			}
			s = next
			attack = attack.With(s)
			if occupied.Set(s) {
				break
			}
		}
	}
	return attack
}

// step moves one square in direction d, reporting false if that would
// leave the board or wrap around a file edge.
func step(sq types.Square, d types.Direction) (types.Square, bool) {
	f := int(sq.FileOf())
	r := int(sq.RankOf())
	switch d {
	case types.North:
		r++
	case types.South:
		r--
	case types.East:
		f++
	case types.West:
		f--
	case types.NorthEast:
		r++
		f++
	case types.NorthWest:
		r++
		f--
	case types.SouthEast:
		r--
		f++
	case types.SouthWest:
		r--
		f--
	}
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return types.SquareNone, false
	}
	return types.MakeSquare(types.File(f), types.Rank(r)), true
}

// edgeMaskFor returns the board-edge squares irrelevant to occupancy for
// a slider on sq: the far rank/file edges a blocker on which cannot
// further restrict the attack set.
func edgeMaskFor(sq types.Square) bitboard.Bitboard {
	const (
		rank1 = bitboard.Bitboard(0xFF)
		rank8 = rank1 << 56
		fileA = bitboard.Bitboard(0x0101010101010101)
		fileH = fileA << 7
	)
	rankEdge := (rank1 | rank8) &^ rankBB(sq.RankOf())
	fileEdge := (fileA | fileH) &^ fileBB(sq.FileOf())
	return rankEdge | fileEdge
}

func rankBB(r types.Rank) bitboard.Bitboard {
	return bitboard.Bitboard(0xFF) << (8 * uint(r))
}

func fileBB(f types.File) bitboard.Bitboard {
	return bitboard.Bitboard(0x0101010101010101) << uint(f)
}

// magicSeeds are per-rank PRNG seeds chosen (by the upstream Stockfish
// project, from which this search strategy is adapted) to reach a valid
// magic quickly for every square on that rank.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func build(tables *[64]Entry, dirs []types.Direction) error {
	var occupancy, reference [4096]bitboard.Bitboard
	var epoch [4096]int
	attacks := make([]bitboard.Bitboard, 0, 64*4096)

	for sq := types.Square(0); sq < 64; sq++ {
		e := &tables[sq]
		edges := edgeMaskFor(sq)
		e.Mask = slidingAttack(dirs, sq, bitboard.Empty) &^ edges
		e.Shift = uint(64 - e.Mask.PopCount())

		offset := len(attacks)

		var b bitboard.Bitboard
		size := 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			attacks = append(attacks, bitboard.Empty)
			size++
			b = (b - e.Mask) & e.Mask
			if b == 0 {
				break
			}
		}
		e.Attacks = attacks[offset : offset+size]

		rng := newPrng(magicSeeds[sq.RankOf()])
		cnt := 0
		attempts := 0
		for i := 0; i < size; {
			var candidate bitboard.Bitboard
			for {
				attempts++
				if attempts > trialBudget {
					return fmt.Errorf("no magic found for square %s after %d attempts", sq, attempts)
				}
				candidate = bitboard.Bitboard(rng.sparseUint64())
				if ((candidate * e.Mask) >> 56).PopCount() < 6 {
					continue
				}
				break
			}
			e.Magic = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := e.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					e.Attacks[idx] = reference[i]
				} else if e.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
	return nil
}

// prng is a xorshift64star pseudo-random generator. It has no
// cryptographic properties; it is chosen for speed and for producing the
// sparse bit patterns that make good magic-number candidates.
type prng struct {
	state uint64
}

func newPrng(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// sparseUint64 ANDs three independent draws together, producing a value
// with roughly one eighth of its bits set on average - a much better
// magic-number candidate distribution than a uniform draw.
func (p *prng) sparseUint64() uint64 {
	return p.next() & p.next() & p.next()
}
