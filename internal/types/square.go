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

import "fmt"

// Square identifies exactly one of the 64 squares of a chess board.
//
//	SqA1 Square = iota // 0
//	SqB1               // 1
//	...
//	SqH8               // 63
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SquareNone
)

// File is the column of a square, 0 (a-file) to 7 (h-file).
type File uint8

// Rank is the row of a square, 0 (rank 1) to 7 (rank 8).
type Rank uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// MakeSquare combines a file and rank into a Square.
func MakeSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 + uint8(f))
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Valid reports whether sq is one of the 64 board squares.
func (sq Square) Valid() bool {
	return sq < SquareNone
}

var fileChar = [8]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

func (f File) String() string {
	return string(fileChar[f])
}

func (r Rank) String() string {
	return fmt.Sprintf("%d", int(r)+1)
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// SquareFromString parses algebraic notation ("e4") into a Square. It
// returns SquareNone for "-" or malformed input.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SquareNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SquareNone
	}
	return MakeSquare(File(f-'a'), Rank(r-'1'))
}

// Direction is a compass offset expressed in raw square-index delta terms,
// matched with an edge mask to prevent file wraparound (see package
// bitboard).
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)
