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

// PieceType is a colourless chess piece kind.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNone
	PieceTypeLength = 6
)

var pieceTypeChar = [PieceTypeLength]byte{'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "-"
	}
	return string(pieceTypeChar[pt])
}

// Value is material worth in centipawns, king excluded (mate handling owns
// king-safety scoring instead).
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// PieceTypeFromChar parses a lower-case piece letter ("q", "n", ...).
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return PieceTypeNone
	}
}

// Piece pairs a PieceType with the Color that owns it, as used on FEN
// piece-placement boards.
type Piece uint8

// MakePiece packs a PieceType and Color into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(pt)<<1 | uint8(c))
}

// TypeOf returns the PieceType component of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

// ColorOf returns the Color component of p.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

func (p Piece) String() string {
	c := p.ColorOf()
	s := p.TypeOf().String()
	if c == White {
		return string(s[0] - ('a' - 'A'))
	}
	return s
}

// CastlingRights is a 4-bit mask over {white-king, white-queen,
// black-king, black-queen} side castling availability.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	CastlingNone = CastlingRights(0)
	CastlingAll  = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func (cr CastlingRights) Has(flag CastlingRights) bool {
	return cr&flag != 0
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}
