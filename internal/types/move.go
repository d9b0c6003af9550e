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

// Move is a packed 32-bit value carrying a legal (or candidate) chess
// move:
//
//	bits  0- 5  to square
//	bits  6-11  from square
//	bits 12-14  mover piece type
//	bits 15-17  promotion piece type (PieceTypeNone if none)
//	bits 18-19  move kind (MoveNormal/MoveCastle/MoveEnPassant)
//	bits 20-31  sort value (signed, search-assigned move ordering score)
type Move uint32

// MoveKind distinguishes the handful of moves that need special apply
// logic beyond "move the piece, clear the destination".
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCastle
	MoveEnPassant
)

const (
	toShift       = 0
	fromShift     = 6
	pieceShift    = 12
	promoShift    = 15
	kindShift     = 18
	valueShift    = 20
	squareMask    = 0x3F
	pieceMask     = 0x7
	kindMask      = 0x3
	valueMask32   = 0xFFF
	valueSignBit  = 1 << 11
	valueSignExt  = ^uint32(valueMask32)
)

// NewMove creates a Move with no sort value.
func NewMove(from, to Square, piece PieceType, promo PieceType, kind MoveKind) Move {
	return NewMoveValue(from, to, piece, promo, kind, 0)
}

// NewMoveValue creates a Move carrying an explicit sort value.
func NewMoveValue(from, to Square, piece PieceType, promo PieceType, kind MoveKind, value int) Move {
	m := uint32(to&squareMask) << toShift
	m |= uint32(from&squareMask) << fromShift
	m |= uint32(piece&pieceMask) << pieceShift
	m |= uint32(promo&pieceMask) << promoShift
	m |= uint32(kind&kindMask) << kindShift
	m |= (uint32(value) & valueMask32) << valueShift
	return Move(m)
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> fromShift) & squareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> toShift) & squareMask) }

// Piece returns the colourless type of the piece being moved.
func (m Move) Piece() PieceType { return PieceType((m >> pieceShift) & pieceMask) }

// Promotion returns the promotion piece type, or PieceTypeNone.
func (m Move) Promotion() PieceType { return PieceType((m >> promoShift) & pieceMask) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != PieceTypeNone }

// Kind returns the move's special-case classification.
func (m Move) Kind() MoveKind { return MoveKind((m >> kindShift) & kindMask) }

// Value returns the move's signed sort value.
func (m Move) Value() int {
	v := uint32(m>>valueShift) & valueMask32
	if v&valueSignBit != 0 {
		return int(int32(v | valueSignExt))
	}
	return int(v)
}

// WithValue returns a copy of m carrying a new sort value, preserving all
// other fields.
func (m Move) WithValue(value int) Move {
	return Move((uint32(m) &^ (valueMask32 << valueShift)) | ((uint32(value) & valueMask32) << valueShift))
}

// IsValid reports whether m encodes a non-degenerate move (distinct
// squares, valid piece).
func (m Move) IsValid() bool {
	return m.From().Valid() && m.To().Valid() && m.From() != m.To() && m.Piece() < PieceTypeNone
}

// UCI renders m in long algebraic notation ("e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}

func (m Move) String() string {
	if m == 0 {
		return "(none)"
	}
	return m.UCI()
}
