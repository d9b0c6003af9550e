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

// Package board holds the canonical position representation (piece-type
// bitboards plus game-state flags) and the single mutating operation,
// Move.Apply, that advances it.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrel-engine/kestrel/internal/bitboard"
	"github.com/kestrel-engine/kestrel/internal/types"
)

// Board is a complete chess position. It contains no pointers, so Go
// value-copy semantics give callers a cheap, safe snapshot.
type Board struct {
	pieces   [types.PieceTypeLength]bitboard.Bitboard
	white    bitboard.Bitboard
	occupied bitboard.Bitboard

	SideToMove      types.Color
	Castling        types.CastlingRights
	EnPassantSquare types.Square
	HalfmoveClock   int
	FullmoveNumber  int
}

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Pieces returns the bitboard of all pieces of the given type, both
// colors.
func (b *Board) Pieces(pt types.PieceType) bitboard.Bitboard {
	return b.pieces[pt]
}

// PiecesOf returns the bitboard of pieces of the given type and color.
func (b *Board) PiecesOf(c types.Color, pt types.PieceType) bitboard.Bitboard {
	if c == types.White {
		return b.pieces[pt] & b.white
	}
	return b.pieces[pt] &^ b.white
}

// Occupied returns the union of all pieces on the board.
func (b *Board) Occupied() bitboard.Bitboard { return b.occupied }

// ColorBB returns the squares occupied by the given color.
func (b *Board) ColorBB(c types.Color) bitboard.Bitboard {
	if c == types.White {
		return b.white
	}
	return b.occupied &^ b.white
}

// PieceAt returns the piece occupying sq and whether one is present.
func (b *Board) PieceAt(sq types.Square) (types.Piece, bool) {
	bb := bitboard.SquareBB(sq)
	if b.occupied&bb == 0 {
		return 0, false
	}
	c := types.Black
	if b.white&bb != 0 {
		c = types.White
	}
	for pt := types.Pawn; pt < types.PieceTypeLength; pt++ {
		if b.pieces[pt]&bb != 0 {
			return types.MakePiece(c, pt), true
		}
	}
	return 0, false
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c types.Color) types.Square {
	return b.PiecesOf(c, types.King).Lsb()
}

func (b *Board) set(c types.Color, pt types.PieceType, sq types.Square) {
	bb := bitboard.SquareBB(sq)
	b.pieces[pt] |= bb
	b.occupied |= bb
	if c == types.White {
		b.white |= bb
	}
}

// Clone returns an independent copy of b.
func (b *Board) Clone() Board {
	return *b
}

// FromFEN parses a standard six-field FEN string into a Board. Trailing
// halfmove/fullmove fields may be omitted, in which case they default to
// zero.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: invalid fen %q: need at least 4 fields", fen)
	}
	b := &Board{EnPassantSquare: types.SquareNone}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: invalid fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := types.Rank(7 - i)
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pt := types.PieceTypeFromChar(byte(toLower(byte(ch))))
				if pt == types.PieceTypeNone {
					return nil, fmt.Errorf("board: invalid fen %q: bad piece char %q", fen, ch)
				}
				c := types.Black
				if ch >= 'A' && ch <= 'Z' {
					c = types.White
				}
				if file > 7 {
					return nil, fmt.Errorf("board: invalid fen %q: rank overflow", fen)
				}
				b.set(c, pt, types.MakeSquare(types.File(file), rank))
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("board: invalid fen %q: rank %d has %d files", fen, i, file)
		}
	}

	switch fields[1] {
	case "w":
		b.SideToMove = types.White
	case "b":
		b.SideToMove = types.Black
	default:
		return nil, fmt.Errorf("board: invalid fen %q: bad side to move %q", fen, fields[1])
	}

	b.Castling = types.CastlingNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.Castling |= types.WhiteKingside
			case 'Q':
				b.Castling |= types.WhiteQueenside
			case 'k':
				b.Castling |= types.BlackKingside
			case 'q':
				b.Castling |= types.BlackQueenside
			default:
				return nil, fmt.Errorf("board: invalid fen %q: bad castling char %q", fen, ch)
			}
		}
	}

	if fields[3] == "-" {
		b.EnPassantSquare = types.SquareNone
	} else {
		sq := types.SquareFromString(fields[3])
		if sq == types.SquareNone {
			return nil, fmt.Errorf("board: invalid fen %q: bad en passant square %q", fen, fields[3])
		}
		b.EnPassantSquare = sq
	}

	b.HalfmoveClock = 0
	b.FullmoveNumber = 0
	if len(fields) >= 5 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			b.HalfmoveClock = v
		}
	}
	if len(fields) >= 6 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			b.FullmoveNumber = v
		}
	}

	return b, nil
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// FEN renders b as a standard six-field FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := types.MakeSquare(types.File(f), types.Rank(r))
			p, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.SideToMove == types.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))
	return sb.String()
}

// ParseUCIMove resolves a long-algebraic move string ("e2e4", "e7e8q")
// against the legal moves supplied by legal, recovering the piece type
// and special-move flags that the bare UCI string does not carry.
func ParseUCIMove(s string, legal []types.Move) (types.Move, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("board: invalid uci move %q", s)
	}
	from := types.SquareFromString(s[0:2])
	to := types.SquareFromString(s[2:4])
	if from == types.SquareNone || to == types.SquareNone {
		return 0, fmt.Errorf("board: invalid uci move %q", s)
	}
	var promo types.PieceType = types.PieceTypeNone
	if len(s) == 5 {
		promo = types.PieceTypeFromChar(s[4])
	}
	for _, m := range legal {
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			return m, nil
		}
	}
	return 0, fmt.Errorf("board: move %q is not legal in this position", s)
}

// cornerRight maps the castling-rook home squares to their castling
// right; a move touching one of them clears the matching castling right regardless of which piece
// moved (covers both "rook moved" and "rook got captured").
var cornerRight = map[types.Square]types.CastlingRights{
	types.SqA1: types.WhiteQueenside,
	types.SqH1: types.WhiteKingside,
	types.SqA8: types.BlackQueenside,
	types.SqH8: types.BlackKingside,
}

// castleRookMove describes the rook relocation implied by each of the
// four castling moves, keyed by the king's destination square.
type castleRookMove struct {
	from, to types.Square
}

var castleRook = map[types.Square]castleRookMove{
	types.SqG1: {types.SqH1, types.SqF1},
	types.SqC1: {types.SqA1, types.SqD1},
	types.SqG8: {types.SqH8, types.SqF8},
	types.SqC8: {types.SqA8, types.SqD8},
}

// Apply mutates b to reflect playing move. Apply never fails: move is
// assumed to be a member of the legal move list for b's current
// position.
func Apply(move types.Move, b *Board) {
	from, to := move.From(), move.To()
	mover := move.Piece()
	us := b.SideToMove
	them := us.Flip()

	destBB := bitboard.SquareBB(to)
	wasCapture := b.occupied&destBB != 0
	for pt := types.Pawn; pt < types.PieceTypeLength; pt++ {
		b.pieces[pt] &^= destBB
	}
	b.white &^= destBB
	b.occupied &^= destBB

	if move.IsPromotion() {
		b.pieces[mover] &^= bitboard.SquareBB(from)
		b.pieces[move.Promotion()] |= destBB
	} else {
		moveMask := bitboard.SquareBB(from) | destBB
		b.pieces[mover] ^= moveMask
	}
	b.occupied = (b.occupied &^ bitboard.SquareBB(from)) | destBB
	if us == types.White {
		b.white = (b.white &^ bitboard.SquareBB(from)) | destBB
	} else {
		b.white = b.white &^ bitboard.SquareBB(from)
	}

	b.EnPassantSquare = types.SquareNone
	if mover == types.Pawn {
		delta := int(to) - int(from)
		if delta == 16 || delta == -16 {
			b.EnPassantSquare = types.Square(int(from) + us.PawnDir()*8)
		}
	}

	if move.Kind() == types.MoveEnPassant {
		capSq := types.Square(int(to) - us.PawnDir()*8)
		capBB := bitboard.SquareBB(capSq)
		b.pieces[types.Pawn] &^= capBB
		b.occupied &^= capBB
		b.white &^= capBB
	}

	if mover == types.King {
		if us == types.White {
			b.Castling &^= types.WhiteKingside | types.WhiteQueenside
		} else {
			b.Castling &^= types.BlackKingside | types.BlackQueenside
		}
	}
	if right, ok := cornerRight[from]; ok {
		b.Castling &^= right
	}
	if right, ok := cornerRight[to]; ok {
		b.Castling &^= right
	}

	if move.Kind() == types.MoveCastle {
		rm := castleRook[to]
		rookMask := bitboard.SquareBB(rm.from) | bitboard.SquareBB(rm.to)
		b.pieces[types.Rook] ^= rookMask
		b.occupied ^= rookMask
		if us == types.White {
			b.white ^= rookMask
		}
	}

	if mover == types.Pawn || wasCapture || move.Kind() == types.MoveEnPassant {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if us == types.Black {
		b.FullmoveNumber++
	}
	b.SideToMove = them
}
