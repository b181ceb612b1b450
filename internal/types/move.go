/*
 * GambitGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "strings"

// Move is a chess move packed into a single 32-bit word for cache
// friendliness in move lists.
//
// Layout (bit offsets):
//  0- 5  source square
//  6-11  target square
// 12-15  piece moved
// 16-19  promoted piece (0xF = none)
// 20-23  captured piece (0xF = none)
// 24     double pawn push flag
// 25     en passant capture flag
// 26     castle flag
type Move uint32

// MoveNone is the empty move. A real move always has 0xF in the
// promoted field when it is not a promotion so the zero word can
// never be a legal move.
const MoveNone Move = 0

// bit offsets of the move word fields
const (
	moveShiftTarget   = 6
	moveShiftPiece    = 12
	moveShiftPromoted = 16
	moveShiftCaptured = 20
	moveShiftDouble   = 24
	moveShiftEnPa     = 25
	moveShiftCastle   = 26

	moveFieldNone = 0xF
)

// EncodeMove packs all move information into a Move word.
// promoted and captured may be PieceNone.
func EncodeMove(from Square, to Square, moved Piece, promoted Piece, captured Piece,
	doublePush bool, enPassant bool, castle bool) Move {

	m := Move(from)
	m |= Move(to) << moveShiftTarget
	m |= Move(moved) << moveShiftPiece

	if promoted.IsValid() {
		m |= Move(promoted) << moveShiftPromoted
	} else {
		m |= moveFieldNone << moveShiftPromoted
	}

	if captured.IsValid() {
		m |= Move(captured) << moveShiftCaptured
	} else {
		m |= moveFieldNone << moveShiftCaptured
	}

	if doublePush {
		m |= 1 << moveShiftDouble
	}
	if enPassant {
		m |= 1 << moveShiftEnPa
	}
	if castle {
		m |= 1 << moveShiftCastle
	}
	return m
}

// From returns the source square of the move.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the target square of the move.
func (m Move) To() Square {
	return Square((m >> moveShiftTarget) & 0x3F)
}

// Moved returns the piece which is moved.
func (m Move) Moved() Piece {
	return Piece((m >> moveShiftPiece) & 0xF)
}

// Promoted returns the promotion piece of the move or PieceNone.
func (m Move) Promoted() Piece {
	p := Piece((m >> moveShiftPromoted) & 0xF)
	if p == moveFieldNone {
		return PieceNone
	}
	return p
}

// Captured returns the captured piece of the move or PieceNone.
func (m Move) Captured() Piece {
	p := Piece((m >> moveShiftCaptured) & 0xF)
	if p == moveFieldNone {
		return PieceNone
	}
	return p
}

// IsDoublePush returns true when the move is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m&(1<<moveShiftDouble) != 0
}

// IsEnPassant returns true when the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m&(1<<moveShiftEnPa) != 0
}

// IsCastle returns true when the move is a castling move.
func (m Move) IsCastle() bool {
	return m&(1<<moveShiftCastle) != 0
}

// IsCapture returns true when the move captures a piece (incl. en
// passant).
func (m Move) IsCapture() bool {
	return m.Captured() != PieceNone
}

// StringUci returns the move in UCI long algebraic notation,
// e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	switch m.Promoted() {
	case Queen:
		sb.WriteString("q")
	case Rook:
		sb.WriteString("r")
	case Bishop:
		sb.WriteString("b")
	case Knight:
		sb.WriteString("n")
	}
	return sb.String()
}

// String returns the UCI notation of the move.
func (m Move) String() string {
	return m.StringUci()
}
