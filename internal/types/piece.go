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

// Piece is a piece kind without color information.
// The integer values are fixed as they are embedded in the move
// encoding and index into the zobrist piece key table (color*6+piece).
// Changing them would invalidate all persisted data files.
type Piece int8

// Piece constants. The values King=0 .. Queen=5 are part of the
// persisted data format and must not be reordered.
const (
	King Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PieceLength
	// PieceNone is the sentinel used in the 4-bit move encoding fields
	PieceNone Piece = 15
)

// IsValid checks if the piece is one of the six piece kinds.
func (p Piece) IsValid() bool {
	return p >= King && p < PieceLength
}

// String returns the upper case letter of the piece ("K", "P", ...).
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceChars[p])
}

var pieceChars = [PieceLength]byte{'K', 'P', 'N', 'B', 'R', 'Q'}

// PieceFromChar returns the piece for a FEN piece letter independent
// of its case. Returns PieceNone for any other character.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'k', 'K':
		return King
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	}
	return PieceNone
}

// FenChar returns the FEN letter of the piece for the given color.
// White pieces are upper case, black pieces lower case.
func (p Piece) FenChar(c Color) byte {
	if !p.IsValid() {
		return '-'
	}
	if c == Black {
		return pieceChars[p] + ('a' - 'A')
	}
	return pieceChars[p]
}

// Color represents the two sides in chess.
type Color uint8

// Color constants. White=0 and Black=1 are part of the persisted
// data format (zobrist piece key index is color*6+piece).
const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the other color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// CastleRights encodes the four castling rights as independent bits
// in a 4-bit mask.
type CastleRights uint8

// CastleRights constants
const (
	CastlingNone       CastleRights = 0
	CastlingWhiteKing  CastleRights = 0b0001
	CastlingWhiteQueen CastleRights = 0b0010
	CastlingBlackKing  CastleRights = 0b0100
	CastlingBlackQueen CastleRights = 0b1000
	CastlingAll        CastleRights = 0b1111
	CastleRightsLength              = 16
)

// Has tests if all bits of the given rights are set.
func (cr CastleRights) Has(rights CastleRights) bool {
	return cr&rights == rights
}

// Remove clears the bits of the given rights.
func (cr *CastleRights) Remove(rights CastleRights) {
	*cr &^= rights
}

// Add sets the bits of the given rights.
func (cr *CastleRights) Add(rights CastleRights) {
	*cr |= rights
}

// String returns the FEN representation of the castle rights,
// e.g. "KQkq" or "-".
func (cr CastleRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var s []byte
	if cr.Has(CastlingWhiteKing) {
		s = append(s, 'K')
	}
	if cr.Has(CastlingWhiteQueen) {
		s = append(s, 'Q')
	}
	if cr.Has(CastlingBlackKing) {
		s = append(s, 'k')
	}
	if cr.Has(CastlingBlackQueen) {
		s = append(s, 'q')
	}
	return string(s)
}
