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

// Package types contains various user defined data types and their
// functions necessary for the chess engine. E.g. bitboards, squares,
// pieces, moves, scores, etc.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit unsigned value where each bit represents a
// square of the chess board. Bit 0 is square a8, bit 63 is square h1
// (see Square for the indexing scheme).
type Bitboard uint64

// Bitboard constants
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// SquareBb returns a Bitboard with only the bit for the given
// square set.
func SquareBb(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// SetBit sets the bit for the given square.
func (b *Bitboard) SetBit(sq Square) {
	*b |= SquareBb(sq)
}

// PopBit clears the bit for the given square.
func (b *Bitboard) PopBit(sq Square) {
	*b &^= SquareBb(sq)
}

// Has tests whether the bit for the given square is set.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBb(sq) != 0
}

// MoveBit clears the bit for the from square and sets the bit for
// the to square. Used for the incremental updates when making and
// unmaking moves.
func (b *Bitboard) MoveBit(from Square, to Square) {
	*b &^= SquareBb(from)
	*b |= SquareBb(to)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit or SqNone
// when the bitboard is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the square of the least significant set bit and
// clears it from the bitboard. Returns SqNone when the bitboard
// is empty.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// String returns a string of the bitboard as a 64-bit binary grouped
// in 8-bit blocks. Highest bit (h1) first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if b&(Bitboard(1)<<uint(i)) != 0 {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
		if i%8 == 0 && i != 0 {
			sb.WriteString(".")
		}
	}
	return sb.String()
}

// StringBoard returns a string of the bitboard as a board matrix the
// way a player sees it with white on the bottom. Set bits are marked
// with an X.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for sq := Square(0); sq < SqLength; sq++ {
		if b.Has(sq) {
			sb.WriteString("| X ")
		} else {
			sb.WriteString("|   ")
		}
		if sq.FileOf() == 7 {
			sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		}
	}
	return sb.String()
}
