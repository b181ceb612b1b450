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

// Square represents a chess board square as an index 0..63.
// Square 0 is a8 (top left from white's point of view), square 63
// is h1. file = square % 8, rank from the top = square / 8.
// All attack table and ray arithmetic assumes this indexing.
type Square uint8

// Square constants, a8 = 0, h1 = 63
//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
	SqLength = 64
)

// NewSquare creates a square from a file (0..7 = a..h) and a rank
// counted from the top of the board (0 = rank 8, 7 = rank 1).
func NewSquare(file uint8, rankFromTop uint8) Square {
	return Square(rankFromTop*8 + file)
}

// IsValid checks if the square is a valid board square.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square (0 = file a).
func (sq Square) FileOf() uint8 {
	return uint8(sq) % 8
}

// RankOf returns the rank of the square counted from the top of the
// board (0 = rank 8, 7 = rank 1).
func (sq Square) RankOf() uint8 {
	return uint8(sq) / 8
}

// String returns the algebraic notation of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{'a' + sq.FileOf(), '1' + (7 - sq.RankOf())})
}

// SquareFromString parses a square in algebraic notation, e.g. "e4".
// Returns SqNone if the string is not a valid square.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return SqNone
	}
	file := s[0] - 'a'
	rankFromTop := 7 - (s[1] - '1')
	return NewSquare(file, rankFromTop)
}
