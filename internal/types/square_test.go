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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareIndexing(t *testing.T) {
	// square 0 is a8, square 63 is h1
	assert.Equal(t, Square(0), SqA8)
	assert.Equal(t, Square(63), SqH1)
	assert.Equal(t, Square(60), SqE1)
	assert.Equal(t, Square(4), SqE8)

	assert.Equal(t, uint8(4), SqE1.FileOf())
	assert.Equal(t, uint8(7), SqE1.RankOf())
	assert.Equal(t, uint8(0), SqA8.RankOf())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "h1", SqH1.String())
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareFromString(t *testing.T) {
	assert.Equal(t, SqA8, SquareFromString("a8"))
	assert.Equal(t, SqH1, SquareFromString("h1"))
	assert.Equal(t, SqD3, SquareFromString("d3"))
	assert.Equal(t, SqNone, SquareFromString("i1"))
	assert.Equal(t, SqNone, SquareFromString("a9"))
	assert.Equal(t, SqNone, SquareFromString("a"))
	assert.Equal(t, SqNone, SquareFromString(""))
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		assert.Equal(t, sq, SquareFromString(sq.String()))
		assert.Equal(t, sq, NewSquare(sq.FileOf(), sq.RankOf()))
	}
}
