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

func TestScoreDrawEqualsZero(t *testing.T) {
	assert.True(t, PlayingScore(0).Equal(DrawScore()))
	assert.True(t, DrawScore().Equal(PlayingScore(0)))
	assert.False(t, DrawScore().Equal(PlayingScore(1)))
	assert.True(t, DrawScore().Less(PlayingScore(1)))
	assert.True(t, DrawScore().Greater(PlayingScore(-1)))
}

func TestScoreTotalOrder(t *testing.T) {
	// my mates beat everything and prefer shorter distance, the
	// opponent's mates are worse than everything and prefer longer
	// distance
	ordered := []Score{
		MateScore(true, 2),
		MateScore(true, 5),
		PlayingScore(10_000),
		PlayingScore(-10_000),
		MateScore(false, 5),
		MateScore(false, 2),
	}
	for i := 0; i < len(ordered)-1; i++ {
		assert.True(t, ordered[i].Greater(ordered[i+1]),
			"%s must be greater than %s", ordered[i], ordered[i+1])
		assert.True(t, ordered[i+1].Less(ordered[i]))
	}
}

func TestScoreNeg(t *testing.T) {
	assert.Equal(t, MateScore(false, 3), MateScore(true, 3).Neg())
	assert.Equal(t, MateScore(true, 3), MateScore(false, 3).Neg())
	assert.Equal(t, PlayingScore(-42), PlayingScore(42).Neg())
	assert.Equal(t, DrawScore(), DrawScore().Neg())
}

func TestScoreBounds(t *testing.T) {
	// no reachable score is better than ScoreMax or worse than ScoreMin
	scores := []Score{
		PlayingScore(1_000_000), PlayingScore(-1_000_000),
		MateScore(true, 1), MateScore(false, 1), DrawScore(),
	}
	for _, s := range scores {
		assert.True(t, ScoreMax.GreaterEqual(s))
		assert.True(t, s.GreaterEqual(ScoreMin))
	}
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "cp 13", PlayingScore(13).String())
	assert.Equal(t, "cp 0", DrawScore().String())
	assert.Equal(t, "mate 2", MateScore(true, 3).String())
	assert.Equal(t, "mate -1", MateScore(false, 2).String())
}
