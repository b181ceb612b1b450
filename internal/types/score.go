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

import "fmt"

// ScoreKind distinguishes the three kinds of search scores.
type ScoreKind uint8

// ScoreKind constants
const (
	ScorePlaying ScoreKind = iota
	ScoreDraw
	ScoreMate
)

// Score is the value of a position from the point of view of the
// side to move. It is either a centipawn-like playing score, a draw
// or a forced mate with a distance in plies.
//
// Ordering: our own mates beat every other score and prefer a
// shorter distance, the opponent's mates are worse than everything
// else and prefer a longer distance, a draw equals a playing score
// of 0.
type Score struct {
	Kind ScoreKind
	// Mine is true when the mate is in favor of the side to move.
	// Only meaningful for ScoreMate.
	Mine bool
	// Ply is the mate distance in plies. Only meaningful for ScoreMate.
	Ply int32
	// CP is the centipawn value. Only meaningful for ScorePlaying.
	CP int32
}

// PlayingScore creates a playing score from a centipawn value.
func PlayingScore(cp int32) Score {
	return Score{Kind: ScorePlaying, CP: cp}
}

// DrawScore creates a draw score.
func DrawScore() Score {
	return Score{Kind: ScoreDraw}
}

// MateScore creates a forced mate score. mine is true when the side
// to move delivers the mate, ply is the distance in plies.
func MateScore(mine bool, ply int32) Score {
	return Score{Kind: ScoreMate, Mine: mine, Ply: ply}
}

// ScoreMin and ScoreMax are the bounds of the score ordering used to
// initialize alpha/beta windows. ScoreMin is "mated right now",
// ScoreMax is "mate right now" - no reachable score is better resp.
// worse.
var (
	ScoreMin = MateScore(false, 0)
	ScoreMax = MateScore(true, 0)
)

// mateBase is chosen well above any possible playing score so that
// the ordinal ranges of mates and playing scores can never overlap.
const mateBase int64 = 1 << 40

// ordinal maps the score onto an int64 preserving the score
// ordering. Mates for us map near +mateBase (closer mates higher),
// mates against us near -mateBase (closer mates lower), draws to 0
// which makes them equal to a playing score of 0.
func (s Score) ordinal() int64 {
	switch s.Kind {
	case ScoreMate:
		if s.Mine {
			return mateBase - int64(s.Ply)
		}
		return -mateBase + int64(s.Ply)
	case ScoreDraw:
		return 0
	default:
		return int64(s.CP)
	}
}

// Cmp compares two scores. Returns a negative number when s is worse
// than o, 0 when equal and a positive number when s is better.
func (s Score) Cmp(o Score) int {
	a, b := s.ordinal(), o.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal tests scores for equality. A draw and a playing score of 0
// are equal.
func (s Score) Equal(o Score) bool {
	return s.Cmp(o) == 0
}

// Greater returns true when s is better than o.
func (s Score) Greater(o Score) bool {
	return s.Cmp(o) > 0
}

// GreaterEqual returns true when s is better than or equal to o.
func (s Score) GreaterEqual(o Score) bool {
	return s.Cmp(o) >= 0
}

// Less returns true when s is worse than o.
func (s Score) Less(o Score) bool {
	return s.Cmp(o) < 0
}

// Neg returns the score from the other side's point of view.
func (s Score) Neg() Score {
	switch s.Kind {
	case ScoreMate:
		return MateScore(!s.Mine, s.Ply)
	case ScoreDraw:
		return s
	default:
		return PlayingScore(-s.CP)
	}
}

// String returns the score in UCI notation ("cp 13", "mate 3",
// "mate -2").
func (s Score) String() string {
	switch s.Kind {
	case ScoreMate:
		moves := (s.Ply + 1) / 2
		if !s.Mine {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	case ScoreDraw:
		return "cp 0"
	default:
		return fmt.Sprintf("cp %d", s.CP)
	}
}
