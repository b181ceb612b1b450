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

package search

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/GambitGo/internal/config"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

var (
	md   *movedata.AllMoveData
	keys *zobrist.Keys
)

func TestMain(m *testing.M) {
	config.Setup()
	// keep the tt small for tests
	config.Settings.Search.TTSizeMb = 16
	var err error
	md, err = movedata.Generate()
	if err != nil {
		panic(err)
	}
	keys = zobrist.GenerateKeys(zobrist.DefaultSeed)
	os.Exit(m.Run())
}

func TestSearchFindsMateInOne(t *testing.T) {
	s := NewSearch(md)
	p, err := position.NewPositionFen("6k1/R7/1R6/8/8/8/8/K7 w - - 0 1", md, keys)
	require.NoError(t, err)

	best := s.SearchToDepth(p, 2)
	assert.Equal(t, "b6b8", best.StringUci())
	assert.Equal(t, MateScore(true, 1), s.BestScore())
}

func TestSearchFindsBackRankMateInTwo(t *testing.T) {
	s := NewSearch(md)
	// the rook ladder mates in two: 1.Ra7 Kg8 2.Rb8# (or the mirrored
	// order) - depth 4 must see the forced mate at ply 3
	p, err := position.NewPositionFen("7k/8/8/8/8/8/R7/1R4K1 w - - 0 1", md, keys)
	require.NoError(t, err)

	s.SearchToDepth(p, 4)
	score := s.BestScore()
	require.Equal(t, ScoreMate, score.Kind)
	assert.True(t, score.Mine)
	assert.LessOrEqual(t, score.Ply, int32(3))
}

func TestSearchAvoidsLosingQueen(t *testing.T) {
	s := NewSearch(md)
	// the queen is attacked by the pawn - any queen move away from the
	// pawn's reach keeps the material
	p, err := position.NewPositionFen("7k/8/8/3p4/4Q3/8/8/4K3 w - - 0 1", md, keys)
	require.NoError(t, err)

	best := s.SearchToDepth(p, 3)
	require.NotEqual(t, MoveNone, best)
	// the pawn attacks c4 and e4 - the queen must not stay in reach
	// and the resulting score must still show the queen advantage
	assert.NotEqual(t, SqC4, best.To())
	assert.True(t, s.BestScore().Greater(PlayingScore(500)))
}

func TestSearchOnTerminalPosition(t *testing.T) {
	s := NewSearch(md)
	// stalemate - no move to search
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", md, keys)
	require.NoError(t, err)
	assert.Equal(t, MoveNone, s.SearchToDepth(p, 3))
}

func TestSearchDeterminism(t *testing.T) {
	p1, err := position.NewPositionFen(position.StartFen, md, keys)
	require.NoError(t, err)
	p2, err := position.NewPositionFen(position.StartFen, md, keys)
	require.NoError(t, err)

	s1 := NewSearch(md)
	s2 := NewSearch(md)
	m1 := s1.SearchToDepth(p1, 4)
	m2 := s2.SearchToDepth(p2, 4)
	assert.Equal(t, m1, m2)
	assert.True(t, s1.BestScore().Equal(s2.BestScore()))
}

func TestFirstMove(t *testing.T) {
	s := NewSearch(md)
	p := position.NewStartPosition(md, keys)
	m := s.FirstMove(p)
	assert.NotEqual(t, MoveNone, m)

	stale, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", md, keys)
	require.NoError(t, err)
	assert.Equal(t, MoveNone, s.FirstMove(stale))
}

func TestSearchRestoresPosition(t *testing.T) {
	s := NewSearch(md)
	p := position.NewStartPosition(md, keys)
	hashBefore := p.Hash()
	fenBefore := p.StringFen()

	s.SearchToDepth(p, 3)

	assert.Equal(t, hashBefore, p.Hash())
	assert.Equal(t, fenBefore, p.StringFen())
}

func TestMateDistanceAdjustment(t *testing.T) {
	// distances are made node-relative on store and absolute on probe
	assert.Equal(t, MateScore(true, 3), toTT(MateScore(true, 5), 2))
	assert.Equal(t, MateScore(true, 5), fromTT(MateScore(true, 3), 2))
	assert.Equal(t, MateScore(false, 1), toTT(MateScore(false, 4), 3))
	assert.Equal(t, PlayingScore(7), toTT(PlayingScore(7), 3))
	assert.Equal(t, DrawScore(), fromTT(DrawScore(), 5))
}

func TestMoveOrderingCapturesFirst(t *testing.T) {
	s := NewSearch(md)
	quiet := EncodeMove(SqG1, SqF3, Knight, PieceNone, PieceNone, false, false, false)
	capture := EncodeMove(SqE4, SqD5, Pawn, PieceNone, Queen, false, false, false)
	castle := EncodeMove(SqE1, SqG1, King, PieceNone, PieceNone, false, false, true)
	moves := []Move{quiet, castle, capture}

	s.orderMovesWithTt(moves, MoveNone)
	assert.Equal(t, capture, moves[0])
	assert.Equal(t, castle, moves[1])
	assert.Equal(t, quiet, moves[2])

	// the tt move is always tried first
	s.orderMovesWithTt(moves, quiet)
	assert.Equal(t, quiet, moves[0])
}
