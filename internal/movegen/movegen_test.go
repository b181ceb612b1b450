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

package movegen

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

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

var (
	md   *movedata.AllMoveData
	keys *zobrist.Keys
)

func TestMain(m *testing.M) {
	config.Setup()
	var err error
	md, err = movedata.Generate()
	if err != nil {
		panic(err)
	}
	keys = zobrist.GenerateKeys(zobrist.DefaultSeed)
	os.Exit(m.Run())
}

func generate(t *testing.T, fen string) ([]Move, GameState) {
	t.Helper()
	p, err := position.NewPositionFen(fen, md, keys)
	require.NoError(t, err)
	var moves []Move
	state := NewMovegen(md).GenerateMoves(p, &moves)
	return moves, state
}

func movesAsUci(moves []Move) map[string]bool {
	m := make(map[string]bool, len(moves))
	for _, mv := range moves {
		m[mv.StringUci()] = true
	}
	return m
}

func TestStartPositionMoves(t *testing.T) {
	moves, state := generate(t, position.StartFen)
	assert.Equal(t, StateNormal, state)
	assert.Equal(t, 20, len(moves))

	pawnMoves := 0
	doublePushes := 0
	for _, m := range moves {
		if m.Moved() == Pawn {
			pawnMoves++
			if m.IsDoublePush() {
				doublePushes++
			}
		}
	}
	assert.Equal(t, 16, pawnMoves)
	assert.Equal(t, 8, doublePushes)
}

func TestKiwipeteMoveCount(t *testing.T) {
	moves, state := generate(t, kiwipeteFen)
	assert.Equal(t, StateNormal, state)
	assert.Equal(t, 48, len(moves))
}

func TestEnPassantDiscoveredCheckVeto(t *testing.T) {
	// taking en passant would clear the whole rank between the kings -
	// the move must be filtered out despite the ep target being set
	moves, state := generate(t, "8/8/8/8/k1pP3K/8/8/8 b - d3 0 1")
	assert.Equal(t, StateNormal, state)
	uci := movesAsUci(moves)
	assert.False(t, uci["c4d3"], "en passant capture must be vetoed")
	assert.True(t, uci["c4c3"], "the simple push must still be legal")
}

func TestEnPassantAllowed(t *testing.T) {
	moves, _ := generate(t, "8/8/8/3pP3/8/8/8/4K2k w - d6 0 1")
	uci := movesAsUci(moves)
	assert.True(t, uci["e5d6"])
	for _, m := range moves {
		if m.StringUci() == "e5d6" {
			assert.True(t, m.IsEnPassant())
			assert.Equal(t, Pawn, m.Captured())
		}
	}
}

func TestCheckmateDetection(t *testing.T) {
	// fool's mate
	moves, state := generate(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
	assert.Equal(t, StateCheckmate, state)
	assert.Equal(t, 0, len(moves))
}

func TestStalemateDetection(t *testing.T) {
	moves, state := generate(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, StateDraw, state)
	assert.Equal(t, 0, len(moves))
}

func TestHalfmoveClockDraw(t *testing.T) {
	moves, state := generate(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 101 80")
	assert.Equal(t, StateDraw, state)
	assert.Equal(t, 0, len(moves))
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// rook on e1 and knight on d6 both give check
	moves, state := generate(t, "4k3/8/3N4/8/8/8/8/4RK2 b - - 0 1")
	assert.Equal(t, StateNormal, state)
	assert.Equal(t, 3, len(moves))
	for _, m := range moves {
		assert.Equal(t, King, m.Moved())
	}
}

func TestSingleCheckCaptureOrBlockOrMove(t *testing.T) {
	// rook gives check on the e file; legal answers are king moves,
	// blocks on the file and capturing the rook
	moves, _ := generate(t, "4k3/8/8/8/4r2Q/R7/8/4K3 w - - 0 1")
	uci := movesAsUci(moves)
	assert.True(t, uci["h4e4"], "queen captures the checker")
	assert.True(t, uci["a3e3"], "rook blocks the check")
	assert.True(t, uci["e1d1"], "king steps aside")
	assert.False(t, uci["a3a4"], "quiet move does not address the check")
	assert.False(t, uci["e1e2"], "king cannot stay on the check line")
}

func TestCastlingGenerated(t *testing.T) {
	moves, _ := generate(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	found := false
	for _, m := range moves {
		if m.StringUci() == "e1g1" {
			assert.True(t, m.IsCastle())
			found = true
		}
	}
	assert.True(t, found)
}

func TestCastlingThroughAttackedSquare(t *testing.T) {
	// the black pawn on g2 attacks f1 which the king traverses
	moves, _ := generate(t, "4k3/8/8/8/8/8/6p1/4K2R w K - 0 1")
	uci := movesAsUci(moves)
	assert.False(t, uci["e1g1"])
}

func TestCastlingBlockedByPiece(t *testing.T) {
	moves, _ := generate(t, "4k3/8/8/8/8/8/8/4KB1R w K - 0 1")
	uci := movesAsUci(moves)
	assert.False(t, uci["e1g1"])
}

func TestPinnedKnightHasNoMoves(t *testing.T) {
	moves, _ := generate(t, "4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
	for _, m := range moves {
		assert.NotEqual(t, SqE2, m.From(), "pinned knight must not move")
	}
}

func TestPinnedRookMovesOnPinLine(t *testing.T) {
	moves, _ := generate(t, "4k3/8/8/8/8/4r3/4R3/4K3 w - - 0 1")
	fromPinned := make([]string, 0)
	for _, m := range moves {
		if m.From() == SqE2 {
			fromPinned = append(fromPinned, m.StringUci())
		}
	}
	assert.Equal(t, []string{"e2e3"}, fromPinned, "the pinned rook may only capture the pinner")
}

// walk the tree and verify that no generated move leaves the own king
// attacked and that undo restores the hash on every level
func TestLegalityAndHashWalk(t *testing.T) {
	for _, fen := range []string{position.StartFen, kiwipeteFen} {
		p, err := position.NewPositionFen(fen, md, keys)
		require.NoError(t, err)
		mg := NewMovegen(md)
		walkTree(t, mg, p, 3)
	}
}

func walkTree(t *testing.T, mg *Movegen, p *position.Position, depth int) {
	if depth == 0 {
		return
	}
	var moves []Move
	mg.GenerateMoves(p, &moves)
	for _, m := range moves {
		hashBefore := p.Hash()
		fenBefore := p.StringFen()
		p.DoMove(m)

		mover := p.SideToMove().Flip()
		attacked := mg.AttackedSquares(p, p.SideToMove(), p.OccupancyAll())
		require.Equal(t, BbZero, attacked&p.PiecesBb(mover, King),
			"move %s from %q leaves own king in check", m.StringUci(), fenBefore)

		walkTree(t, mg, p, depth-1)
		p.UndoMove()
		require.Equal(t, hashBefore, p.Hash())
		require.Equal(t, fenBefore, p.StringFen())
	}
}
