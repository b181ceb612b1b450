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

package position

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/GambitGo/internal/movedata"
	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

var (
	md   *movedata.AllMoveData
	keys *zobrist.Keys
)

func TestMain(m *testing.M) {
	var err error
	md, err = movedata.Generate()
	if err != nil {
		panic(err)
	}
	keys = zobrist.GenerateKeys(zobrist.DefaultSeed)
	os.Exit(m.Run())
}

// recompute the hash from scratch to verify the incremental updates
func recomputeHash(p *Position) uint64 {
	var hash uint64
	for c := White; c < ColorLength; c++ {
		for piece := King; piece < PieceLength; piece++ {
			bb := p.PiecesBb(c, piece)
			for bb != BbZero {
				hash ^= keys.PieceKey(c, piece, bb.PopLsb())
			}
		}
	}
	if p.SideToMove() == Black {
		hash ^= keys.Side
	}
	hash ^= keys.CastleRights[p.CastleRights()]
	if ep := p.EnPassantSquare(); ep != SqNone {
		hash ^= keys.EnPassantFile[ep.FileOf()]
	}
	return hash
}

func assertInvariants(t *testing.T, p *Position) {
	t.Helper()
	// occupancies are caches over the piece bitboards
	for c := White; c < ColorLength; c++ {
		var union Bitboard
		for piece := King; piece < PieceLength; piece++ {
			union |= p.PiecesBb(c, piece)
		}
		assert.Equal(t, union, p.OccupancyBb(c))
	}
	assert.Equal(t, BbZero, p.OccupancyBb(White)&p.OccupancyBb(Black))
	assert.Equal(t, p.OccupancyBb(White)|p.OccupancyBb(Black), p.OccupancyAll())
	assert.Equal(t, 1, p.PiecesBb(White, King).PopCount())
	assert.Equal(t, 1, p.PiecesBb(Black, King).PopCount())
	assert.Equal(t, recomputeHash(p), p.Hash())
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range []string{
		StartFen,
		kiwipeteFen,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/8/8/8/k1pP3K/8/8/8 b - d3 0 1",
	} {
		p, err := NewPositionFen(fen, md, keys)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.StringFen())
		assertInvariants(t, p)
	}
}

func TestFenErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",      // missing fields
		"xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // bad piece char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1",  // bad castle char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad ep square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",  // bad clock
		"8/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",         // missing king
	} {
		_, err := NewPositionFen(fen, md, keys)
		assert.Error(t, err, fen)
	}
}

func TestStartPosition(t *testing.T) {
	p := NewStartPosition(md, keys)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.CastleRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, 32, p.OccupancyAll().PopCount())
	assertInvariants(t, p)
}

// doUndo makes the move, compares the result against the expected
// fen (and its freshly computed hash) and takes the move back
// verifying every observable state is restored.
func doUndo(t *testing.T, startFenStr string, m Move, wantFen string) {
	t.Helper()
	p, err := NewPositionFen(startFenStr, md, keys)
	require.NoError(t, err)
	hashBefore := p.Hash()
	fenBefore := p.StringFen()

	p.DoMove(m)
	assert.Equal(t, wantFen, p.StringFen())
	assertInvariants(t, p)

	// the incremental hash must equal the hash of a fresh position
	fresh, err := NewPositionFen(wantFen, md, keys)
	require.NoError(t, err)
	assert.Equal(t, fresh.Hash(), p.Hash())

	p.UndoMove()
	assert.Equal(t, fenBefore, p.StringFen())
	assert.Equal(t, hashBefore, p.Hash())
	assertInvariants(t, p)
}

func TestDoUndoDoublePush(t *testing.T) {
	doUndo(t, StartFen,
		EncodeMove(SqE2, SqE4, Pawn, PieceNone, PieceNone, true, false, false),
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestDoUndoQuietMove(t *testing.T) {
	doUndo(t, StartFen,
		EncodeMove(SqG1, SqF3, Knight, PieceNone, PieceNone, false, false, false),
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1")
}

func TestDoUndoCapture(t *testing.T) {
	doUndo(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		EncodeMove(SqE4, SqD5, Pawn, PieceNone, Pawn, false, false, false),
		"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2")
}

func TestDoUndoCastling(t *testing.T) {
	doUndo(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		EncodeMove(SqE1, SqG1, King, PieceNone, PieceNone, false, false, true),
		"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")

	doUndo(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		EncodeMove(SqE8, SqC8, King, PieceNone, PieceNone, false, false, true),
		"2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2")
}

func TestDoUndoRookMoveClearsRight(t *testing.T) {
	doUndo(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		EncodeMove(SqA1, SqA2, Rook, PieceNone, PieceNone, false, false, false),
		"r3k2r/8/8/8/8/8/R7/4K2R b Kkq - 1 1")
}

func TestDoUndoRookCaptureClearsRight(t *testing.T) {
	doUndo(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		EncodeMove(SqA1, SqA8, Rook, PieceNone, Rook, false, false, false),
		"R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1")
}

func TestDoUndoPromotionWithCapture(t *testing.T) {
	doUndo(t, "rn2k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
		EncodeMove(SqB7, SqA8, Pawn, Queen, Rook, false, false, false),
		"Qn2k3/8/8/8/8/8/8/4K3 b - - 0 1")
}

func TestDoUndoPromotionPush(t *testing.T) {
	doUndo(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
		EncodeMove(SqB7, SqB8, Pawn, Knight, PieceNone, false, false, false),
		"1N2k3/8/8/8/8/8/8/4K3 b - - 0 1")
}

func TestDoUndoEnPassantCapture(t *testing.T) {
	doUndo(t, "8/8/8/3pP3/8/8/8/4K2k w - d6 0 1",
		EncodeMove(SqE5, SqD6, Pawn, PieceNone, Pawn, false, true, false),
		"8/8/3P4/8/8/8/8/4K2k b - - 0 1")
}

func TestDoUndoKingMoveClearsRights(t *testing.T) {
	doUndo(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		EncodeMove(SqE1, SqE2, King, PieceNone, PieceNone, false, false, false),
		"r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1")
}

func TestUndoWithoutHistoryPanics(t *testing.T) {
	p := NewStartPosition(md, keys)
	assert.Panics(t, func() { p.UndoMove() })
}

func TestHalfmoveClockResets(t *testing.T) {
	p := NewStartPosition(md, keys)
	p.DoMove(EncodeMove(SqG1, SqF3, Knight, PieceNone, PieceNone, false, false, false))
	assert.Equal(t, 1, p.HalfmoveClock())
	p.DoMove(EncodeMove(SqE7, SqE5, Pawn, PieceNone, PieceNone, true, false, false))
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 2, p.FullmoveNumber())
}
