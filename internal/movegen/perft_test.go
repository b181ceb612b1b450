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
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/GambitGo/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func TestStandardPerft(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}
	perft := NewPerft(md, keys)

	var results = [6][3]uint64{
		// N          Nodes   Captures
		{0, 1, 0},
		{1, 20, 0},
		{2, 400, 0},
		{3, 8_902, 34},
		{4, 197_281, 1_576},
		{5, 4_865_609, 82_719},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		require.NoError(t, perft.StartPerft(position.StartFen, depth, false))
		assert.Equal(t, results[depth][1], perft.Nodes, "depth %d", depth)
		assert.Equal(t, results[depth][2], perft.CaptureCounter, "depth %d", depth)
	}
}

func TestStandardPerftEnPassant(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 5 takes a while")
	}
	perft := NewPerft(md, keys)
	require.NoError(t, perft.StartPerft(position.StartFen, 5, false))
	assert.Equal(t, uint64(4_865_609), perft.Nodes)
	assert.Equal(t, uint64(258), perft.EnpassantCounter)
}

func TestKiwipetePerft(t *testing.T) {
	perft := NewPerft(md, keys)

	require.NoError(t, perft.StartPerft(kiwipeteFen, 1, false))
	assert.Equal(t, uint64(48), perft.Nodes)

	require.NoError(t, perft.StartPerft(kiwipeteFen, 2, false))
	assert.Equal(t, uint64(2_039), perft.Nodes)

	require.NoError(t, perft.StartPerft(kiwipeteFen, 3, false))
	assert.Equal(t, uint64(97_862), perft.Nodes)

	if !testing.Short() {
		require.NoError(t, perft.StartPerft(kiwipeteFen, 4, false))
		assert.Equal(t, uint64(4_085_603), perft.Nodes)
	}
}

func TestEnPassantEdgePerft(t *testing.T) {
	// position 3 from the chessprogramming wiki - heavy on en passant
	// and pin edge cases
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	perft := NewPerft(md, keys)

	require.NoError(t, perft.StartPerft(fen, 1, false))
	assert.Equal(t, uint64(14), perft.Nodes)

	require.NoError(t, perft.StartPerft(fen, 2, false))
	assert.Equal(t, uint64(191), perft.Nodes)

	require.NoError(t, perft.StartPerft(fen, 3, false))
	assert.Equal(t, uint64(2_812), perft.Nodes)

	require.NoError(t, perft.StartPerft(fen, 4, false))
	assert.Equal(t, uint64(43_238), perft.Nodes)
}

func TestPerftDivide(t *testing.T) {
	perft := NewPerft(md, keys)
	require.NoError(t, perft.StartPerft(position.StartFen, 2, true))
	assert.Equal(t, uint64(400), perft.Nodes)
}

func TestPerftTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test only in full runs")
	}
	defer profile.Start().Stop()
	perft := NewPerft(md, keys)
	require.NoError(t, perft.StartPerft(position.StartFen, 5, false))
}
