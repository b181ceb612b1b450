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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/util"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// Perft is the leaf node counting test driver - the canonical
// correctness oracle for the move generator.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	md   *movedata.AllMoveData
	keys *zobrist.Keys
	mg   *Movegen
}

// NewPerft creates a perft driver on the given tables and keys.
func NewPerft(md *movedata.AllMoveData, keys *zobrist.Keys) *Perft {
	return &Perft{
		md:   md,
		keys: keys,
		mg:   NewMovegen(md),
	}
}

// StartPerft runs a perft to the given depth on the given fen
// position. With divide the node count per root move is printed the
// way perft debugging tools expect it.
func (pf *Perft) StartPerft(fen string, depth int, divide bool) error {
	log := logging.GetLog()

	p, err := position.NewPositionFen(fen, pf.md, pf.keys)
	if err != nil {
		return err
	}

	pf.Nodes = 0
	pf.CaptureCounter = 0
	pf.EnpassantCounter = 0
	pf.CastleCounter = 0
	pf.PromotionCounter = 0

	log.Info(out.Sprintf("Performing PERFT Test for Depth %d", depth))
	start := time.Now()

	if divide {
		var moves []Move
		pf.mg.GenerateMoves(p, &moves)
		for _, m := range moves {
			var nodes uint64 = 1
			if depth > 1 {
				p.DoMove(m)
				nodes = pf.perft(p, depth-1)
				p.UndoMove()
			}
			pf.Nodes += nodes
			out.Printf("%s %d\n", m.StringUci(), nodes)
		}
		out.Printf("\n%d\n", pf.Nodes)
	} else {
		pf.Nodes = pf.perft(p, depth)
	}

	elapsed := time.Since(start)
	log.Info(out.Sprintf("Perft depth %d: %d nodes (%d captures %d ep %d castles %d promotions) in %d ms (%d nps)",
		depth, pf.Nodes, pf.CaptureCounter, pf.EnpassantCounter, pf.CastleCounter, pf.PromotionCounter,
		elapsed.Milliseconds(), util.Nps(pf.Nodes, elapsed)))
	return nil
}

// perft counts the leaf nodes using bulk counting at the horizon.
func (pf *Perft) perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var moves []Move
	pf.mg.GenerateMoves(p, &moves)

	if depth <= 1 {
		for _, m := range moves {
			if m.IsCapture() {
				pf.CaptureCounter++
			}
			if m.IsEnPassant() {
				pf.EnpassantCounter++
			}
			if m.IsCastle() {
				pf.CastleCounter++
			}
			if m.Promoted() != PieceNone {
				pf.PromotionCounter++
			}
		}
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		p.DoMove(m)
		nodes += pf.perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}
