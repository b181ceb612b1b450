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

// Package evaluator computes a static score for a chess position.
// The evaluation is deliberately minimal: material plus a mobility
// term per piece, relative to the side to move.
package evaluator

import (
	"github.com/frankkopp/GambitGo/internal/config"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
)

// Evaluator computes static position scores. Weights are read from
// the configuration once at creation so they are stable across a
// search.
type Evaluator struct {
	md          *movedata.AllMoveData
	material    [PieceLength]int32
	mobility    [PieceLength]int32
	useMobility bool
}

// NewEvaluator creates an evaluator on the given attack tables using
// the configured weights.
func NewEvaluator(md *movedata.AllMoveData) *Evaluator {
	e := &Evaluator{
		md:          md,
		useMobility: config.Settings.Eval.UseMobility,
	}
	for piece := King; piece < PieceLength; piece++ {
		e.material[piece] = int32(config.Settings.Eval.Material[piece])
		e.mobility[piece] = int32(config.Settings.Eval.Mobility[piece])
	}
	return e
}

// MaterialWeight returns the material weight of a piece kind.
func (e *Evaluator) MaterialWeight(piece Piece) int32 {
	return e.material[piece]
}

// MobilityWeight returns the mobility weight of a piece kind.
func (e *Evaluator) MobilityWeight(piece Piece) int32 {
	return e.mobility[piece]
}

// Evaluate returns the score of the position from the point of view
// of the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Score {
	us := p.SideToMove()
	return PlayingScore(e.evaluateSide(p, us) - e.evaluateSide(p, us.Flip()))
}

// evaluateSide sums material and mobility of one side. Mobility is
// the number of squares each piece attacks weighted per piece kind.
func (e *Evaluator) evaluateSide(p *position.Position, side Color) int32 {
	var score int32
	occAll := p.OccupancyAll()
	for piece := King; piece < PieceLength; piece++ {
		pieceBb := p.PiecesBb(side, piece)
		for pieceBb != BbZero {
			sq := pieceBb.PopLsb()
			score += e.material[piece]
			if e.useMobility {
				controlled := e.md.Attacks(sq, piece, side, occAll).PopCount()
				score += int32(controlled) * e.mobility[piece]
			}
		}
	}
	return score
}
