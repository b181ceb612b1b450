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

// Package search implements the search of the engine: a negamax with
// alpha-beta pruning, quiescence search for forcing moves and a
// zobrist-keyed transposition table.
// The search is single-threaded and synchronous - it runs to its
// requested depth and returns.
package search

import (
	"sort"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/GambitGo/internal/config"
	"github.com/frankkopp/GambitGo/internal/evaluator"
	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/movegen"
	"github.com/frankkopp/GambitGo/internal/position"
	"github.com/frankkopp/GambitGo/internal/transpositiontable"
	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/util"
)

var out = message.NewPrinter(language.German)

// move ordering bonuses: the stored tt move first, then captures by
// victim value, then castles and promotions
const (
	ttMoveBonus  int32 = 1_000_000
	captureBonus int32 = 10_000
	specialBonus int32 = 5_000
)

// Search holds the state of the search: move generator, evaluator,
// transposition table and statistics. Create with NewSearch().
type Search struct {
	log  *logging.Logger
	mg   *movegen.Movegen
	eval *evaluator.Evaluator
	tt   *transpositiontable.TtTable

	useTT         bool
	useQuiescence bool
	useSortMoves  bool

	nodes     uint64
	bestMove  Move
	bestScore Score
}

// NewSearch creates a new search instance on the given attack
// tables. The transposition table is allocated to the configured
// memory budget.
func NewSearch(md *movedata.AllMoveData) *Search {
	s := &Search{
		log:           myLogging.GetSearchLog(),
		mg:            movegen.NewMovegen(md),
		eval:          evaluator.NewEvaluator(md),
		useTT:         config.Settings.Search.UseTT,
		useQuiescence: config.Settings.Search.UseQuiescence,
		useSortMoves:  config.Settings.Search.UseSortMoves,
	}
	if s.useTT {
		s.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSizeMb)
	}
	return s
}

// BestMove returns the best move of the last search.
func (s *Search) BestMove() Move {
	return s.bestMove
}

// BestScore returns the score of the best move of the last search.
func (s *Search) BestScore() Score {
	return s.bestScore
}

// Nodes returns the number of nodes visited in the last search.
func (s *Search) Nodes() uint64 {
	return s.nodes
}

// FirstMove returns the first generated move without any search.
// Used for the engine specific "go nothink" command.
func (s *Search) FirstMove(p *position.Position) Move {
	var moves []Move
	s.mg.GenerateMoves(p, &moves)
	if len(moves) == 0 {
		return MoveNone
	}
	return moves[0]
}

// SearchToDepth runs a full width search from the root position to
// the given depth and returns the best move found. Returns MoveNone
// when the position is already terminal.
func (s *Search) SearchToDepth(p *position.Position, depth int) Move {
	s.nodes = 0
	s.bestMove = MoveNone
	s.bestScore = DrawScore()
	start := time.Now()

	var moves []Move
	state := s.mg.GenerateMoves(p, &moves)
	if state != movegen.StateNormal {
		s.log.Warning(out.Sprintf("Search called on terminal position (%s)", state))
		return MoveNone
	}

	s.orderMoves(moves)

	alpha := ScoreMin
	beta := ScoreMax
	best := ScoreMin
	bestMove := moves[0]

	for _, m := range moves {
		p.DoMove(m)
		score := s.search(p, depth-1, 1, beta.Neg(), alpha.Neg()).Neg()
		p.UndoMove()
		if score.Greater(best) {
			best = score
			bestMove = m
		}
		if score.Greater(alpha) {
			alpha = score
		}
	}

	if s.useTT {
		s.tt.Put(p.Hash(), bestMove, int8(depth), toTT(best, 0), transpositiontable.BoundExact)
	}

	s.bestMove = bestMove
	s.bestScore = best

	elapsed := time.Since(start)
	s.log.Info(out.Sprintf("Search depth %d: best %s score %s nodes %d time %d ms nps %d",
		depth, bestMove.StringUci(), best.String(), s.nodes, elapsed.Milliseconds(), util.Nps(s.nodes, elapsed)))
	if s.useTT {
		s.log.Debug(s.tt.String())
	}
	return bestMove
}

// search is the recursive negamax with alpha-beta pruning and
// transposition table.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Score, beta Score) Score {
	s.nodes++
	alphaOrig := alpha

	// probe the transposition table - exact scores of sufficient
	// depth are returned directly, bounds tighten the window
	var ttMove Move
	if s.useTT {
		if e := s.tt.GetEntry(p.Hash()); e != nil {
			ttMove = e.Move
			if int(e.Depth) >= depth {
				score := fromTT(e.Score, ply)
				switch e.Bound {
				case transpositiontable.BoundExact:
					return score
				case transpositiontable.BoundLower:
					if score.Greater(alpha) {
						alpha = score
					}
				case transpositiontable.BoundUpper:
					if score.Less(beta) {
						beta = score
					}
				}
				if alpha.GreaterEqual(beta) {
					return score
				}
			}
		}
	}

	if depth == 0 {
		if s.useQuiescence {
			return s.quiescence(p, ply, alpha, beta)
		}
		return s.eval.Evaluate(p)
	}

	var moves []Move
	state := s.mg.GenerateMoves(p, &moves)
	if state == movegen.StateCheckmate {
		return MateScore(false, int32(ply))
	}
	if state == movegen.StateDraw {
		return DrawScore()
	}

	s.orderMovesWithTt(moves, ttMove)

	best := ScoreMin
	bestMove := MoveNone
	for _, m := range moves {
		p.DoMove(m)
		score := s.search(p, depth-1, ply+1, beta.Neg(), alpha.Neg()).Neg()
		p.UndoMove()
		if score.Greater(best) {
			best = score
			bestMove = m
		}
		if score.Greater(alpha) {
			alpha = score
		}
		if alpha.GreaterEqual(beta) {
			break
		}
	}

	if s.useTT {
		bound := transpositiontable.BoundExact
		if !best.Greater(alphaOrig) {
			bound = transpositiontable.BoundUpper
		} else if best.GreaterEqual(beta) {
			bound = transpositiontable.BoundLower
		}
		s.tt.Put(p.Hash(), bestMove, int8(depth), toTT(best, ply), bound)
	}
	return best
}

// quiescence searches only forcing moves (captures, promotions,
// castles) below the nominal depth to stabilize the evaluation.
// Terminal states still short-circuit to mate and draw scores.
func (s *Search) quiescence(p *position.Position, ply int, alpha Score, beta Score) Score {
	s.nodes++

	var moves []Move
	state := s.mg.GenerateMoves(p, &moves)
	if state == movegen.StateCheckmate {
		return MateScore(false, int32(ply))
	}
	if state == movegen.StateDraw {
		return DrawScore()
	}

	standPat := s.eval.Evaluate(p)
	if standPat.GreaterEqual(beta) {
		return standPat
	}
	if standPat.Greater(alpha) {
		alpha = standPat
	}

	s.orderMoves(moves)

	best := standPat
	for _, m := range moves {
		if !m.IsCapture() && m.Promoted() == PieceNone && !m.IsCastle() {
			continue
		}
		p.DoMove(m)
		score := s.quiescence(p, ply+1, beta.Neg(), alpha.Neg()).Neg()
		p.UndoMove()
		if score.Greater(best) {
			best = score
		}
		if score.Greater(alpha) {
			alpha = score
		}
		if alpha.GreaterEqual(beta) {
			break
		}
	}
	return best
}

// orderMoves sorts the moves by their heuristic score, best first.
func (s *Search) orderMoves(moves []Move) {
	s.orderMovesWithTt(moves, MoveNone)
}

// orderMovesWithTt sorts the moves by their heuristic score, best
// first. The stored tt move is tried first, captures are scored by
// the value of the victim minus the mobility weight of the attacker,
// castles and promotions get a medium bonus.
func (s *Search) orderMovesWithTt(moves []Move, ttMove Move) {
	if !s.useSortMoves {
		return
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return s.scoreMove(moves[i], ttMove) > s.scoreMove(moves[j], ttMove)
	})
}

func (s *Search) scoreMove(m Move, ttMove Move) int32 {
	if m == ttMove && m != MoveNone {
		return ttMoveBonus
	}
	var score int32
	if captured := m.Captured(); captured != PieceNone {
		score += captureBonus + s.eval.MaterialWeight(captured) - s.eval.MobilityWeight(m.Moved())
	}
	if m.IsCastle() || m.Promoted() != PieceNone {
		score += specialBonus
	}
	return score
}

// toTT converts a score for storing in the transposition table. Mate
// distances are made relative to the storing node so the entry is
// usable at any ply.
func toTT(s Score, ply int) Score {
	if s.Kind == ScoreMate {
		return MateScore(s.Mine, s.Ply-int32(ply))
	}
	return s
}

// fromTT converts a stored score back to the probing node's point of
// view by re-adding the current ply to mate distances.
func fromTT(s Score, ply int) Score {
	if s.Kind == ScoreMate {
		return MateScore(s.Mine, s.Ply+int32(ply))
	}
	return s
}
