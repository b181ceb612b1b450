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

// Package movegen contains the legal move generator of the engine.
// Moves are generated fully legal in a single pass using king danger
// squares, check detection and pin analysis - there is no
// make-and-test filtering.
package movegen

import (
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/position"
	. "github.com/frankkopp/GambitGo/internal/types"
)

// GameState classifies the position after move generation.
type GameState int

// GameState constants
const (
	// StateNormal - the side to move has at least one legal move
	StateNormal GameState = iota
	// StateDraw - stalemate or the halfmove clock ran out
	StateDraw
	// StateCheckmate - the side to move is in check without legal moves
	StateCheckmate
)

func (gs GameState) String() string {
	switch gs {
	case StateDraw:
		return "draw"
	case StateCheckmate:
		return "checkmate"
	default:
		return "normal"
	}
}

var promotionPieces = [4]Piece{Queen, Bishop, Rook, Knight}

var allCastleRights = [4]CastleRights{
	CastlingWhiteKing, CastlingWhiteQueen, CastlingBlackKing, CastlingBlackQueen,
}

// Movegen is the move generator. It is a read-only consumer of a
// position plus the shared attack tables and holds no position state
// itself, so one instance can serve any number of positions.
type Movegen struct {
	md *movedata.AllMoveData
}

// NewMovegen creates a move generator using the given attack tables.
func NewMovegen(md *movedata.AllMoveData) *Movegen {
	return &Movegen{md: md}
}

// GenerateMoves generates all legal moves for the side to move into
// the given slice (which is reset first) and classifies the position.
// When the halfmove clock has run out or the position is mate or
// stalemate no moves are returned.
func (mg *Movegen) GenerateMoves(p *position.Position, moves *[]Move) GameState {
	*moves = (*moves)[:0]

	if p.HalfmoveClock() > 100 {
		return StateDraw
	}

	us := p.SideToMove()
	them := us.Flip()
	occAll := p.OccupancyAll()
	kingBb := p.PiecesBb(us, King)
	kingSq := p.KingSquare(us)

	// king danger squares are computed with the king removed so
	// sliders attack through it
	kingAttacks := mg.md.Attacks(kingSq, King, us, occAll) &^ p.OccupancyBb(us)
	danger := mg.AttackedSquares(p, them, occAll&^kingBb)
	kingAttacks &^= danger

	// checkers: a piece of kind k checks the king iff a piece of kind
	// k on the king square would attack it - this covers pawns,
	// knights and sliders uniformly
	var checkers Bitboard
	for piece := Pawn; piece < PieceLength; piece++ {
		attacksFromKing := mg.md.Attacks(kingSq, piece, us, occAll)
		checkers |= p.PiecesBb(them, piece) & attacksFromKing
	}
	numChecking := checkers.PopCount()

	mg.addMoves(p, moves, kingSq, kingAttacks, King, false)

	// in double check only the king can move
	if numChecking > 1 {
		if len(*moves) == 0 {
			return StateCheckmate
		}
		return StateNormal
	}

	captureMask := BbAll
	blockMask := BbAll
	var castleTargets Bitboard
	if numChecking == 1 {
		// non-king moves must capture the checker or block the check
		captureMask = checkers
		blockMask = mg.md.SquaresBetween(kingSq, checkers.Lsb())
	} else {
		// castling - only without check: the king must not traverse
		// an attacked square and the squares between king and rook
		// must be empty
		for _, right := range allCastleRights {
			if movedata.CastleColor(right) != us || !p.CastleRights().Has(right) {
				continue
			}
			target, traversed := movedata.CastleInfo(right)
			if traversed&danger != 0 {
				continue
			}
			rookFrom, _ := movedata.RookCastleMovement(target)
			if mg.md.SquaresBetween(rookFrom, kingSq)&occAll != 0 {
				continue
			}
			castleTargets.SetBit(target)
		}
	}
	mg.addMoves(p, moves, kingSq, castleTargets, King, true)

	// pinned pieces: a candidate is the single blocker between an
	// opponent slider and the king, visible from both sides
	queenFromKing := mg.md.Attacks(kingSq, Queen, us, occAll)
	var handled Bitboard
	for sliderPiece := Bishop; sliderPiece <= Queen; sliderPiece++ {
		sliders := p.PiecesBb(them, sliderPiece)
		for sliders != BbZero {
			sliderSq := sliders.PopLsb()
			between := mg.md.SquaresBetween(sliderSq, kingSq)
			if between == BbZero {
				continue
			}
			sliderAttacks := mg.md.Attacks(sliderSq, sliderPiece, them, occAll)
			pinned := sliderAttacks & queenFromKing & between
			if pinned == BbZero {
				continue
			}
			// a pinned piece may only move on the pin line - it can
			// stay between or capture the pinner
			pinLine := between | SquareBb(sliderSq)
			for piece := Pawn; piece < PieceLength; piece++ {
				pinnedOfKind := p.PiecesBb(us, piece) & pinned
				for pinnedOfKind != BbZero {
					pinnedSq := pinnedOfKind.PopLsb()
					attacks := mg.legalAttacks(p, pinnedSq, piece, occAll, blockMask, captureMask, kingSq)
					mg.addMoves(p, moves, pinnedSq, attacks&pinLine, piece, false)
					handled.SetBit(pinnedSq)
				}
			}
		}
	}

	// all remaining non-king pieces
	for piece := Pawn; piece < PieceLength; piece++ {
		pieceBb := p.PiecesBb(us, piece) &^ handled
		for pieceBb != BbZero {
			sq := pieceBb.PopLsb()
			attacks := mg.legalAttacks(p, sq, piece, occAll, blockMask, captureMask, kingSq)
			mg.addMoves(p, moves, sq, attacks, piece, false)
		}
	}

	if len(*moves) == 0 {
		if numChecking != 0 {
			return StateCheckmate
		}
		return StateDraw
	}
	return StateNormal
}

// AttackedSquares returns all squares the given side attacks with the
// given occupancy. The occupancy parameter allows computing king
// danger squares with the king removed from the board.
func (mg *Movegen) AttackedSquares(p *position.Position, side Color, occupancy Bitboard) Bitboard {
	var attacked Bitboard
	for piece := King; piece < PieceLength; piece++ {
		pieceBb := p.PiecesBb(side, piece)
		for pieceBb != BbZero {
			sq := pieceBb.PopLsb()
			attacked |= mg.md.Attacks(sq, piece, side, occupancy)
		}
	}
	return attacked
}

// legalAttacks computes the legal target squares of a non-king piece
// considering the block and capture masks of a check. Pawns get
// their special treatment for pushes, captures, en passant and the
// en passant discovered check.
func (mg *Movegen) legalAttacks(p *position.Position, sq Square, piece Piece, occAll Bitboard,
	blockMask Bitboard, captureMask Bitboard, kingSq Square) Bitboard {

	us := p.SideToMove()
	them := us.Flip()
	attacks := mg.md.Attacks(sq, piece, us, occAll)

	if piece == Pawn {
		pawnCaptureMask := p.OccupancyBb(them) & captureMask
		if ep := p.EnPassantSquare(); ep != SqNone {
			// the en passant target only counts when capturing the
			// double pushed pawn resolves the check
			doublePushedSq := ep + 8
			if them == White {
				doublePushedSq = ep - 8
			}
			if SquareBb(doublePushedSq)&captureMask != BbZero {
				pawnCaptureMask.SetBit(ep)
			}
			if mg.enPassantDiscoveredCheck(p, sq, doublePushedSq, kingSq, occAll, attacks, ep) {
				pawnCaptureMask.PopBit(ep)
			}
		}
		pawnAttacks := attacks & pawnCaptureMask

		// push geometry: a blocked single push square also cancels
		// the double push
		pawnMoves := mg.md.PawnMoves(sq, us)
		if pawnMoves.PopCount() == 2 && occAll&(mg.md.PawnSinglePushRank(us)&pawnMoves) != BbZero {
			pawnMoves = BbZero
		}
		pawnMoves &= blockMask
		pawnMoves &^= p.OccupancyBb(them)
		attacks = pawnAttacks | pawnMoves
	} else {
		attacks &= blockMask | captureMask
	}

	attacks &^= p.OccupancyBb(us)
	return attacks
}

// enPassantDiscoveredCheck detects the case where capturing en
// passant removes both pawns from the en passant rank and thereby
// exposes the king to a straight attack along that rank. The check
// considers opponent rooks, queens and the opponent king sharing the
// rank with exactly the two pawns between them and our king.
func (mg *Movegen) enPassantDiscoveredCheck(p *position.Position, pawnSq Square, doublePushedSq Square,
	kingSq Square, occAll Bitboard, pawnAttacks Bitboard, ep Square) bool {

	if pawnAttacks&SquareBb(ep) == BbZero {
		return false
	}
	them := p.SideToMove().Flip()
	epRank := mg.md.PawnDoublePushRank(them)
	if epRank&SquareBb(kingSq) == BbZero {
		return false
	}
	bothPawns := SquareBb(pawnSq) | SquareBb(doublePushedSq)
	for _, piece := range [3]Piece{Rook, Queen, King} {
		enemies := p.PiecesBb(them, piece) & epRank
		for enemies != BbZero {
			enemySq := enemies.PopLsb()
			if mg.md.SquaresBetween(kingSq, enemySq)&occAll == bothPawns {
				return true
			}
		}
	}
	return false
}

// addMoves emits a move for every target square. Captures are
// resolved by scanning the opponent piece bitboards, pawn moves get
// their double push, en passant and promotion decoration.
func (mg *Movegen) addMoves(p *position.Position, moves *[]Move, from Square, targets Bitboard,
	piece Piece, castle bool) {

	us := p.SideToMove()
	them := us.Flip()
	for targets != BbZero {
		to := targets.PopLsb()

		captured := PieceNone
		for pc := King; pc < PieceLength; pc++ {
			if p.PiecesBb(them, pc).Has(to) {
				captured = pc
				break
			}
		}

		enPassant := false
		doublePush := false
		if piece == Pawn {
			// a pawn reaching the promotion rank yields four moves
			if SquareBb(to)&mg.md.PromotionRank(us) != BbZero {
				for _, promo := range promotionPieces {
					*moves = append(*moves, EncodeMove(from, to, piece, promo, captured, false, false, castle))
				}
				continue
			}
			if ep := p.EnPassantSquare(); ep != SqNone && to == ep {
				enPassant = true
				captured = Pawn
			}
			if SquareBb(to)&mg.md.PawnDoublePushRank(us) != BbZero && onPawnStartRank(from) {
				doublePush = true
			}
		}

		*moves = append(*moves, EncodeMove(from, to, piece, PieceNone, captured, doublePush, enPassant, castle))
	}
}

func onPawnStartRank(sq Square) bool {
	return (sq >= 8 && sq < 16) || (sq >= 48 && sq < 56)
}
