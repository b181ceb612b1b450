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

// Package movedata holds the precomputed attack tables of the engine:
// magic bitboard tables for the sliding pieces, leaping attack tables
// for pawn, knight and king, pawn push geometry, direction rays and
// the castle geometry. The tables are generated once by cmd/precalc
// and persisted; the engine only loads them at startup.
package movedata

import (
	. "github.com/frankkopp/GambitGo/internal/types"
)

// SlidingAttackData holds the magic bitboard tables for one slider
// type (bishop or rook). Attack lookup for a square is
// attacks[square][((occupancy & mask) * magic) >> (64 - relevant bits)].
type SlidingAttackData struct {
	Attacks      [][]Bitboard `json:"attacks"`
	MagicNumbers []Bitboard   `json:"magic_numbers"`
	Masks        []Bitboard   `json:"masks"`
	RelevantBits []uint       `json:"relevant_bits"`
}

// Attack returns the attack bitboard of a slider on the given square
// with the given board occupancy.
func (s *SlidingAttackData) Attack(sq Square, occupancy Bitboard) Bitboard {
	o := occupancy & s.Masks[sq]
	o *= s.MagicNumbers[sq]
	o >>= 64 - s.RelevantBits[sq]
	return s.Attacks[sq][o]
}

// LeapingAttackData holds the per square attack bitboards of the
// non-sliding pieces and the pawn push geometry.
type LeapingAttackData struct {
	PawnAttacks [][]Bitboard `json:"pawn_attacks"`
	Knight      []Bitboard   `json:"knight"`
	King        []Bitboard   `json:"king"`
	PawnMoves   [][]Bitboard `json:"pawn_moves"`
}

// AllMoveData bundles all precomputed tables the engine needs.
// It is immutable after loading and may be shared freely.
type AllMoveData struct {
	BishopAttackData    SlidingAttackData `json:"bishop_attack_data"`
	RookAttackData      SlidingAttackData `json:"rook_attack_data"`
	LeapingAttackData   LeapingAttackData `json:"leaping_attack_data"`
	PawnSinglePushRanks []Bitboard        `json:"pawn_single_push_ranks"`
	PawnDoublePushRanks []Bitboard        `json:"pawn_double_push_ranks"`
	PromotionRanks      []Bitboard        `json:"promotion_ranks"`
	Directions          [][]Bitboard      `json:"directions"`
}

// directionToIndex maps a (file delta, rank delta) direction to the
// index of its ray table. A positive rank delta means increasing
// square index (towards white's side of the board).
func directionToIndex(fileDir int, rankDir int) int {
	switch {
	case fileDir == 1 && rankDir == 0:
		return 0
	case fileDir == 1 && rankDir == 1:
		return 1
	case fileDir == 0 && rankDir == 1:
		return 2
	case fileDir == -1 && rankDir == 1:
		return 3
	case fileDir == -1 && rankDir == 0:
		return 4
	case fileDir == -1 && rankDir == -1:
		return 5
	case fileDir == 0 && rankDir == -1:
		return 6
	case fileDir == 1 && rankDir == -1:
		return 7
	}
	panic("invalid direction")
}

// indexToDirection is the inverse of directionToIndex.
func indexToDirection(index int) (fileDir int, rankDir int) {
	switch index {
	case 0:
		return 1, 0
	case 1:
		return 1, 1
	case 2:
		return 0, 1
	case 3:
		return -1, 1
	case 4:
		return -1, 0
	case 5:
		return -1, -1
	case 6:
		return 0, -1
	case 7:
		return 1, -1
	}
	panic("direction index out of range")
}

// Attacks returns the attack bitboard of the given piece of the given
// color on the given square with the given board occupancy.
func (md *AllMoveData) Attacks(sq Square, piece Piece, c Color, occupancy Bitboard) Bitboard {
	switch piece {
	case Pawn:
		return md.LeapingAttackData.PawnAttacks[c][sq]
	case Knight:
		return md.LeapingAttackData.Knight[sq]
	case Bishop:
		return md.BishopAttackData.Attack(sq, occupancy)
	case Rook:
		return md.RookAttackData.Attack(sq, occupancy)
	case Queen:
		return md.BishopAttackData.Attack(sq, occupancy) | md.RookAttackData.Attack(sq, occupancy)
	case King:
		return md.LeapingAttackData.King[sq]
	}
	panic("invalid piece")
}

// PawnMoves returns the push geometry (one resp. two squares forward)
// of a pawn of the given color on the given square. Occupancy is not
// considered here - the move generator filters blocked pushes.
func (md *AllMoveData) PawnMoves(sq Square, c Color) Bitboard {
	return md.LeapingAttackData.PawnMoves[c][sq]
}

// PromotionRank returns the promotion rank mask of the given color.
func (md *AllMoveData) PromotionRank(c Color) Bitboard {
	return md.PromotionRanks[c]
}

// PawnSinglePushRank returns the rank mask of the single push target
// squares from the pawn starting rank for the given color.
func (md *AllMoveData) PawnSinglePushRank(c Color) Bitboard {
	return md.PawnSinglePushRanks[c]
}

// PawnDoublePushRank returns the rank mask of the double push target
// squares for the given color.
func (md *AllMoveData) PawnDoublePushRank(c Color) Bitboard {
	return md.PawnDoublePushRanks[c]
}

// Direction returns the ray of squares from the given square in the
// given direction up to the board edge, not including the square
// itself.
func (md *AllMoveData) Direction(sq Square, fileDir int, rankDir int) Bitboard {
	return md.Directions[directionToIndex(fileDir, rankDir)][sq]
}

// SquaresBetween returns the squares strictly between the two given
// squares when they share a rank, file or diagonal. Otherwise the
// result is empty.
func (md *AllMoveData) SquaresBetween(s1 Square, s2 Square) Bitboard {
	if s1 == s2 {
		return BbZero
	}
	fileDir, rankDir := 0, 0
	if s1.FileOf() > s2.FileOf() {
		fileDir = -1
	} else if s1.FileOf() < s2.FileOf() {
		fileDir = 1
	}
	if s1.RankOf() > s2.RankOf() {
		rankDir = -1
	} else if s1.RankOf() < s2.RankOf() {
		rankDir = 1
	}
	return md.Direction(s1, fileDir, rankDir) & md.Direction(s2, -fileDir, -rankDir)
}

// CastleInfo returns the king target square and the squares the king
// traverses for the given castle right. The traversed squares must
// not be attacked for the castle move to be legal.
func CastleInfo(right CastleRights) (kingTarget Square, traversed Bitboard) {
	switch right {
	case CastlingWhiteKing:
		return SqG1, SquareBb(SqF1) | SquareBb(SqG1)
	case CastlingWhiteQueen:
		return SqC1, SquareBb(SqD1) | SquareBb(SqC1)
	case CastlingBlackKing:
		return SqG8, SquareBb(SqF8) | SquareBb(SqG8)
	case CastlingBlackQueen:
		return SqC8, SquareBb(SqD8) | SquareBb(SqC8)
	}
	panic("invalid castle right")
}

// CastleColor returns the color the given castle right belongs to.
func CastleColor(right CastleRights) Color {
	if right == CastlingWhiteKing || right == CastlingWhiteQueen {
		return White
	}
	return Black
}

// RookCastleMovement returns the source and target square of the rook
// for a castling move given the king's target square.
// Panics when the king target is not a castle target square as this
// indicates a corrupted move.
func RookCastleMovement(kingTarget Square) (rookFrom Square, rookTo Square) {
	switch kingTarget {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	}
	panic("king tried to castle to an invalid square")
}
