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

package movedata

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	. "github.com/frankkopp/GambitGo/internal/types"
)

// sliderKind distinguishes the two sliding piece table types.
type sliderKind int

const (
	bishopKind sliderKind = iota
	rookKind
)

// magicAttempts is the budget of candidates tried per square before
// the magic search is given up. Giving up is fatal for the
// precalculator.
const magicAttempts = 100_000_000

// notFiles are the wrap-around guards for the leaping attack shifts.
type notFiles struct {
	a  Bitboard
	h  Bitboard
	ab Bitboard
	gh Bitboard
}

func newNotFiles() notFiles {
	var aFile, bFile, gFile, hFile Bitboard
	for i := Square(0); i < 8; i++ {
		rank := i * 8
		aFile.SetBit(rank)
		bFile.SetBit(rank + 1)
		gFile.SetBit(rank + 6)
		hFile.SetBit(rank + 7)
	}
	return notFiles{
		a:  ^aFile,
		h:  ^hFile,
		ab: ^(aFile | bFile),
		gh: ^(gFile | hFile),
	}
}

// Generate computes all attack tables from scratch: leaping attacks,
// pawn push geometry, magic bitboard tables for both sliders, rank
// masks and direction rays. The magic search for the individual
// squares runs in parallel, each square on its own deterministic
// random stream, so the result is bit-identical for a fixed seed.
func Generate() (*AllMoveData, error) {
	nf := newNotFiles()

	// leaping pieces and pawn push geometry
	leaping := LeapingAttackData{
		PawnAttacks: [][]Bitboard{make([]Bitboard, SqLength), make([]Bitboard, SqLength)},
		Knight:      make([]Bitboard, SqLength),
		King:        make([]Bitboard, SqLength),
		PawnMoves:   [][]Bitboard{make([]Bitboard, SqLength), make([]Bitboard, SqLength)},
	}
	var whitePawnStart, blackPawnStart Bitboard
	for i := Square(0); i < 8; i++ {
		blackPawnStart.SetBit(8 + i)
		whitePawnStart.SetBit(48 + i)
	}
	for sq := Square(0); sq < SqLength; sq++ {
		leaping.PawnAttacks[White][sq] = maskPawnAttacks(White, sq, nf)
		leaping.PawnAttacks[Black][sq] = maskPawnAttacks(Black, sq, nf)
		leaping.PawnMoves[White][sq] = maskPawnMoves(White, sq, whitePawnStart, blackPawnStart)
		leaping.PawnMoves[Black][sq] = maskPawnMoves(Black, sq, whitePawnStart, blackPawnStart)
		leaping.Knight[sq] = maskKnightAttacks(sq, nf)
		leaping.King[sq] = maskKingAttacks(sq, nf)
	}

	// magic tables for both sliders
	bishopData, err := generateSlidingData(bishopKind)
	if err != nil {
		return nil, err
	}
	rookData, err := generateSlidingData(rookKind)
	if err != nil {
		return nil, err
	}

	// rank masks
	promotionRanks := make([]Bitboard, ColorLength)
	singlePushRanks := make([]Bitboard, ColorLength)
	doublePushRanks := make([]Bitboard, ColorLength)
	for i := Square(0); i < 8; i++ {
		promotionRanks[White].SetBit(i)
		singlePushRanks[White].SetBit(i + 40)
		doublePushRanks[White].SetBit(i + 32)
		promotionRanks[Black].SetBit(i + 56)
		singlePushRanks[Black].SetBit(i + 16)
		doublePushRanks[Black].SetBit(i + 24)
	}

	// direction rays
	directions := make([][]Bitboard, 8)
	for i := 0; i < 8; i++ {
		directions[i] = make([]Bitboard, SqLength)
		fileDir, rankDir := indexToDirection(i)
		for sq := Square(0); sq < SqLength; sq++ {
			directions[i][sq] = squaresInDirection(sq, fileDir, rankDir)
		}
	}

	return &AllMoveData{
		BishopAttackData:    *bishopData,
		RookAttackData:      *rookData,
		LeapingAttackData:   leaping,
		PawnSinglePushRanks: singlePushRanks,
		PawnDoublePushRanks: doublePushRanks,
		PromotionRanks:      promotionRanks,
		Directions:          directions,
	}, nil
}

// generateSlidingData finds a magic number for every square and fills
// the attack table of one slider type. The per square searches are
// independent and run concurrently.
func generateSlidingData(kind sliderKind) (*SlidingAttackData, error) {
	data := SlidingAttackData{
		Attacks:      make([][]Bitboard, SqLength),
		MagicNumbers: make([]Bitboard, SqLength),
		Masks:        make([]Bitboard, SqLength),
		RelevantBits: make([]uint, SqLength),
	}

	var g errgroup.Group
	for s := Square(0); s < SqLength; s++ {
		sq := s
		g.Go(func() error {
			mask := maskRelevantOccupancy(sq, kind)
			bits := uint(mask.PopCount())
			rng := newRandom(seedFor(kind, sq))
			magic, err := findMagicNumber(sq, mask, bits, kind, &rng)
			if err != nil {
				return err
			}
			data.Masks[sq] = mask
			data.RelevantBits[sq] = bits
			data.MagicNumbers[sq] = magic
			data.Attacks[sq] = fillAttackTable(sq, mask, bits, magic, kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// seedFor derives a deterministic per square seed from the base seed
// so that the parallel searches do not share generator state.
func seedFor(kind sliderKind, sq Square) uint32 {
	return magicSeed ^ (uint32(sq)+1+64*uint32(kind))*2654435761
}

// findMagicNumber searches a magic multiplier which maps every
// occupancy subset of the relevance mask to a unique attack table
// slot - or to a shared slot when the attack sets are identical.
func findMagicNumber(sq Square, mask Bitboard, bits uint, kind sliderKind, rng *random) (Bitboard, error) {
	subsets := 1 << bits
	occupancies := make([]Bitboard, subsets)
	attacks := make([]Bitboard, subsets)
	for i := 0; i < subsets; i++ {
		occupancies[i] = subsetOccupancy(uint64(i), bits, mask)
		attacks[i] = slidingAttacks(sq, kind, occupancies[i])
	}

	used := make([]Bitboard, subsets)
	for attempt := 0; attempt < magicAttempts; attempt++ {
		magic := rng.sparseRand64()
		if ((mask * magic) & 0xFF00000000000000).PopCount() < 6 {
			continue
		}
		for i := range used {
			used[i] = BbZero
		}
		fail := false
		for i := 0; i < subsets; i++ {
			idx := (occupancies[i] * magic) >> (64 - bits)
			if used[idx] == BbZero {
				used[idx] = attacks[i]
			} else if used[idx] != attacks[i] {
				fail = true
				break
			}
		}
		if !fail {
			return magic, nil
		}
	}
	return BbZero, fmt.Errorf("no magic number found for square %s after %d attempts", sq, magicAttempts)
}

// fillAttackTable computes the attack table for a square from a
// verified magic number.
func fillAttackTable(sq Square, mask Bitboard, bits uint, magic Bitboard, kind sliderKind) []Bitboard {
	table := make([]Bitboard, 1<<bits)
	subsets := 1 << bits
	for i := 0; i < subsets; i++ {
		occupancy := subsetOccupancy(uint64(i), bits, mask)
		idx := (occupancy * magic) >> (64 - bits)
		table[idx] = slidingAttacks(sq, kind, occupancy)
	}
	return table
}

// subsetOccupancy expands the index-th subset of the set bits of the
// mask into an occupancy bitboard.
func subsetOccupancy(index uint64, bits uint, mask Bitboard) Bitboard {
	var occupancy Bitboard
	for count := uint(0); count < bits; count++ {
		sq := mask.PopLsb()
		if index&(1<<count) != 0 {
			occupancy.SetBit(sq)
		}
	}
	return occupancy
}

// maskRelevantOccupancy returns the relevance mask for a slider on
// the given square: the union of its rays excluding the origin and
// the board edge squares along each ray's axis - blockers there never
// change the attack set.
func maskRelevantOccupancy(sq Square, kind sliderKind) Bitboard {
	file := int(sq.FileOf())
	rank := int(sq.RankOf())
	fileDir, rankDir := sliderDirections(kind)
	var mask Bitboard
	mask |= maskOccupancyInDirection(file, rank, fileDir, rankDir)
	mask |= maskOccupancyInDirection(file, rank, -fileDir, -rankDir)
	mask |= maskOccupancyInDirection(file, rank, -rankDir, fileDir)
	mask |= maskOccupancyInDirection(file, rank, rankDir, -fileDir)
	return mask
}

func sliderDirections(kind sliderKind) (fileDir int, rankDir int) {
	if kind == bishopKind {
		return 1, 1
	}
	return 1, 0
}

// maskOccupancyInDirection walks one ray and collects the squares
// which are relevant for the occupancy hashing. For an axis the ray
// moves along only the inner squares 1..6 matter, perpendicular
// coordinates are unrestricted.
func maskOccupancyInDirection(startFile int, startRank int, fileDir int, rankDir int) Bitboard {
	var mask Bitboard
	file := startFile + fileDir
	rank := startRank + rankDir
	for (fileDir == 0 || (file >= 1 && file <= 6)) && (rankDir == 0 || (rank >= 1 && rank <= 6)) {
		mask.SetBit(NewSquare(uint8(file), uint8(rank)))
		file += fileDir
		rank += rankDir
	}
	return mask
}

// slidingAttacks computes the ground truth attack set of a slider by
// ray-walking until a blocker or the board edge. The blocker square
// itself is included in the attack set.
func slidingAttacks(sq Square, kind sliderKind, blockers Bitboard) Bitboard {
	file := int(sq.FileOf())
	rank := int(sq.RankOf())
	fileDir, rankDir := sliderDirections(kind)
	var attacks Bitboard
	attacks |= attacksInDirection(file, rank, fileDir, rankDir, blockers)
	attacks |= attacksInDirection(file, rank, -fileDir, -rankDir, blockers)
	attacks |= attacksInDirection(file, rank, -rankDir, fileDir, blockers)
	attacks |= attacksInDirection(file, rank, rankDir, -fileDir, blockers)
	return attacks
}

func attacksInDirection(startFile int, startRank int, fileDir int, rankDir int, blockers Bitboard) Bitboard {
	var attacks Bitboard
	file := startFile + fileDir
	rank := startRank + rankDir
	for file >= 0 && file <= 7 && rank >= 0 && rank <= 7 {
		sq := NewSquare(uint8(file), uint8(rank))
		attacks.SetBit(sq)
		if blockers.Has(sq) {
			break
		}
		file += fileDir
		rank += rankDir
	}
	return attacks
}

// squaresInDirection returns the full ray from a square in a
// direction up to the board edge, not including the origin.
func squaresInDirection(sq Square, fileDir int, rankDir int) Bitboard {
	var ray Bitboard
	file := int(sq.FileOf()) + fileDir
	rank := int(sq.RankOf()) + rankDir
	for file >= 0 && file <= 7 && rank >= 0 && rank <= 7 {
		ray.SetBit(NewSquare(uint8(file), uint8(rank)))
		file += fileDir
		rank += rankDir
	}
	return ray
}

// maskPawnAttacks computes the capture attack squares of a pawn.
func maskPawnAttacks(c Color, sq Square, nf notFiles) Bitboard {
	pos := SquareBb(sq)
	var attacks Bitboard
	if c == White {
		if pos>>7&nf.a != 0 {
			attacks |= pos >> 7
		}
		if pos>>9&nf.h != 0 {
			attacks |= pos >> 9
		}
	} else {
		if pos<<7&nf.h != 0 {
			attacks |= pos << 7
		}
		if pos<<9&nf.a != 0 {
			attacks |= pos << 9
		}
	}
	return attacks
}

// maskPawnMoves computes the push geometry of a pawn: one square
// forward and additionally two squares forward from the starting
// rank.
func maskPawnMoves(c Color, sq Square, whiteStart Bitboard, blackStart Bitboard) Bitboard {
	var moves Bitboard
	if c == White {
		if sq < 8 {
			return moves
		}
		moves.SetBit(sq - 8)
		if whiteStart.Has(sq) {
			moves.SetBit(sq - 16)
		}
	} else {
		if sq >= 56 {
			return moves
		}
		moves.SetBit(sq + 8)
		if blackStart.Has(sq) {
			moves.SetBit(sq + 16)
		}
	}
	return moves
}

// maskKnightAttacks computes the attack squares of a knight.
func maskKnightAttacks(sq Square, nf notFiles) Bitboard {
	pos := SquareBb(sq)
	var attacks Bitboard
	if pos>>17&nf.h != 0 {
		attacks |= pos >> 17
	}
	if pos>>15&nf.a != 0 {
		attacks |= pos >> 15
	}
	if pos>>10&nf.gh != 0 {
		attacks |= pos >> 10
	}
	if pos>>6&nf.ab != 0 {
		attacks |= pos >> 6
	}
	if pos<<17&nf.a != 0 {
		attacks |= pos << 17
	}
	if pos<<15&nf.h != 0 {
		attacks |= pos << 15
	}
	if pos<<10&nf.ab != 0 {
		attacks |= pos << 10
	}
	if pos<<6&nf.gh != 0 {
		attacks |= pos << 6
	}
	return attacks
}

// maskKingAttacks computes the attack squares of a king.
func maskKingAttacks(sq Square, nf notFiles) Bitboard {
	pos := SquareBb(sq)
	var attacks Bitboard
	if pos>>8 != 0 {
		attacks |= pos >> 8
	}
	if pos>>9&nf.h != 0 {
		attacks |= pos >> 9
	}
	if pos>>7&nf.a != 0 {
		attacks |= pos >> 7
	}
	if pos>>1&nf.h != 0 {
		attacks |= pos >> 1
	}
	if pos<<8 != 0 {
		attacks |= pos << 8
	}
	if pos<<9&nf.a != 0 {
		attacks |= pos << 9
	}
	if pos<<7&nf.h != 0 {
		attacks |= pos << 7
	}
	if pos<<1&nf.a != 0 {
		attacks |= pos << 1
	}
	return attacks
}
