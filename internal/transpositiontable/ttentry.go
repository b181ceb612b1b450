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

package transpositiontable

import (
	"unsafe"

	. "github.com/frankkopp/GambitGo/internal/types"
)

// Bound classifies a stored score relative to the alpha/beta window
// it was searched with.
type Bound uint8

// Bound constants
const (
	BoundNone Bound = iota
	// BoundExact - the score is the exact value of the node
	BoundExact
	// BoundLower - the score is a lower bound (fail high / beta cutoff)
	BoundLower
	// BoundUpper - the score is an upper bound (fail low)
	BoundUpper
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return "none"
	}
}

// TtEntry is the data structure for each slot in the transposition
// table. A slot is empty when the hash is zero. Mate scores are
// stored with their distance relative to the storing node - the
// search adjusts them on store and probe.
type TtEntry struct {
	Hash  uint64
	Move  Move
	Score Score
	Depth int8
	Bound Bound
}

// TtEntrySize is the size in bytes of a single table slot.
var TtEntrySize = uint64(unsafe.Sizeof(TtEntry{}))
