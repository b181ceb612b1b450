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

import . "github.com/frankkopp/GambitGo/internal/types"

// magicSeed is the base seed of the magic number search. The
// generated tables are byte-identical for a fixed seed which is the
// determinism contract of the persisted data files.
const magicSeed uint32 = 1804289383

// random is a 32-bit xorshift pseudo random number generator used
// for the magic number candidates.
type random struct {
	state uint32
}

// newRandom creates a generator with the given seed. A zero seed is
// replaced as xorshift cannot leave the zero state.
func newRandom(seed uint32) random {
	if seed == 0 {
		seed = magicSeed
	}
	return random{state: seed}
}

// rand32 returns the next 32-bit pseudo random number.
func (r *random) rand32() uint32 {
	n := r.state
	n ^= n << 13
	n ^= n >> 17
	n ^= n << 5
	r.state = n
	return n
}

// rand64 assembles a 64-bit pseudo random number from four 16-bit
// slices of the 32-bit generator.
func (r *random) rand64() uint64 {
	n1 := uint64(r.rand32() & 0xFFFF)
	n2 := uint64(r.rand32() & 0xFFFF)
	n3 := uint64(r.rand32() & 0xFFFF)
	n4 := uint64(r.rand32() & 0xFFFF)
	return n1 | n2<<16 | n3<<32 | n4<<48
}

// sparseRand64 returns a 64-bit number with few set bits. Sparse
// candidates are known to be found faster as magic multipliers.
func (r *random) sparseRand64() Bitboard {
	return Bitboard(r.rand64() & r.rand64() & r.rand64())
}
