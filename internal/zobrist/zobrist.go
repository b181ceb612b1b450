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

// Package zobrist holds the random key set for the zobrist hashing of
// chess positions. The keys are generated once by cmd/precalc from a
// seeded pseudo random number generator and persisted; the engine
// loads them at startup. The key set is immutable afterwards and may
// be shared freely.
package zobrist

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/util"
)

// DefaultSeed is the seed used for the persisted key set. The
// generated file is byte-stable for a fixed seed.
const DefaultSeed uint64 = 1804289383

// Keys is the full zobrist key set: one key per piece and square
// (indexed color*6+piece), one side-to-move key, one key per castle
// rights mask and one key per en passant file.
type Keys struct {
	Pieces        [12][64]uint64 `json:"pieces"`
	Side          uint64         `json:"side"`
	CastleRights  [16]uint64     `json:"castle_rights"`
	EnPassantFile [8]uint64      `json:"en_passant_file"`
}

// PieceKey returns the key of a piece of a color on a square.
func (k *Keys) PieceKey(c Color, p Piece, sq Square) uint64 {
	return k.Pieces[int(c)*6+int(p)][sq]
}

// GenerateKeys creates the key set from a seeded pseudo random
// number generator.
func GenerateKeys(seed uint64) *Keys {
	r := newRandom(seed)
	k := &Keys{}
	for piece := range k.Pieces {
		for sq := range k.Pieces[piece] {
			k.Pieces[piece][sq] = r.rand64()
		}
	}
	k.Side = r.rand64()
	for i := range k.EnPassantFile {
		k.EnPassantFile[i] = r.rand64()
	}
	for i := range k.CastleRights {
		k.CastleRights[i] = r.rand64()
	}
	return k
}

// SaveFile persists the key set to the given path.
func (k *Keys) SaveFile(path string) error {
	data, err := json.MarshalIndent(k, "", " ")
	if err != nil {
		return fmt.Errorf("encoding zobrist keys: %w", err)
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing zobrist key file: %w", err)
	}
	return nil
}

// LoadFile reads a persisted key set from the given path. The path
// is resolved relative to the working directory and the executable.
func LoadFile(path string) (*Keys, error) {
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading zobrist key file: %w", err)
	}
	k := &Keys{}
	if err := json.Unmarshal(data, k); err != nil {
		return nil, fmt.Errorf("decoding zobrist key file %s: %w", resolved, err)
	}
	return k, nil
}
