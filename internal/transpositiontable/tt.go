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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// The table is direct-mapped and keyed by the zobrist hash of a
// position. It is not thread safe - the engine owns and drives it
// from a single goroutine.
package transpositiontable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	. "github.com/frankkopp/GambitGo/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MB is the number of bytes in a megabyte
	MB = 1_024 * 1_024
	// MaxSizeInMB is the maximal memory usage of the tt
	MaxSizeInMB = 65_536
)

// TtTable is the transposition table holding data and state.
// Create with NewTtTable()
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts   uint64
	numberOfProbes uint64
	numberOfHits   uint64
	numberOfMisses uint64
}

// NewTtTable creates a new TtTable with the given number of MB as a
// maximum of memory usage. The number of entries is the number of
// slots of entry size fitting into this budget; a slot is addressed
// by hash modulo the number of entries.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize resizes the tt table. All entries will be cleared.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = tt.sizeInByte / TtEntrySize
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.Stats = TtStats{}
	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%d Byte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, TtEntrySize, sizeInMByte))
}

// Probe returns a pointer to the entry for the hash when the entry
// holds the same hash and was stored with at least the requested
// depth. Otherwise nil.
func (tt *TtTable) Probe(hash uint64, depth int8) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(hash)]
	if e.Hash == hash && e.Depth >= depth {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// GetEntry returns the entry for the hash independent of its depth,
// e.g. to reuse the stored best move for move ordering. Returns nil
// when the slot holds a different position.
func (tt *TtTable) GetEntry(hash uint64) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(hash)]
	if e.Hash == hash {
		return e
	}
	return nil
}

// Put stores an entry for the hash. The replacement policy is always
// replace.
func (tt *TtTable) Put(hash uint64, move Move, depth int8, score Score, bound Bound) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfPuts++
	tt.data[tt.hash(hash)] = TtEntry{
		Hash:  hash,
		Move:  move,
		Score: score,
		Depth: depth,
		Bound: bound,
	}
}

// Clear clears all entries of the tt.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.Stats = TtStats{}
}

// Len returns the number of non empty entries in the tt.
func (tt *TtTable) Len() uint64 {
	var n uint64
	for i := range tt.data {
		if tt.data[i].Hash != 0 {
			n++
		}
	}
	return n
}

// String returns a string representation of this TtTable instance.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes puts %d probes %d hits %d misses %d",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, TtEntrySize,
		tt.Stats.numberOfPuts, tt.Stats.numberOfProbes, tt.Stats.numberOfHits, tt.Stats.numberOfMisses)
}

// hash generates the internal index for the data array.
func (tt *TtTable) hash(hash uint64) uint64 {
	return hash % tt.maxNumberOfEntries
}
