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

// precalc is the one-shot generator for the persisted engine data:
// the attack tables including the magic number search for the
// sliding pieces and the zobrist key set. For a fixed seed both
// output files are byte-identical across runs - they only need to be
// generated once.
package main

import (
	"flag"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/GambitGo/internal/config"
	"github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

var out = message.NewPrinter(language.German)

func main() {
	moveDataFile := flag.String("movedata", "./move_data.json", "output path for the attack table file")
	hashesFile := flag.String("hashes", "./hashes.json", "output path for the zobrist key file")
	flag.Parse()

	config.Setup()
	log := logging.GetLog()

	log.Info("Calculating attack tables and magic numbers")
	start := time.Now()
	md, err := movedata.Generate()
	if err != nil {
		log.Criticalf("Attack table generation failed: %s", err)
		os.Exit(1)
	}
	log.Info(out.Sprintf("Attack tables ready after %d ms", time.Since(start).Milliseconds()))

	keys := zobrist.GenerateKeys(zobrist.DefaultSeed)

	log.Info("Saving results")
	if err := md.SaveFile(*moveDataFile); err != nil {
		log.Criticalf("Could not save attack tables: %s", err)
		os.Exit(1)
	}
	if err := keys.SaveFile(*hashesFile); err != nil {
		log.Criticalf("Could not save zobrist keys: %s", err)
		os.Exit(1)
	}
	log.Info(out.Sprintf("Results saved to %s and %s", *moveDataFile, *hashesFile))
}
