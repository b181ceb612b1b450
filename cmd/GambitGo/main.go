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

// GambitGo is a UCI chess engine. It loads the precomputed attack
// tables and zobrist keys (created by cmd/precalc) and then serves
// the UCI protocol on stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/GambitGo/internal/config"
	"github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/movegen"
	"github.com/frankkopp/GambitGo/internal/position"
	"github.com/frankkopp/GambitGo/internal/uci"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

var out = message.NewPrinter(language.German)

const version = "1.0.0"

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	moveDataFile := flag.String("movedata", "", "path to the precomputed attack table file")
	hashesFile := flag.String("hashes", "", "path to the precomputed zobrist key file")
	perft := flag.Int("perft", 0, "starts perft on the start position with the given depth\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile
	config.Setup()

	// cmd line options overwrite config file and defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *moveDataFile != "" {
		config.Settings.Data.MoveDataFile = *moveDataFile
	}
	if *hashesFile != "" {
		config.Settings.Data.HashesFile = *hashesFile
	}

	// resetting log level of standard log - required as most packages
	// include the standard logger as a global var and therefore even
	// before main() is called
	log := logging.GetLog()

	// load the precomputed data - missing or corrupt files are fatal
	md, err := movedata.LoadFile(config.Settings.Data.MoveDataFile)
	if err != nil {
		log.Criticalf("Could not load attack tables: %s", err)
		os.Exit(1)
	}
	keys, err := zobrist.LoadFile(config.Settings.Data.HashesFile)
	if err != nil {
		log.Criticalf("Could not load zobrist keys: %s", err)
		os.Exit(1)
	}

	// perft mode
	if *perft != 0 {
		perftTest := movegen.NewPerft(md, keys)
		for i := 1; i <= *perft; i++ {
			if err := perftTest.StartPerft(*fen, i, false); err != nil {
				log.Criticalf("Perft failed: %s", err)
				os.Exit(1)
			}
		}
		return
	}

	handler := uci.NewUciHandler(md, keys)
	handler.Loop()
}

func printVersionInfo() {
	out.Printf("GambitGo %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	fmt.Println()
}
