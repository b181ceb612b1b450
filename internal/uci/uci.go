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

// Package uci contains the UciHandler data structure and
// functionality to handle the UCI protocol communication between the
// chess user interface and the chess engine.
// The engine is driven synchronously: each incoming command completes
// before the next one is read.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/GambitGo/internal/config"
	myLogging "github.com/frankkopp/GambitGo/internal/logging"
	"github.com/frankkopp/GambitGo/internal/movedata"
	"github.com/frankkopp/GambitGo/internal/movegen"
	"github.com/frankkopp/GambitGo/internal/position"
	"github.com/frankkopp/GambitGo/internal/search"
	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

// engine identification sent as response to the "uci" command
const (
	EngineName   = "GambitGo"
	EngineAuthor = "Frank Kopp"
)

var log *logging.Logger

// UciHandler handles all communication with the chess ui via UCI
// and drives position setup and search.
// Create an instance with NewUciHandler().
type UciHandler struct {
	InIo       *bufio.Scanner
	OutIo      *bufio.Writer
	myMoveGen  *movegen.Movegen
	mySearch   *search.Search
	myPosition *position.Position
	md         *movedata.AllMoveData
	keys       *zobrist.Keys
	uciLog     *logging.Logger
}

// NewUciHandler creates a new UciHandler instance on the loaded
// attack tables and zobrist keys.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
//  Example:
// 		u.InIo = bufio.NewScanner(os.Stdin)
//		u.OutIo = bufio.NewWriter(os.Stdout)
func NewUciHandler(md *movedata.AllMoveData, keys *zobrist.Keys) *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMovegen(md),
		mySearch:   search.NewSearch(md),
		myPosition: position.NewStartPosition(md, keys),
		md:         md,
		keys:       keys,
		uciLog:     myLogging.GetUciLog(),
	}
}

// Loop starts the main loop to receive commands through the input
// stream (pipe or user). Returns when the quit command was received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			// quit command received
			return
		}
	}
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output.
// Mostly useful for debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// handleReceivedCommand dispatches a single command line. Returns
// true when the quit command was received. Unknown commands are
// ignored so a broken ui cannot crash the engine.
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)

	tokens := strings.Fields(cmd)
	switch tokens[0] {
	case "uci":
		u.send(fmt.Sprintf("id name %s", EngineName))
		u.send(fmt.Sprintf("id author %s", EngineAuthor))
		u.send("uciok")
	case "isready":
		u.send("readyok")
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "printgame":
		u.send(u.myPosition.String())
	case "quit":
		return true
	default:
		log.Warningf("Ignoring unknown command: %s", cmd)
	}
	return false
}

// positionCommand sets up the current position from "position
// startpos|fen <fen> [moves m1 m2 ...]". On any parsing error the
// previous position is retained and the error is reported to stderr.
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.reportError(fmt.Errorf("position command without arguments"))
		return
	}

	var p *position.Position
	var err error
	movesIndex := -1
	for i, t := range tokens {
		if t == "moves" {
			movesIndex = i
			break
		}
	}

	switch tokens[1] {
	case "startpos":
		p = position.NewStartPosition(u.md, u.keys)
	case "fen":
		end := movesIndex
		if end == -1 {
			end = len(tokens)
		}
		fen := strings.Join(tokens[2:end], " ")
		p, err = position.NewPositionFen(fen, u.md, u.keys)
		if err != nil {
			u.reportError(err)
			return
		}
	default:
		u.reportError(fmt.Errorf("position command expects startpos or fen: %q", tokens[1]))
		return
	}

	if movesIndex != -1 {
		if err := u.applyMoves(p, tokens[movesIndex+1:]); err != nil {
			u.reportError(err)
			return
		}
	}
	u.myPosition = p
}

// applyMoves plays a list of moves in UCI long algebraic notation on
// the position. Each move is matched against the generated legal
// moves of the current position.
func (u *UciHandler) applyMoves(p *position.Position, moveStrings []string) error {
	for _, ms := range moveStrings {
		m, err := u.matchMove(p, ms)
		if err != nil {
			return err
		}
		p.DoMove(m)
	}
	return nil
}

// matchMove resolves a move string against the legal moves of the
// position.
func (u *UciHandler) matchMove(p *position.Position, ms string) (Move, error) {
	if len(ms) < 4 || len(ms) > 5 {
		return MoveNone, fmt.Errorf("invalid move string: %q", ms)
	}
	from := SquareFromString(ms[0:2])
	to := SquareFromString(ms[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, fmt.Errorf("invalid move string: %q", ms)
	}
	promoted := PieceNone
	if len(ms) == 5 {
		switch ms[4] {
		case 'q':
			promoted = Queen
		case 'r':
			promoted = Rook
		case 'b':
			promoted = Bishop
		case 'n':
			promoted = Knight
		default:
			return MoveNone, fmt.Errorf("invalid promotion in move string: %q", ms)
		}
	}

	var moves []Move
	u.myMoveGen.GenerateMoves(p, &moves)
	for _, m := range moves {
		if m.From() == from && m.To() == to && m.Promoted() == promoted {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("move %q is not legal in position %q", ms, p.StringFen())
}

// goCommand starts a search: "go depth N", "go infinite" (configured
// default depth) or the engine specific "go nothink" which plays the
// first generated move.
func (u *UciHandler) goCommand(tokens []string) {
	var bestMove Move
	switch {
	case contains(tokens, "nothink"):
		bestMove = u.mySearch.FirstMove(u.myPosition)
	case contains(tokens, "depth"):
		depth := 0
		for i, t := range tokens {
			if t == "depth" && i+1 < len(tokens) {
				d, err := strconv.Atoi(tokens[i+1])
				if err != nil {
					u.reportError(fmt.Errorf("invalid depth: %q", tokens[i+1]))
					return
				}
				depth = d
				break
			}
		}
		if depth <= 0 {
			u.reportError(fmt.Errorf("go depth expects a positive depth"))
			return
		}
		bestMove = u.mySearch.SearchToDepth(u.myPosition, depth)
	case contains(tokens, "infinite"):
		bestMove = u.mySearch.SearchToDepth(u.myPosition, config.Settings.Search.DefaultDepth)
	default:
		u.reportError(fmt.Errorf("unsupported go command: %q", strings.Join(tokens, " ")))
		return
	}
	u.send(fmt.Sprintf("bestmove %s", bestMove.StringUci()))
}

func contains(tokens []string, s string) bool {
	for _, t := range tokens {
		if t == s {
			return true
		}
	}
	return false
}

// reportError reports an input error to stderr. The engine never
// terminates on malformed input.
func (u *UciHandler) reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	log.Error(err.Error())
}

// send writes a reply to the ui and flushes.
func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
