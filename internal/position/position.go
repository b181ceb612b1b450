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

// Package position represents the chess board and its state.
// It uses piece bitboards per color, occupancy bitboards, a history
// stack for undoing moves and an incremental zobrist hash.
//
// A Position needs to be created with NewPosition() or
// NewPositionFen().
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/GambitGo/internal/movedata"
	. "github.com/frankkopp/GambitGo/internal/types"
	"github.com/frankkopp/GambitGo/internal/zobrist"
)

// StartFen is a string with the fen position for a standard chess game
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// historyEntry stores the minimum information to take back the most
// recent move: the move itself, all pre-move scalars including the
// hash, the square the captured piece actually occupied (differs from
// the target square on en passant) and the rook movement for castling.
type historyEntry struct {
	move           Move
	castleRights   CastleRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
	hash           uint64
	captureSquare  Square
	rookFrom       Square
	rookTo         Square
}

// Position represents a chess position with all state needed to make
// and take back moves incrementally.
type Position struct {
	pieces        [ColorLength][PieceLength]Bitboard
	occupancies   [ColorLength]Bitboard
	occupancyBoth Bitboard

	sideToMove     Color
	castleRights   CastleRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
	hash           uint64

	history []historyEntry

	md   *movedata.AllMoveData
	keys *zobrist.Keys
}

// NewPosition creates an empty position without any pieces.
// The move data tables and zobrist keys are shared, they are
// immutable after loading.
func NewPosition(md *movedata.AllMoveData, keys *zobrist.Keys) *Position {
	p := &Position{
		sideToMove:   White,
		castleRights: CastlingNone,
		enPassant:    SqNone,
		history:      make([]historyEntry, 0, 64),
		md:           md,
		keys:         keys,
	}
	p.hash = keys.CastleRights[p.castleRights]
	return p
}

// NewPositionFen creates a position from a FEN string with six
// whitespace separated fields: piece placement, active color, castle
// rights, en passant square, halfmove clock and fullmove number.
func NewPositionFen(fen string, md *movedata.AllMoveData, keys *zobrist.Keys) (*Position, error) {
	p := NewPosition(md, keys)
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// NewStartPosition creates the standard chess starting position.
func NewStartPosition(md *movedata.AllMoveData, keys *zobrist.Keys) *Position {
	p, err := NewPositionFen(StartFen, md, keys)
	if err != nil {
		panic("start position fen must parse: " + err.Error())
	}
	return p
}

// PiecesBb returns the bitboard of the pieces of the given kind and
// color.
func (p *Position) PiecesBb(c Color, piece Piece) Bitboard {
	return p.pieces[c][piece]
}

// OccupancyBb returns the occupancy bitboard of the given color.
func (p *Position) OccupancyBb(c Color) Bitboard {
	return p.occupancies[c]
}

// OccupancyAll returns the occupancy bitboard of both colors.
func (p *Position) OccupancyAll() Bitboard {
	return p.occupancyBoth
}

// SideToMove returns the color which has to make the next move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastleRights returns the current castle rights mask.
func (p *Position) CastleRights() CastleRights {
	return p.castleRights
}

// EnPassantSquare returns the current en passant target square or
// SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.enPassant
}

// HalfmoveClock returns the number of half moves since the last pawn
// move or capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the number of the full move, starting with 1
// and incremented after each black move.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// Hash returns the zobrist hash of the position.
func (p *Position) Hash() uint64 {
	return p.hash
}

// MoveData returns the shared precomputed attack tables.
func (p *Position) MoveData() *movedata.AllMoveData {
	return p.md
}

// KingSquare returns the square of the king of the given color.
// Panics if the king is missing as a position without kings violates
// the position invariant.
func (p *Position) KingSquare(c Color) Square {
	sq := p.pieces[c][King].Lsb()
	if sq == SqNone {
		panic("position has no king for color " + c.String())
	}
	return sq
}

func (p *Position) togglePieceHash(c Color, piece Piece, sq Square) {
	p.hash ^= p.keys.PieceKey(c, piece, sq)
}

// cornerCastleRight maps the four rook home corners to the castle
// right that is lost when the rook moves or is captured.
func cornerCastleRight(sq Square) CastleRights {
	switch sq {
	case SqA8:
		return CastlingBlackQueen
	case SqH8:
		return CastlingBlackKing
	case SqA1:
		return CastlingWhiteQueen
	case SqH1:
		return CastlingWhiteKing
	}
	return CastlingNone
}

// DoMove makes a legal move on the position and updates all state
// incrementally: piece and occupancy bitboards, castle rights, en
// passant square, clocks and the zobrist hash. A history entry with
// all pre-move state is pushed so the move can be taken back in O(1).
//
// The move must come from the move generator for this position -
// illegal moves corrupt the position.
func (p *Position) DoMove(m Move) {
	us := p.sideToMove
	them := us.Flip()
	from := m.From()
	to := m.To()
	moved := m.Moved()
	captured := m.Captured()

	// capture the pre-move state for UndoMove
	he := historyEntry{
		move:           m,
		castleRights:   p.castleRights,
		enPassant:      p.enPassant,
		halfmoveClock:  p.halfmoveClock,
		fullmoveNumber: p.fullmoveNumber,
		hash:           p.hash,
		captureSquare:  to,
	}

	p.hash ^= p.keys.CastleRights[p.castleRights]

	// move the piece
	p.pieces[us][moved].MoveBit(from, to)
	p.occupancies[us].MoveBit(from, to)
	p.occupancyBoth.MoveBit(from, to)
	p.togglePieceHash(us, moved, from)
	p.togglePieceHash(us, moved, to)

	// remove a captured piece - on en passant the captured pawn is not
	// on the target square but on the square of the double pushed pawn
	if captured != PieceNone {
		captureSquare := to
		if m.IsEnPassant() {
			if us == White {
				captureSquare = to + 8
			} else {
				captureSquare = to - 8
			}
		}
		p.pieces[them][captured].PopBit(captureSquare)
		p.occupancies[them].PopBit(captureSquare)
		if m.IsEnPassant() {
			p.occupancyBoth.PopBit(captureSquare)
		}
		p.togglePieceHash(them, captured, captureSquare)
		he.captureSquare = captureSquare

		// capturing a rook on its home corner removes the right
		if captured == Rook {
			p.castleRights.Remove(cornerCastleRight(captureSquare))
		}
	}

	// exchange the pawn for the promoted piece
	if promoted := m.Promoted(); promoted != PieceNone {
		p.pieces[us][Pawn].PopBit(to)
		p.togglePieceHash(us, Pawn, to)
		p.pieces[us][promoted].SetBit(to)
		p.togglePieceHash(us, promoted, to)
	}

	// clear old en passant hash and set new en passant state
	if p.enPassant != SqNone {
		p.hash ^= p.keys.EnPassantFile[p.enPassant.FileOf()]
	}
	if m.IsDoublePush() {
		passedSquare := to - 8
		if us == White {
			passedSquare = to + 8
		}
		p.enPassant = passedSquare
		p.hash ^= p.keys.EnPassantFile[passedSquare.FileOf()]
	} else {
		p.enPassant = SqNone
	}

	// moving the king or a rook from its home corner loses rights
	if moved == King {
		if us == White {
			p.castleRights.Remove(CastlingWhiteKing | CastlingWhiteQueen)
		} else {
			p.castleRights.Remove(CastlingBlackKing | CastlingBlackQueen)
		}
	} else if moved == Rook {
		p.castleRights.Remove(cornerCastleRight(from))
	}

	// move the rook on castling
	if m.IsCastle() {
		rookFrom, rookTo := movedata.RookCastleMovement(to)
		p.pieces[us][Rook].MoveBit(rookFrom, rookTo)
		p.occupancies[us].MoveBit(rookFrom, rookTo)
		p.occupancyBoth.MoveBit(rookFrom, rookTo)
		p.togglePieceHash(us, Rook, rookFrom)
		p.togglePieceHash(us, Rook, rookTo)
		he.rookFrom = rookFrom
		he.rookTo = rookTo
	}

	// clocks
	if moved == Pawn || captured != PieceNone {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}

	p.sideToMove = them
	p.hash ^= p.keys.Side
	p.hash ^= p.keys.CastleRights[p.castleRights]

	p.history = append(p.history, he)
}

// UndoMove takes back the most recent move and restores every part of
// the pre-move state including the hash.
// Panics when there is no move to take back.
func (p *Position) UndoMove() {
	if len(p.history) == 0 {
		panic("UndoMove called on position without history")
	}
	he := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.sideToMove = p.sideToMove.Flip()
	us := p.sideToMove
	them := us.Flip()

	m := he.move
	from := m.From()
	to := m.To()

	// turn the promoted piece back into a pawn before moving it back
	if promoted := m.Promoted(); promoted != PieceNone {
		p.pieces[us][promoted].PopBit(to)
		p.pieces[us][Pawn].SetBit(to)
	}

	p.pieces[us][m.Moved()].MoveBit(to, from)
	p.occupancies[us].MoveBit(to, from)
	p.occupancyBoth.MoveBit(to, from)

	if captured := m.Captured(); captured != PieceNone {
		p.pieces[them][captured].SetBit(he.captureSquare)
		p.occupancies[them].SetBit(he.captureSquare)
		p.occupancyBoth.SetBit(he.captureSquare)
	}

	if m.IsCastle() {
		p.pieces[us][Rook].MoveBit(he.rookTo, he.rookFrom)
		p.occupancies[us].MoveBit(he.rookTo, he.rookFrom)
		p.occupancyBoth.MoveBit(he.rookTo, he.rookFrom)
	}

	p.castleRights = he.castleRights
	p.enPassant = he.enPassant
	p.halfmoveClock = he.halfmoveClock
	p.fullmoveNumber = he.fullmoveNumber
	p.hash = he.hash
}

// setupFromFen populates the position from the six FEN fields and
// computes the zobrist hash from scratch.
func (p *Position) setupFromFen(fen string) error {
	p.hash = 0
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return fmt.Errorf("fen must have 6 fields, has %d: %q", len(parts), fen)
	}

	// field 1: piece placement, top rank first, files left to right
	index := Square(0)
	for i := 0; i < len(parts[0]); i++ {
		c := parts[0][i]
		switch {
		case c == '/':
			continue
		case c >= '1' && c <= '8':
			index += Square(c - '0')
		default:
			piece := PieceFromChar(c)
			if piece == PieceNone {
				return fmt.Errorf("invalid character in fen piece placement: %q", string(c))
			}
			if index >= SqLength {
				return fmt.Errorf("fen piece placement exceeds board: %q", parts[0])
			}
			color := White
			if c >= 'a' && c <= 'z' {
				color = Black
			}
			p.pieces[color][piece].SetBit(index)
			p.occupancies[color].SetBit(index)
			p.occupancyBoth.SetBit(index)
			p.togglePieceHash(color, piece, index)
			index++
		}
	}
	if p.pieces[White][King].PopCount() != 1 || p.pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("fen must contain exactly one king per side: %q", parts[0])
	}

	// field 2: active color
	switch parts[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.hash ^= p.keys.Side
	default:
		return fmt.Errorf("invalid fen active color: %q", parts[1])
	}

	// field 3: castle rights
	p.castleRights = CastlingNone
	if parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			switch parts[2][i] {
			case 'K':
				p.castleRights.Add(CastlingWhiteKing)
			case 'Q':
				p.castleRights.Add(CastlingWhiteQueen)
			case 'k':
				p.castleRights.Add(CastlingBlackKing)
			case 'q':
				p.castleRights.Add(CastlingBlackQueen)
			default:
				return fmt.Errorf("invalid fen castle rights: %q", parts[2])
			}
		}
	}
	p.hash ^= p.keys.CastleRights[p.castleRights]

	// field 4: en passant square
	p.enPassant = SqNone
	if parts[3] != "-" {
		sq := SquareFromString(parts[3])
		if sq == SqNone {
			return fmt.Errorf("invalid fen en passant square: %q", parts[3])
		}
		p.enPassant = sq
		p.hash ^= p.keys.EnPassantFile[sq.FileOf()]
	}

	// fields 5 and 6: clocks
	halfmoves, err := strconv.Atoi(parts[4])
	if err != nil || halfmoves < 0 {
		return fmt.Errorf("invalid fen halfmove clock: %q", parts[4])
	}
	p.halfmoveClock = halfmoves
	fullmoves, err := strconv.Atoi(parts[5])
	if err != nil || fullmoves < 0 {
		return fmt.Errorf("invalid fen fullmove number: %q", parts[5])
	}
	p.fullmoveNumber = fullmoves

	return nil
}

// StringFen returns the position as a FEN string.
func (p *Position) StringFen() string {
	var sb strings.Builder

	empty := 0
	flushEmpty := func() {
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
			empty = 0
		}
	}
	for sq := Square(0); sq < SqLength; sq++ {
		piece, color, found := p.pieceOn(sq)
		if found {
			flushEmpty()
			sb.WriteByte(piece.FenChar(color))
		} else {
			empty++
		}
		if sq.FileOf() == 7 {
			flushEmpty()
			if sq != SqH1 {
				sb.WriteString("/")
			}
		}
	}

	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castleRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassant.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// pieceOn returns the piece and color on the given square.
func (p *Position) pieceOn(sq Square) (Piece, Color, bool) {
	for c := White; c < ColorLength; c++ {
		if !p.occupancies[c].Has(sq) {
			continue
		}
		for piece := King; piece < PieceLength; piece++ {
			if p.pieces[c][piece].Has(sq) {
				return piece, c, true
			}
		}
	}
	return PieceNone, White, false
}

// String returns a board representation of the position the way a
// player sees it plus the state fields.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for sq := Square(0); sq < SqLength; sq++ {
		piece, color, found := p.pieceOn(sq)
		if found {
			sb.WriteString(fmt.Sprintf("| %c ", piece.FenChar(color)))
		} else {
			sb.WriteString("|   ")
		}
		if sq.FileOf() == 7 {
			sb.WriteString(fmt.Sprintf("| %d\n+---+---+---+---+---+---+---+---+\n", 8-sq.RankOf()))
		}
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	sb.WriteString(fmt.Sprintf("side: %s castle rights: %s en passant: %s halfmoves: %d fullmoves: %d\nfen: %s\nhash: %d\n",
		p.sideToMove, p.castleRights, p.enPassant, p.halfmoveClock, p.fullmoveNumber, p.StringFen(), p.hash))
	return sb.String()
}
