package chess

import (
	"fmt"

	"github.com/google/uuid"
)

// Reverse holds what Unapply needs to take back one move. Records must be
// unapplied last-in-first-out on the board that produced them.
type Reverse struct {
	Move Move

	// The piece removed by the move (NoPiece if none) and where it stood.
	// For en passant the square is behind the destination.
	Captured       Piece
	CapturedSquare Square

	// State overwritten by the move.
	Castling      CastlingRights
	EnPassant     bool
	EPSquare      Square
	HalfmoveClock uint

	board uuid.UUID
	ply   uint32
}

// Apply plays m on the board and returns the record that undoes it.
// The move is assumed to be pseudo-legal for the side to move.
func (b *Board) Apply(m Move) Reverse {
	us := b.ToMove
	piece := b.squares[m.From]
	if !piece.Is(us) {
		panic(fmt.Sprintf("chess: apply %s: no %s piece on %s", m, us, m.From))
	}

	r := Reverse{
		Move:           m,
		Captured:       NoPiece,
		CapturedSquare: m.To,
		Castling:       b.Castling,
		EnPassant:      b.EnPassant,
		EPSquare:       b.EPSquare,
		HalfmoveClock:  b.HalfmoveClock,
		board:          b.id,
		ply:            b.ply,
	}

	// Vacate the source.
	b.squares[m.From] = NoPiece

	// Resolve the capture. An en passant victim sits on the destination
	// file, on the rank the capturing pawn started from.
	if m.Tag == EnPassantCapture {
		r.CapturedSquare = SquareFromFileRank(m.To.File(), m.From.Rank())
	}
	r.Captured = b.squares[r.CapturedSquare]
	b.squares[r.CapturedSquare] = NoPiece

	// Place the mover, or the piece it promotes to.
	if m.Promotion != Empty {
		b.squares[m.To] = MakePiece(us, m.Promotion)
	} else {
		b.squares[m.To] = piece
	}
	if piece.Kind() == King {
		b.kings[us] = m.To
	}

	// Castling also moves the rook.
	if m.IsCastle() {
		cs, _ := CastleSquaresFor(us, m.Tag)
		b.squares[cs.RookTo] = b.squares[cs.RookFrom]
		b.squares[cs.RookFrom] = NoPiece
	}

	// Castling rights only ever shrink.
	if piece.Kind() == King {
		b.Castling = b.Castling.Without(CastlingRightsFor(us))
	}
	b.Castling = b.Castling.Without(rightsLostAt[m.From] | rightsLostAt[m.To])

	if m.Tag == DoublePawnPush {
		b.EnPassant = true
		b.EPSquare = (m.From + m.To) / 2
	} else {
		b.EnPassant = false
		b.EPSquare = 0
	}

	if piece.Kind() == Pawn || !r.Captured.IsEmpty() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if us == Black {
		b.MoveNumber++
	}
	b.ToMove = us.Opposite()
	b.ply++

	return r
}

// Unapply takes back the move recorded in r, restoring every field Apply
// changed. r must be the most recent unreversed record from this board.
func (b *Board) Unapply(r Reverse) {
	if r.board != b.id || r.ply+1 != b.ply {
		panic(fmt.Sprintf("chess: unapply %s out of order (record ply %d, board ply %d)", r.Move, r.ply, b.ply))
	}
	b.ply--

	us := b.ToMove.Opposite()
	b.ToMove = us
	if us == Black {
		b.MoveNumber--
	}

	m := r.Move
	moved := b.squares[m.To]
	if m.Promotion != Empty {
		moved = MakePiece(us, Pawn)
	}

	if m.IsCastle() {
		cs, _ := CastleSquaresFor(us, m.Tag)
		b.squares[cs.RookFrom] = b.squares[cs.RookTo]
		b.squares[cs.RookTo] = NoPiece
	}

	b.squares[m.To] = NoPiece
	b.squares[r.CapturedSquare] = r.Captured
	b.squares[m.From] = moved
	if moved.Kind() == King {
		b.kings[us] = m.From
	}

	b.Castling = r.Castling
	b.EnPassant = r.EnPassant
	b.EPSquare = r.EPSquare
	b.HalfmoveClock = r.HalfmoveClock
}
