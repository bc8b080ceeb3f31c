package chess

import (
	"fmt"

	"github.com/google/uuid"
)

// Board represents a chess position with all state needed to continue play.
// A Board is not safe for concurrent use; give each goroutine its own Copy.
type Board struct {
	// One cell per square, indexed by Square.
	squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling permissions.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// a capturing pawn would land on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint

	// Keep track of where the two kings are for check detection.
	kings [2]Square

	// Identity and ply count, stamped into every Reverse record.
	id  uuid.UUID
	ply uint32
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		id:         uuid.New(),
	}
}

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [NumSquares]Piece{}
	for file := uint8(0); file < BoardSize; file++ {
		b.squares[SquareFromFileRank(file, 0)] = B(backRank[file])
		b.squares[SquareFromFileRank(file, 1)] = B(Pawn)
		b.squares[SquareFromFileRank(file, 6)] = W(Pawn)
		b.squares[SquareFromFileRank(file, 7)] = W(backRank[file])
	}
	b.kings = [2]Square{E1, E8}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.EPSquare = 0
	b.HalfmoveClock = 0
	b.MoveNumber = 1
	b.renew()
}

// PieceAt returns the piece on sq.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// Set places a piece on sq. It is meant for building positions; moves
// are played with Apply.
func (b *Board) Set(sq Square, piece Piece) {
	b.squares[sq] = piece
	if piece.Kind() == King {
		colour, _ := piece.Colour()
		b.kings[colour] = sq
	}
}

// KingSquare returns the square of colour's king. A board without that king
// violates the position invariant and panics.
func (b *Board) KingSquare(colour Colour) Square {
	king := MakePiece(colour, King)
	if sq := b.kings[colour]; b.squares[sq] == king {
		return sq
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.squares[sq] == king {
			b.kings[colour] = sq
			return sq
		}
	}
	panic(fmt.Sprintf("chess: no %s king on the board", colour))
}

// Count returns how many times piece occurs on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, p := range b.squares {
		if p == piece {
			n++
		}
	}
	return n
}

// ID returns the identity stamped into Reverse records produced by this board.
func (b *Board) ID() uuid.UUID {
	return b.id
}

// Ply returns the number of moves applied and not yet reversed.
func (b *Board) Ply() uint32 {
	return b.ply
}

// renew gives the board a fresh identity, invalidating outstanding Reverse records.
func (b *Board) renew() {
	b.id = uuid.New()
	b.ply = 0
}

// Copy creates a deep copy of the board with its own identity, so
// Reverse records from one board cannot be replayed on the other.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.id = uuid.New()
	return newBoard
}

// State captures all position state, for comparison and save/restore.
type State struct {
	Squares       [NumSquares]Piece
	ToMove        Colour
	Castling      CastlingRights
	EnPassant     bool
	EPSquare      Square
	HalfmoveClock uint
	MoveNumber    uint
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() State {
	return State{
		Squares:       b.squares,
		ToMove:        b.ToMove,
		Castling:      b.Castling,
		EnPassant:     b.EnPassant,
		EPSquare:      b.EPSquare,
		HalfmoveClock: b.HalfmoveClock,
		MoveNumber:    b.MoveNumber,
	}
}

// RestoreState restores the board to a previously saved state. Reverse
// records issued before the call are no longer accepted.
func (b *Board) RestoreState(s State) {
	b.squares = s.Squares
	b.ToMove = s.ToMove
	b.Castling = s.Castling
	b.EnPassant = s.EnPassant
	b.EPSquare = s.EPSquare
	b.HalfmoveClock = s.HalfmoveClock
	b.MoveNumber = s.MoveNumber
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.squares[sq].Kind() == King {
			colour, _ := b.squares[sq].Colour()
			b.kings[colour] = sq
		}
	}
	b.renew()
}

// String renders the board as eight FEN-letter rows, rank 8 first, with
// '.' for empty squares.
func (b *Board) String() string {
	out := make([]byte, 0, NumSquares+BoardSize)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := b.squares[sq]; p.IsEmpty() {
			out = append(out, '.')
		} else {
			out = append(out, p.Letter())
		}
		if sq.File() == BoardSize-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
