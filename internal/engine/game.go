package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Game is the contract a turn-based board game offers to generic drivers
// such as PerftGame. M is the move type and R the undo record type.
// Undo records must be passed back to Unapply in reverse order.
type Game[M, R any] interface {
	// GenerateMoves appends the legal moves to dst.
	GenerateMoves(dst []M) []M
	Apply(m M) R
	Unapply(r R)
	Result() Result
}

// Position adapts a chess board to the Game interface.
type Position struct {
	Board *chess.Board
}

var _ Game[chess.Move, chess.Reverse] = (*Position)(nil)

// NewPosition wraps board.
func NewPosition(board *chess.Board) *Position {
	return &Position{Board: board}
}

func (p *Position) GenerateMoves(dst []chess.Move) []chess.Move {
	return AppendLegalMoves(p.Board, dst)
}

func (p *Position) Apply(m chess.Move) chess.Reverse {
	return p.Board.Apply(m)
}

func (p *Position) Unapply(r chess.Reverse) {
	p.Board.Unapply(r)
}

func (p *Position) Result() Result {
	return GameResult(p.Board)
}
