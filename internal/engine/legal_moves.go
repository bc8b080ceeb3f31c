package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GenerateLegalMoves returns every legal move for the side to move, in the
// same order as GeneratePseudoLegalMoves.
func GenerateLegalMoves(board *chess.Board) []chess.Move {
	return AppendLegalMoves(board, make([]chess.Move, 0, 48))
}

// AppendLegalMoves appends the legal moves for the side to move to moves.
func AppendLegalMoves(board *chess.Board, moves []chess.Move) []chess.Move {
	start := len(moves)
	moves = GeneratePseudoLegalMoves(board, moves)

	// Filter in place; the write index never passes the read index.
	legal := moves[:start]
	for _, m := range moves[start:] {
		if leavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	var buf [64]chess.Move
	for _, m := range GeneratePseudoLegalMoves(board, buf[:0]) {
		if leavesKingSafe(board, m) {
			return true
		}
	}
	return false
}

// leavesKingSafe plays m and reports whether the mover's king is not
// attacked afterwards. The board is restored before returning.
func leavesKingSafe(board *chess.Board, m chess.Move) bool {
	us := board.ToMove
	r := board.Apply(m)
	safe := !board.InCheck(us)
	board.Unapply(r)
	return safe
}

// IsLegal returns true if m is one of the legal moves in the position.
func IsLegal(board *chess.Board, m chess.Move) bool {
	for _, legal := range GenerateLegalMoves(board) {
		if legal == m {
			return true
		}
	}
	return false
}

// ApplyLegal plays m only if it is legal, returning ErrIllegalMove otherwise.
// The board is left untouched on error.
func ApplyLegal(board *chess.Board, m chess.Move) (chess.Reverse, error) {
	if !IsLegal(board, m) {
		return chess.Reverse{}, errors.Wrapf(errors.ErrIllegalMove, "%s with %s to move", m, board.ToMove)
	}
	return board.Apply(m), nil
}

// FindMove matches long algebraic text such as "e2e4" or "e7e8q" against
// the legal moves in the position.
func FindMove(board *chess.Board, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, errors.NewParseError(errors.KindMove, text, errors.ErrIllegalMove,
			"expected from and to squares with optional promotion letter")
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, errors.NewParseError(errors.KindMove, text, err, "bad source square")
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, errors.NewParseError(errors.KindMove, text, err, "bad destination square")
	}
	promotion := chess.Empty
	if len(text) == 5 {
		kind, ok := chess.PieceKindFromLetter(text[4] - 'a' + 'A')
		if !ok || kind == chess.Empty || kind == chess.Pawn || kind == chess.King {
			return chess.Move{}, errors.NewParseError(errors.KindMove, text, errors.ErrIllegalMove,
				fmt.Sprintf("bad promotion letter %q", text[4]))
		}
		promotion = kind
	}

	for _, m := range GenerateLegalMoves(board) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, errors.NewParseError(errors.KindMove, text, errors.ErrIllegalMove, "no such legal move")
}
