package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Outcome is the state of the game from the board's point of view.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWin
	BlackWin
	Draw
)

// String returns the PGN result token for the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Reason records why a game ended.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	FiftyMoveRule
)

// String returns a readable name for the reason.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "none"
	}
}

// Result is the outcome of a position together with its reason.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

// String returns the PGN result token.
func (r Result) String() string {
	return r.Outcome.String()
}

// IsOver returns true if the game has ended.
func (r Result) IsOver() bool {
	return r.Outcome != Ongoing
}

// WinFor returns the decisive result in favour of colour.
func WinFor(colour chess.Colour) Result {
	if colour == chess.White {
		return Result{Outcome: WhiteWin, Reason: Checkmate}
	}
	return Result{Outcome: BlackWin, Reason: Checkmate}
}

// GameResult classifies the position for the side to move.
func GameResult(board *chess.Board) Result {
	if HasLegalMoves(board) {
		return ResultFor(board, 1)
	}
	return ResultFor(board, 0)
}

// ResultFor classifies the position given the number of legal moves the
// side to move has, for callers that have already generated them.
// Checkmate and stalemate take precedence over the fifty-move rule.
func ResultFor(board *chess.Board, legalMoves int) Result {
	if legalMoves == 0 {
		if board.InCheck(board.ToMove) {
			return WinFor(board.ToMove.Opposite())
		}
		return Result{Outcome: Draw, Reason: Stalemate}
	}
	if board.HalfmoveClock >= FiftyMoveLimit {
		return Result{Outcome: Draw, Reason: FiftyMoveRule}
	}
	return Result{Outcome: Ongoing}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return board.InCheck(board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !board.InCheck(board.ToMove) && !HasLegalMoves(board)
}
