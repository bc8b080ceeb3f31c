package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself; a finished game has no children.
// A negative depth counts nothing. The board is identical before and after
// the call.
func Perft(board *chess.Board, depth int) uint64 {
	if depth < 0 {
		return 0
	}
	if depth == 0 {
		return 1
	}

	moves := GenerateLegalMoves(board)
	if ResultFor(board, len(moves)).IsOver() {
		return 0
	}
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		nodes += perftChild(board, m, depth-1)
	}
	return nodes
}

// perftChild plays m, counts below it and takes it back on every exit path.
func perftChild(board *chess.Board, m chess.Move, depth int) uint64 {
	r := board.Apply(m)
	defer board.Unapply(r)
	return Perft(board, depth)
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the perft count below each legal root move, in
// generation order. The entries sum to Perft(board, depth).
func PerftDivide(board *chess.Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := GenerateLegalMoves(board)
	if ResultFor(board, len(moves)).IsOver() {
		return nil
	}

	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		entries = append(entries, DivideEntry{Move: m, Nodes: perftChild(board, m, depth-1)})
	}
	return entries
}

// PerftGame is Perft over any Game implementation.
func PerftGame[M, R any](game Game[M, R], depth int) uint64 {
	if depth < 0 {
		return 0
	}
	if depth == 0 {
		return 1
	}
	if game.Result().IsOver() {
		return 0
	}

	moves := game.GenerateMoves(nil)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		nodes += perftGameChild(game, m, depth-1)
	}
	return nodes
}

func perftGameChild[M, R any](game Game[M, R], m M, depth int) uint64 {
	r := game.Apply(m)
	defer game.Unapply(r)
	return PerftGame(game, depth)
}
