package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return board.InCheck(colour)
}

// Checkers returns the squares of the pieces giving check to colour's king.
func Checkers(board *chess.Board, colour chess.Colour) []chess.Square {
	king := board.KingSquare(colour)
	them := colour.Opposite()

	var checkers []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if board.PieceAt(sq).Is(them) && attacks(board, sq, king) {
			checkers = append(checkers, sq)
		}
	}
	return checkers
}

// attacks returns true if the piece on from attacks target.
func attacks(board *chess.Board, from, target chess.Square) bool {
	piece := board.PieceAt(from)
	colour, ok := piece.Colour()
	if !ok {
		return false
	}

	df := int(target.File()) - int(from.File())
	dr := int(target.Rank()) - int(from.Rank())

	switch piece.Kind() {
	case chess.Pawn:
		return dr == chess.PawnDirection(colour) && (df == 1 || df == -1)
	case chess.Knight:
		return containsOffset(chess.KnightJumps[:], df, dr)
	case chess.King:
		return containsOffset(chess.KingSteps[:], df, dr)
	case chess.Bishop:
		return df != 0 && (df == dr || df == -dr) && pathClear(board, from, target)
	case chess.Rook:
		return (df == 0) != (dr == 0) && pathClear(board, from, target)
	case chess.Queen:
		return (df != 0 && (df == dr || df == -dr) || (df == 0) != (dr == 0)) && pathClear(board, from, target)
	}
	return false
}

// containsOffset returns true if {df, dr} is one of offsets.
func containsOffset(offsets [][2]int, df, dr int) bool {
	for _, d := range offsets {
		if d[0] == df && d[1] == dr {
			return true
		}
	}
	return false
}

// pathClear returns true if every square strictly between from and to on a
// shared line is empty.
func pathClear(board *chess.Board, from, to chess.Square) bool {
	stepF := sign(int(to.File()) - int(from.File()))
	stepR := sign(int(to.Rank()) - int(from.Rank()))

	sq, ok := from.Offset(stepF, stepR)
	for ok && sq != to {
		if !board.PieceAt(sq).IsEmpty() {
			return false
		}
		sq, ok = sq.Offset(stepF, stepR)
	}
	return ok
}
