// Package engine provides chess move generation, legality checking and
// position-level rules on top of the chess board.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to
// move to moves and returns the extended slice. Pseudo-legal moves follow
// piece geometry but may leave the mover's own king attacked.
// Squares are visited a8..h1, so the order is deterministic.
func GeneratePseudoLegalMoves(board *chess.Board, moves []chess.Move) []chess.Move {
	us := board.ToMove
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.PieceAt(sq)
		if !piece.Is(us) {
			continue
		}

		switch piece.Kind() {
		case chess.Pawn:
			moves = genPawnMoves(board, sq, us, moves)
		case chess.Knight:
			moves = genStepMoves(board, sq, us, chess.KnightJumps[:], moves)
		case chess.Bishop:
			moves = genSlidingMoves(board, sq, us, chess.DiagonalDirections[:], moves)
		case chess.Rook:
			moves = genSlidingMoves(board, sq, us, chess.StraightDirections[:], moves)
		case chess.Queen:
			moves = genSlidingMoves(board, sq, us, chess.DiagonalDirections[:], moves)
			moves = genSlidingMoves(board, sq, us, chess.StraightDirections[:], moves)
		case chess.King:
			moves = genStepMoves(board, sq, us, chess.KingSteps[:], moves)
			moves = genCastlingMoves(board, sq, us, moves)
		}
	}
	return moves
}

// pawnStartRank returns the internal rank pawns of colour start on.
func pawnStartRank(colour chess.Colour) uint8 {
	if colour == chess.White {
		return 6
	}
	return 1
}

// promotionRank returns the internal rank on which pawns of colour promote.
func promotionRank(colour chess.Colour) uint8 {
	if colour == chess.White {
		return 0
	}
	return 7
}

// genPawnMoves generates pushes, captures, en passant and promotions.
func genPawnMoves(board *chess.Board, from chess.Square, us chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.PawnDirection(us)

	// Forward move
	if to, ok := from.Offset(0, dir); ok && board.PieceAt(to).IsEmpty() {
		moves = addPawnMove(moves, from, to, us)

		// Double push from starting rank
		if from.Rank() == pawnStartRank(us) {
			if to2, ok := from.Offset(0, 2*dir); ok && board.PieceAt(to2).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to2, Tag: chess.DoublePawnPush})
			}
		}
	}

	// Captures
	them := us.Opposite()
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		switch {
		case target.Is(them):
			moves = addPawnMove(moves, from, to, us)
		case target.IsEmpty() && board.EnPassant && to == board.EPSquare:
			victim := chess.SquareFromFileRank(to.File(), from.Rank())
			if board.PieceAt(victim) == chess.MakePiece(them, chess.Pawn) {
				moves = append(moves, chess.Move{From: from, To: to, Tag: chess.EnPassantCapture})
			}
		}
	}
	return moves
}

// addPawnMove adds a pawn move, expanding it into one move per promotion
// kind when the pawn reaches the last rank.
func addPawnMove(moves []chess.Move, from, to chess.Square, us chess.Colour) []chess.Move {
	if to.Rank() != promotionRank(us) {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// genStepMoves generates single-step moves (knight and king).
func genStepMoves(board *chess.Board, from chess.Square, us chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, d := range offsets {
		to, ok := from.Offset(d[0], d[1])
		if !ok || board.PieceAt(to).Is(us) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to})
	}
	return moves
}

// genSlidingMoves casts a ray in each direction until the edge, a friendly
// piece (excluded) or an enemy piece (included, then stop).
func genSlidingMoves(board *chess.Board, from chess.Square, us chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, d := range dirs {
		to, ok := from.Offset(d[0], d[1])
		for ok {
			target := board.PieceAt(to)
			if target.Is(us) {
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			if !target.IsEmpty() {
				break // Capture
			}
			to, ok = to.Offset(d[0], d[1])
		}
	}
	return moves
}

var castleTags = [2]chess.MoveTag{chess.CastleKingSide, chess.CastleQueenSide}

// genCastlingMoves adds castling when the right is held, the squares between
// king and rook are empty and the king neither starts on, passes over nor
// lands on an attacked square.
func genCastlingMoves(board *chess.Board, from chess.Square, us chess.Colour, moves []chess.Move) []chess.Move {
	them := us.Opposite()
	for _, tag := range castleTags {
		if !board.Castling.Has(chess.CastleRight(us, tag)) {
			continue
		}
		cs, _ := chess.CastleSquaresFor(us, tag)
		if from != cs.KingFrom || board.PieceAt(cs.RookFrom) != chess.MakePiece(us, chess.Rook) {
			continue
		}
		if !squaresEmpty(board, cs.Between) {
			continue
		}
		if board.IsSquareAttacked(from, them) ||
			board.IsSquareAttacked(cs.Transit, them) ||
			board.IsSquareAttacked(cs.KingTo, them) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: cs.KingTo, Tag: tag})
	}
	return moves
}

// squaresEmpty returns true if none of squares is occupied.
func squaresEmpty(board *chess.Board, squares []chess.Square) bool {
	for _, sq := range squares {
		if !board.PieceAt(sq).IsEmpty() {
			return false
		}
	}
	return true
}
