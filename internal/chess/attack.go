package chess

// Direction tables as {file delta, internal rank delta}. Internal rank 0 is
// the eighth rank, so White pawns move by dr = -1.
var (
	KnightJumps        = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	KingSteps          = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	DiagonalDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	StraightDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PawnDirection returns the internal rank delta of a pawn advance.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// IsSquareAttacked returns true if sq is attacked by any piece of colour by.
// Occupancy of sq itself does not matter.
func (b *Board) IsSquareAttacked(sq Square, by Colour) bool {
	// A pawn attacks diagonally forward, so look one rank behind sq from
	// the attacker's point of view.
	pawn := MakePiece(by, Pawn)
	back := -PawnDirection(by)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, back); ok && b.squares[from] == pawn {
			return true
		}
	}

	knight := MakePiece(by, Knight)
	for _, d := range KnightJumps {
		if from, ok := sq.Offset(d[0], d[1]); ok && b.squares[from] == knight {
			return true
		}
	}

	king := MakePiece(by, King)
	for _, d := range KingSteps {
		if from, ok := sq.Offset(d[0], d[1]); ok && b.squares[from] == king {
			return true
		}
	}

	queen := MakePiece(by, Queen)
	bishop := MakePiece(by, Bishop)
	for _, d := range DiagonalDirections {
		if p := b.firstPieceAlong(sq, d); p == bishop || p == queen {
			return true
		}
	}
	rook := MakePiece(by, Rook)
	for _, d := range StraightDirections {
		if p := b.firstPieceAlong(sq, d); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceAlong returns the first piece met walking from sq in direction d,
// or NoPiece if the ray reaches the edge.
func (b *Board) firstPieceAlong(sq Square, d [2]int) Piece {
	for {
		next, ok := sq.Offset(d[0], d[1])
		if !ok {
			return NoPiece
		}
		if p := b.squares[next]; !p.IsEmpty() {
			return p
		}
		sq = next
	}
}

// InCheck returns true if colour's king is attacked.
func (b *Board) InCheck(colour Colour) bool {
	return b.IsSquareAttacked(b.KingSquare(colour), colour.Opposite())
}
