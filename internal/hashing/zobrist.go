package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys for pieces, castling, en passant file and side to move.
var (
	zobristPiece     [chess.BlackKing + 1][chess.NumSquares]uint64
	zobristCastle    [chess.AllCastling + 1]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristBlack     uint64
)

func init() {
	// Fixed seed so keys are reproducible between runs.
	r := rand.New(rand.NewSource(0x5eed))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = r.Uint64()
		}
	}
	for c := range zobristCastle {
		zobristCastle[c] = r.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = r.Uint64()
	}
	zobristBlack = r.Uint64()
}

// Key returns the Zobrist key of the position. Clocks are not part of the
// key. The en passant file only counts when a pawn of the side to move
// stands next to the pawn that just made the double push, so positions
// that differ only in an unusable target share a key.
func Key(board *chess.Board) uint64 {
	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p := board.PieceAt(sq); !p.IsEmpty() {
			key ^= zobristPiece[p][sq]
		}
	}
	if board.ToMove == chess.Black {
		key ^= zobristBlack
	}
	key ^= zobristCastle[board.Castling]
	if enPassantCapturable(board) {
		key ^= zobristEnPassant[board.EPSquare.File()]
	}
	return key
}

// enPassantCapturable returns true if a pawn of the side to move is
// adjacent to the pawn that just made the double push.
func enPassantCapturable(board *chess.Board) bool {
	if !board.EnPassant {
		return false
	}
	us := board.ToMove
	// The pushed pawn is one step past the target from the mover's side.
	pushed, ok := board.EPSquare.Offset(0, -chess.PawnDirection(us))
	if !ok {
		return false
	}
	pawn := chess.MakePiece(us, chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		if sq, ok := pushed.Offset(df, 0); ok && board.PieceAt(sq) == pawn {
			return true
		}
	}
	return false
}
