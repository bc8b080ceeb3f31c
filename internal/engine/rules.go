package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side. It is a standalone query and does not
// feed GameResult.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.PieceAt(sq)
		colour, ok := piece.Colour()
		if !ok {
			continue
		}
		kind := piece.Kind()

		// Kings don't count for material
		if kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
			return false
		}

		if colour == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (file 0, internal rank 0) is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 0
}
