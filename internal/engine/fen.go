package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds a ParseError for an offending FEN field.
func fenError(text, detail string) error {
	return errors.NewParseError(errors.KindFEN, text, errors.ErrInvalidFEN, detail)
}

// NewBoardFromFEN creates a board from a FEN string. The half-move clock and
// full-move number are optional and default to 0 and 1. The resulting
// position is validated; any failure is a *errors.ParseError wrapping
// errors.ErrInvalidFEN.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError(fen, fmt.Sprintf("expected 4 to 6 fields, got %d", len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4:]); err != nil {
		return nil, err
	}
	if err := validatePosition(board, fen); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(positions, fmt.Sprintf("expected %d ranks, got %d", chess.BoardSize, len(ranks)))
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok || piece.IsEmpty() {
				return fenError(row, fmt.Sprintf("invalid piece character %q", c))
			}
			if file >= chess.BoardSize {
				return fenError(row, "rank overflows eight files")
			}
			board.Set(chess.SquareFromFileRank(uint8(file), uint8(rank)), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError(row, fmt.Sprintf("rank describes %d files, want %d", file, chess.BoardSize))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(field, "side to move must be w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingSide
		case 'Q':
			right = chess.WhiteQueenSide
		case 'k':
			right = chess.BlackKingSide
		case 'q':
			right = chess.BlackQueenSide
		default:
			return fenError(field, fmt.Sprintf("invalid castling character %q", field[i]))
		}
		if board.Castling.Has(right) {
			return fenError(field, "repeated castling character")
		}
		board.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must lie on the rank the side to move captures onto.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	board.EPSquare = 0
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(field, "en passant target is not a square")
	}
	// Internal rank 2 is the sixth rank, 5 the third.
	wantRank := uint8(2)
	if board.ToMove == chess.Black {
		wantRank = 5
	}
	if sq.Rank() != wantRank {
		return fenError(field, "en passant target on the wrong rank")
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fields []string) error {
	board.HalfmoveClock = 0
	board.MoveNumber = 1

	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError(fields[0], "half-move clock must be a non-negative integer")
		}
		board.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return fenError(fields[1], "full-move number must be a positive integer")
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// validatePosition checks the parsed position for consistency.
func validatePosition(board *chess.Board, fen string) error {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakePiece(colour, chess.King)); n != 1 {
			return fenError(fen, fmt.Sprintf("%s has %d kings, want 1", colour, n))
		}
		if n := board.Count(chess.MakePiece(colour, chess.Pawn)); n > 8 {
			return fenError(fen, fmt.Sprintf("%s has %d pawns", colour, n))
		}
		pieces := 0
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			if board.PieceAt(sq).Is(colour) {
				pieces++
			}
		}
		if pieces > 16 {
			return fenError(fen, fmt.Sprintf("%s has %d pieces", colour, pieces))
		}
	}

	for file := uint8(0); file < chess.BoardSize; file++ {
		for _, rank := range [2]uint8{0, chess.BoardSize - 1} {
			sq := chess.SquareFromFileRank(file, rank)
			if board.PieceAt(sq).Kind() == chess.Pawn {
				return fenError(fen, fmt.Sprintf("pawn on %s", sq))
			}
		}
	}

	if chess.Distance(board.KingSquare(chess.White), board.KingSquare(chess.Black)) < 2 {
		return fenError(fen, "kings are adjacent")
	}

	if err := validateCastling(board); err != nil {
		return err
	}
	if err := validateEnPassant(board); err != nil {
		return err
	}

	if board.InCheck(board.ToMove.Opposite()) {
		return fenError(fen, "side not to move is in check")
	}
	return nil
}

// validateCastling requires king and rook on their home squares for every
// castling right held.
func validateCastling(board *chess.Board) error {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, tag := range castleTags {
			if !board.Castling.Has(chess.CastleRight(colour, tag)) {
				continue
			}
			cs, _ := chess.CastleSquaresFor(colour, tag)
			if board.PieceAt(cs.KingFrom) != chess.MakePiece(colour, chess.King) ||
				board.PieceAt(cs.RookFrom) != chess.MakePiece(colour, chess.Rook) {
				return fenError(board.Castling.String(),
					fmt.Sprintf("castling right without king and rook on %s and %s", cs.KingFrom, cs.RookFrom))
			}
		}
	}
	return nil
}

// validateEnPassant requires the pawn that just made the double push to be
// in front of the target, with the target and its origin square empty.
func validateEnPassant(board *chess.Board) error {
	if !board.EnPassant {
		return nil
	}
	target := board.EPSquare
	them := board.ToMove.Opposite()
	dir := chess.PawnDirection(them)

	pawnSq, _ := target.Offset(0, dir)
	originSq, _ := target.Offset(0, -dir)
	if board.PieceAt(pawnSq) != chess.MakePiece(them, chess.Pawn) ||
		!board.PieceAt(target).IsEmpty() || !board.PieceAt(originSq).IsEmpty() {
		return fenError(target.String(), "no double-pushed pawn behind en passant target")
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := uint8(0); rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := uint8(0); file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.SquareFromFileRank(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
