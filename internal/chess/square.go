package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Square indexes the 64 cells of the board. File is index mod 8 (a..h) and
// rank is index div 8, where internal rank 0 is rank 8 on the board.
type Square uint8

const (
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2,
		8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A7, B7, C7, D7, E7, F7, G7, H7
	A6, B6, C6, D6, E6, F6, G6, H6
	A5, B5, C5, D5, E5, F5, G5, H5
	A4, B4, C4, D4, E4, F4, G4, H4
	A3, B3, C3, D3, E3, F3, G3, H3
	A2, B2, C2, D2, E2, F2, G2, H2
	A1, B1, C1, D1, E1, F1, G1, H1
)

// SquareFromFileRank builds a square from internal coordinates.
// Both must be below BoardSize; anything else is a caller bug.
func SquareFromFileRank(file, rank uint8) Square {
	if file >= BoardSize || rank >= BoardSize {
		panic(fmt.Sprintf("chess: square coordinates out of range: file=%d rank=%d", file, rank))
	}
	return Square(rank<<3 | file)
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() uint8 {
	return uint8(sq) & 7
}

// Rank returns the internal rank index, 0 for the eighth rank.
func (sq Square) Rank() uint8 {
	return uint8(sq) >> 3
}

// Offset returns the square df files and dr internal ranks away, and whether
// it is still on the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return 0, false
	}
	return Square(r*BoardSize + f), true
}

// Distance returns the number of king steps between two squares.
func Distance(a, b Square) int {
	df := abs(int(a.File()) - int(b.File()))
	dr := abs(int(a.Rank()) - int(b.Rank()))
	if df > dr {
		return df
	}
	return dr
}

// String returns algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if sq >= NumSquares {
		return "??"
	}
	return string([]byte{ColBase + sq.File(), RankBase + BoardSize - 1 - sq.Rank()})
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return 0, errors.NewParseError(errors.KindSquare, text, errors.ErrInvalidSquare, "expected two characters")
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errors.NewParseError(errors.KindSquare, text, errors.ErrInvalidSquare, "outside a1-h8")
	}
	return SquareFromFileRank(file-ColBase, BoardSize-1-(rank-RankBase)), nil
}

// DecodeSquare converts an encoded index back to a Square.
func DecodeSquare(v uint8) (Square, error) {
	if v >= NumSquares {
		return 0, errors.NewParseError(errors.KindSquare, strconv.Itoa(int(v)), errors.ErrDecode, "out of range")
	}
	return Square(v), nil
}

// Encode returns the stable one-byte encoding of the square.
func (sq Square) Encode() uint8 {
	return uint8(sq)
}

// MarshalText encodes the square in algebraic notation.
func (sq Square) MarshalText() ([]byte, error) {
	if sq >= NumSquares {
		return nil, errors.NewParseError(errors.KindSquare, strconv.Itoa(int(sq)), errors.ErrDecode, "out of range")
	}
	return []byte(sq.String()), nil
}

// UnmarshalText decodes a square from algebraic notation.
func (sq *Square) UnmarshalText(text []byte) error {
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}
