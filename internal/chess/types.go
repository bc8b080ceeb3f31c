// Package chess provides core chess types and operations.
package chess

import (
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// PieceKind identifies a type of piece, independent of colour.
type PieceKind uint8

const (
	Empty PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

var (
	kindNames   = [NumPieceKinds]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	kindLetters = [NumPieceKinds]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	kindValues  = [NumPieceKinds]int{0, 1, 3, 3, 5, 9, 100}
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k < NumPieceKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Value returns the material weight of the kind.
func (k PieceKind) Value() int {
	if k < NumPieceKinds {
		return kindValues[k]
	}
	return 0
}

// Letter returns the single uppercase letter of the kind (space for Empty).
func (k PieceKind) Letter() byte {
	if k < NumPieceKinds {
		return kindLetters[k]
	}
	return '?'
}

// PieceKindFromLetter is the inverse of Letter. Only uppercase letters and
// space are accepted.
func PieceKindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case ' ':
		return Empty, true
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return Empty, false
	}
}

// DecodePieceKind converts an encoded discriminant back to a PieceKind.
func DecodePieceKind(v uint8) (PieceKind, error) {
	switch PieceKind(v) {
	case Empty, Pawn, Knight, Bishop, Rook, Queen, King:
		return PieceKind(v), nil
	default:
		return Empty, errors.NewParseError(errors.KindPieceKind, strconv.Itoa(int(v)), errors.ErrDecode, "out of range")
	}
}

// Encode returns the stable one-byte encoding of the kind.
func (k PieceKind) Encode() uint8 {
	return uint8(k)
}

// MarshalText encodes the kind as its letter.
func (k PieceKind) MarshalText() ([]byte, error) {
	if k >= NumPieceKinds {
		return nil, errors.NewParseError(errors.KindPieceKind, strconv.Itoa(int(k)), errors.ErrDecode, "out of range")
	}
	return []byte{k.Letter()}, nil
}

// UnmarshalText decodes a kind from its letter.
func (k *PieceKind) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return errors.NewParseError(errors.KindPieceKind, string(text), errors.ErrDecode, "expected one letter")
	}
	kind, ok := PieceKindFromLetter(text[0])
	if !ok {
		return errors.NewParseError(errors.KindPieceKind, string(text), errors.ErrDecode, "unknown letter")
	}
	*k = kind
	return nil
}

// Piece is a coloured piece, or NoPiece for an empty square.
// The kind lives in the upper bits and the colour in bit 0, so NoPiece
// (zero) never carries a colour.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)<<PieceShift | Piece(White)
	BlackPawn   Piece = Piece(Pawn)<<PieceShift | Piece(Black)
	WhiteKnight Piece = Piece(Knight)<<PieceShift | Piece(White)
	BlackKnight Piece = Piece(Knight)<<PieceShift | Piece(Black)
	WhiteBishop Piece = Piece(Bishop)<<PieceShift | Piece(White)
	BlackBishop Piece = Piece(Bishop)<<PieceShift | Piece(Black)
	WhiteRook   Piece = Piece(Rook)<<PieceShift | Piece(White)
	BlackRook   Piece = Piece(Rook)<<PieceShift | Piece(Black)
	WhiteQueen  Piece = Piece(Queen)<<PieceShift | Piece(White)
	BlackQueen  Piece = Piece(Queen)<<PieceShift | Piece(Black)
	WhiteKing   Piece = Piece(King)<<PieceShift | Piece(White)
	BlackKing   Piece = Piece(King)<<PieceShift | Piece(Black)
)

// MakePiece creates a coloured piece value. An Empty kind always yields NoPiece.
func MakePiece(colour Colour, kind PieceKind) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece(kind)<<PieceShift | Piece(colour)
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> PieceShift)
}

// Colour extracts the colour. The second result is false for NoPiece.
func (p Piece) Colour() (Colour, bool) {
	if p == NoPiece {
		return White, false
	}
	return Colour(p & 1), true
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != NoPiece && Colour(p&1) == colour
}

// Value returns the signed material value: positive for White, negative for Black.
func (p Piece) Value() int {
	if p == NoPiece {
		return 0
	}
	v := p.Kind().Value()
	if p.Is(Black) {
		return -v
	}
	return v
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// space for NoPiece.
func (p Piece) Letter() byte {
	letter := p.Kind().Letter()
	if p.Is(Black) {
		letter |= 0x20
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	colour, ok := p.Colour()
	if !ok {
		return "Empty"
	}
	return colour.String() + " " + p.Kind().String()
}

// PieceFromLetter is the inverse of Letter; case selects the colour.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c &^= 0x20
	}
	kind, ok := PieceKindFromLetter(c)
	if !ok {
		return NoPiece, false
	}
	return MakePiece(colour, kind), true
}

// DecodePiece converts an encoded value back to a Piece. The only valid
// values are NoPiece and WhitePawn..BlackKing.
func DecodePiece(v uint8) (Piece, error) {
	p := Piece(v)
	switch p {
	case NoPiece,
		WhitePawn, BlackPawn,
		WhiteKnight, BlackKnight,
		WhiteBishop, BlackBishop,
		WhiteRook, BlackRook,
		WhiteQueen, BlackQueen,
		WhiteKing, BlackKing:
		return p, nil
	default:
		return NoPiece, errors.NewParseError(errors.KindPiece, strconv.Itoa(int(v)), errors.ErrDecode, "out of range")
	}
}

// Encode returns the stable one-byte encoding of the piece.
func (p Piece) Encode() uint8 {
	return uint8(p)
}

// MarshalText encodes the piece as its FEN letter.
func (p Piece) MarshalText() ([]byte, error) {
	if _, err := DecodePiece(uint8(p)); err != nil {
		return nil, err
	}
	return []byte{p.Letter()}, nil
}

// UnmarshalText decodes a piece from its FEN letter.
func (p *Piece) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return errors.NewParseError(errors.KindPiece, string(text), errors.ErrDecode, "expected one letter")
	}
	piece, ok := PieceFromLetter(text[0])
	if !ok {
		return errors.NewParseError(errors.KindPiece, string(text), errors.ErrDecode, "unknown letter")
	}
	*p = piece
	return nil
}
