package chess

// MoveTag marks moves that need more than a from/to relocation.
type MoveTag uint8

const (
	Normal MoveTag = iota
	DoublePawnPush
	EnPassantCapture
	CastleKingSide
	CastleQueenSide
)

// String returns the name of the tag.
func (t MoveTag) String() string {
	switch t {
	case Normal:
		return "Normal"
	case DoublePawnPush:
		return "DoublePawnPush"
	case EnPassantCapture:
		return "EnPassantCapture"
	case CastleKingSide:
		return "CastleKingSide"
	case CastleQueenSide:
		return "CastleQueenSide"
	default:
		return "Unknown"
	}
}

// Move is a proposed move. Promotion is Empty unless a pawn reaches the last rank.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
	Tag       MoveTag
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Tag {
	case CastleKingSide, CastleQueenSide:
		return true
	default:
		return false
	}
}

// String returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(B(m.Promotion).Letter())
	}
	return s
}
