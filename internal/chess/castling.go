package chess

// CastlingRights is a set of the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns c with the rights in r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field, "-" when empty.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b []byte
	if c.Has(WhiteKingSide) {
		b = append(b, 'K')
	}
	if c.Has(WhiteQueenSide) {
		b = append(b, 'Q')
	}
	if c.Has(BlackKingSide) {
		b = append(b, 'k')
	}
	if c.Has(BlackQueenSide) {
		b = append(b, 'q')
	}
	return string(b)
}

// CastlingRightsFor returns both rights belonging to colour.
func CastlingRightsFor(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

// CastleRight returns the right a castling tag needs for colour.
func CastleRight(colour Colour, tag MoveTag) CastlingRights {
	switch {
	case colour == White && tag == CastleKingSide:
		return WhiteKingSide
	case colour == White && tag == CastleQueenSide:
		return WhiteQueenSide
	case colour == Black && tag == CastleKingSide:
		return BlackKingSide
	case colour == Black && tag == CastleQueenSide:
		return BlackQueenSide
	default:
		return NoCastling
	}
}

// CastleSquares describes the squares involved in one castling move.
type CastleSquares struct {
	KingFrom, KingTo Square
	RookFrom, RookTo Square
	// Between must be empty; Transit is the square the king passes over.
	Between []Square
	Transit Square
}

var castleSquares = map[CastlingRights]CastleSquares{
	WhiteKingSide:  {KingFrom: E1, KingTo: G1, RookFrom: H1, RookTo: F1, Between: []Square{F1, G1}, Transit: F1},
	WhiteQueenSide: {KingFrom: E1, KingTo: C1, RookFrom: A1, RookTo: D1, Between: []Square{D1, C1, B1}, Transit: D1},
	BlackKingSide:  {KingFrom: E8, KingTo: G8, RookFrom: H8, RookTo: F8, Between: []Square{F8, G8}, Transit: F8},
	BlackQueenSide: {KingFrom: E8, KingTo: C8, RookFrom: A8, RookTo: D8, Between: []Square{D8, C8, B8}, Transit: D8},
}

// CastleSquaresFor returns the geometry of a castling move.
func CastleSquaresFor(colour Colour, tag MoveTag) (CastleSquares, bool) {
	cs, ok := castleSquares[CastleRight(colour, tag)]
	return cs, ok
}

// rightsLostAt maps a rook home square to the right that vanishes when
// anything leaves or lands on it.
var rightsLostAt = [NumSquares]CastlingRights{
	H1: WhiteKingSide,
	A1: WhiteQueenSide,
	H8: BlackKingSide,
	A8: BlackQueenSide,
}
