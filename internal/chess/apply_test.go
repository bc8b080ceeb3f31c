package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newKingsBoard returns a board with kings on e1/e8 plus the given pieces.
func newKingsBoard(toMove Colour, pieces map[Square]Piece) *Board {
	b := NewBoard()
	b.Set(E1, W(King))
	b.Set(E8, B(King))
	for sq, p := range pieces {
		b.Set(sq, p)
	}
	b.ToMove = toMove
	return b
}

func TestApplyUnapply(t *testing.T) {
	tests := []struct {
		name  string
		board func() *Board
		move  Move
		check func(t *testing.T, b *Board, r Reverse)
	}{
		{
			name: "double pawn push sets en passant target",
			board: func() *Board {
				b := NewBoard()
				b.SetupInitialPosition()
				return b
			},
			move: Move{From: E2, To: E4, Tag: DoublePawnPush},
			check: func(t *testing.T, b *Board, r Reverse) {
				if !b.EnPassant || b.EPSquare != E3 {
					t.Errorf("EnPassant, EPSquare = %v, %v; want true, e3", b.EnPassant, b.EPSquare)
				}
				if b.HalfmoveClock != 0 || b.MoveNumber != 1 || b.ToMove != Black {
					t.Errorf("clock, number, side = %d, %d, %v", b.HalfmoveClock, b.MoveNumber, b.ToMove)
				}
			},
		},
		{
			name: "quiet knight move increments clock",
			board: func() *Board {
				b := NewBoard()
				b.SetupInitialPosition()
				b.HalfmoveClock = 7
				return b
			},
			move: Move{From: G1, To: F3},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.HalfmoveClock != 8 {
					t.Errorf("HalfmoveClock = %d; want 8", b.HalfmoveClock)
				}
				if b.PieceAt(F3) != W(Knight) || b.PieceAt(G1) != NoPiece {
					t.Errorf("knight not relocated:\n%s", b)
				}
			},
		},
		{
			name: "capture resets clock and records victim",
			board: func() *Board {
				b := newKingsBoard(White, map[Square]Piece{D4: W(Knight), E6: B(Bishop)})
				b.HalfmoveClock = 12
				return b
			},
			move: Move{From: D4, To: E6},
			check: func(t *testing.T, b *Board, r Reverse) {
				if r.Captured != B(Bishop) || r.CapturedSquare != E6 {
					t.Errorf("Captured = %v on %v; want black bishop on e6", r.Captured, r.CapturedSquare)
				}
				if b.HalfmoveClock != 0 {
					t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
				}
			},
		},
		{
			name: "en passant removes the pawn behind the destination",
			board: func() *Board {
				b := newKingsBoard(White, map[Square]Piece{E5: W(Pawn), D5: B(Pawn)})
				b.EnPassant = true
				b.EPSquare = D6
				return b
			},
			move: Move{From: E5, To: D6, Tag: EnPassantCapture},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.PieceAt(D5) != NoPiece {
					t.Errorf("PieceAt(d5) = %v; want Empty", b.PieceAt(D5))
				}
				if b.PieceAt(D6) != W(Pawn) {
					t.Errorf("PieceAt(d6) = %v; want white pawn", b.PieceAt(D6))
				}
				if r.Captured != B(Pawn) || r.CapturedSquare != D5 {
					t.Errorf("Captured = %v on %v; want black pawn on d5", r.Captured, r.CapturedSquare)
				}
				if b.EnPassant {
					t.Error("EnPassant still set after capture")
				}
			},
		},
		{
			name: "black en passant",
			board: func() *Board {
				b := newKingsBoard(Black, map[Square]Piece{C4: B(Pawn), B4: W(Pawn)})
				b.EnPassant = true
				b.EPSquare = B3
				return b
			},
			move: Move{From: C4, To: B3, Tag: EnPassantCapture},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.PieceAt(B4) != NoPiece || b.PieceAt(B3) != B(Pawn) {
					t.Errorf("en passant not resolved:\n%s", b)
				}
				if b.MoveNumber != 2 {
					t.Errorf("MoveNumber = %d; want 2", b.MoveNumber)
				}
			},
		},
		{
			name: "promotion places the chosen piece",
			board: func() *Board {
				return newKingsBoard(White, map[Square]Piece{B7: W(Pawn), A8: B(Rook)})
			},
			move: Move{From: B7, To: A8, Promotion: Knight},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.PieceAt(A8) != W(Knight) {
					t.Errorf("PieceAt(a8) = %v; want white knight", b.PieceAt(A8))
				}
				if r.Captured != B(Rook) {
					t.Errorf("Captured = %v; want black rook", r.Captured)
				}
			},
		},
		{
			name: "kingside castle moves the rook",
			board: func() *Board {
				b := newKingsBoard(White, map[Square]Piece{H1: W(Rook), A1: W(Rook)})
				b.Castling = AllCastling
				return b
			},
			move: Move{From: E1, To: G1, Tag: CastleKingSide},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.PieceAt(G1) != W(King) || b.PieceAt(F1) != W(Rook) || b.PieceAt(H1) != NoPiece {
					t.Errorf("castle not applied:\n%s", b)
				}
				if b.Castling != BlackKingSide|BlackQueenSide {
					t.Errorf("Castling = %v; want kq", b.Castling)
				}
				if b.KingSquare(White) != G1 {
					t.Errorf("KingSquare(White) = %v; want g1", b.KingSquare(White))
				}
			},
		},
		{
			name: "queenside castle for black",
			board: func() *Board {
				b := newKingsBoard(Black, map[Square]Piece{A8: B(Rook)})
				b.Castling = BlackQueenSide | WhiteKingSide
				return b
			},
			move: Move{From: E8, To: C8, Tag: CastleQueenSide},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.PieceAt(C8) != B(King) || b.PieceAt(D8) != B(Rook) || b.PieceAt(A8) != NoPiece {
					t.Errorf("castle not applied:\n%s", b)
				}
				if b.Castling != WhiteKingSide {
					t.Errorf("Castling = %v; want K", b.Castling)
				}
			},
		},
		{
			name: "rook leaving home clears one right",
			board: func() *Board {
				b := newKingsBoard(White, map[Square]Piece{H1: W(Rook), A1: W(Rook)})
				b.Castling = AllCastling
				return b
			},
			move: Move{From: A1, To: A5},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.Castling != WhiteKingSide|BlackKingSide|BlackQueenSide {
					t.Errorf("Castling = %v; want Kkq", b.Castling)
				}
			},
		},
		{
			name: "capture on a rook home square clears the victim's right",
			board: func() *Board {
				b := newKingsBoard(Black, map[Square]Piece{H1: W(Rook), B7: B(Bishop)})
				b.Castling = WhiteKingSide | BlackKingSide
				return b
			},
			move: Move{From: B7, To: H1},
			check: func(t *testing.T, b *Board, r Reverse) {
				if b.Castling != BlackKingSide {
					t.Errorf("Castling = %v; want k", b.Castling)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board()
			before := b.SaveState()

			r := b.Apply(tt.move)
			tt.check(t, b, r)

			b.Unapply(r)
			if diff := cmp.Diff(before, b.SaveState()); diff != "" {
				t.Errorf("Unapply() did not restore the position (-want +got):\n%s", diff)
			}
			if b.Ply() != 0 {
				t.Errorf("Ply() = %d after unapply; want 0", b.Ply())
			}
		})
	}
}

func TestUnapplyMisuse(t *testing.T) {
	expectPanic := func(t *testing.T, name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}

	t.Run("out of order", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		first := b.Apply(Move{From: E2, To: E4, Tag: DoublePawnPush})
		b.Apply(Move{From: E7, To: E5, Tag: DoublePawnPush})
		expectPanic(t, "Unapply(first)", func() { b.Unapply(first) })
	})

	t.Run("foreign board", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		other := b.Copy()
		r := b.Apply(Move{From: G1, To: F3})
		other.Apply(Move{From: G1, To: F3})
		expectPanic(t, "other.Unapply(r)", func() { other.Unapply(r) })
	})

	t.Run("applying from an empty square", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		expectPanic(t, "Apply(e4e5)", func() { b.Apply(Move{From: E4, To: E5}) })
	})
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Square]Piece
		sq     Square
		by     Colour
		want   bool
	}{
		{"white pawn attacks diagonally forward", map[Square]Piece{D4: W(Pawn)}, E5, White, true},
		{"white pawn does not attack backwards", map[Square]Piece{D4: W(Pawn)}, E3, White, false},
		{"white pawn does not attack straight", map[Square]Piece{D4: W(Pawn)}, D5, White, false},
		{"black pawn attacks downwards", map[Square]Piece{D5: B(Pawn)}, C4, Black, true},
		{"knight", map[Square]Piece{B1: W(Knight)}, C3, White, true},
		{"knight does not wrap", map[Square]Piece{H3: W(Knight)}, A4, White, false},
		{"rook along file", map[Square]Piece{A1: W(Rook)}, A7, White, true},
		{"rook blocked", map[Square]Piece{A1: W(Rook), A4: B(Knight)}, A7, White, false},
		{"bishop diagonal", map[Square]Piece{C1: B(Bishop)}, H6, Black, true},
		{"queen as rook", map[Square]Piece{D8: B(Queen)}, D2, Black, true},
		{"queen as bishop", map[Square]Piece{A4: W(Queen)}, D7, White, true},
		{"king adjacent", map[Square]Piece{}, D2, White, true},
		{"wrong colour", map[Square]Piece{A1: W(Rook)}, A7, Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newKingsBoard(White, tt.pieces)
			if got := b.IsSquareAttacked(tt.sq, tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%v, %v) = %v; want %v\n%s", tt.sq, tt.by, got, tt.want, b)
			}
		})
	}
}

func TestInCheck(t *testing.T) {
	b := newKingsBoard(White, map[Square]Piece{E4: B(Rook)})
	if !b.InCheck(White) {
		t.Error("InCheck(White) = false with a rook on the e-file")
	}
	if b.InCheck(Black) {
		t.Error("InCheck(Black) = true")
	}
}
