package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSquareLayout(t *testing.T) {
	tests := []struct {
		sq   Square
		file uint8
		rank uint8
		text string
	}{
		{A8, 0, 0, "a8"},
		{H8, 7, 0, "h8"},
		{A1, 0, 7, "a1"},
		{H1, 7, 7, "h1"},
		{E4, 4, 4, "e4"},
		{D5, 3, 3, "d5"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
				t.Errorf("File(), Rank() = %d, %d; want %d, %d", tt.sq.File(), tt.sq.Rank(), tt.file, tt.rank)
			}
			if got := SquareFromFileRank(tt.file, tt.rank); got != tt.sq {
				t.Errorf("SquareFromFileRank(%d, %d) = %d; want %d", tt.file, tt.rank, got, tt.sq)
			}
			if got := tt.sq.String(); got != tt.text {
				t.Errorf("String() = %q; want %q", got, tt.text)
			}
		})
	}

	if A8 != 0 || H1 != 63 {
		t.Errorf("A8, H1 = %d, %d; want 0, 63", A8, H1)
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d; want %d", sq.String(), got, sq)
		}
	}
}

func TestParseSquareErrors(t *testing.T) {
	tests := []string{"", "e", "e44", "i1", "a0", "a9", "E4", "4e", " e4"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseSquare(text)
			if err == nil {
				t.Fatalf("ParseSquare(%q) succeeded; want error", text)
			}
			if !stderrors.Is(err, errors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", text, err)
			}
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) || pe.Text != text || pe.Kind != errors.KindSquare {
				t.Errorf("ParseSquare(%q) error = %#v; want ParseError carrying the text", text, err)
			}
		})
	}
}

func TestSquareFromFileRankPanics(t *testing.T) {
	tests := []struct{ file, rank uint8 }{{8, 0}, {0, 8}, {255, 255}}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SquareFromFileRank(%d, %d) did not panic", tt.file, tt.rank)
				}
			}()
			SquareFromFileRank(tt.file, tt.rank)
		}()
	}
}

func TestSquareOffset(t *testing.T) {
	tests := []struct {
		name   string
		from   Square
		df, dr int
		want   Square
		wantOK bool
	}{
		{"white pawn step", E2, 0, -1, E3, true},
		{"knight jump", G1, -1, -2, F3, true},
		{"off the a-file", A4, -1, 0, 0, false},
		{"off the h-file", H4, 1, 1, 0, false},
		{"off rank 8", C8, 0, -1, 0, false},
		{"off rank 1", C1, 0, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.from.Offset(tt.df, tt.dr)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Offset(%d, %d) = %v, %v; want %v, %v", tt.df, tt.dr, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Square
		want int
	}{
		{E4, E4, 0},
		{E4, F5, 1},
		{A1, H8, 7},
		{B1, C3, 2},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDecodeSquare(t *testing.T) {
	for v := 0; v < 256; v++ {
		sq, err := DecodeSquare(uint8(v))
		if v < NumSquares {
			if err != nil || sq.Encode() != uint8(v) {
				t.Errorf("DecodeSquare(%d) = %v, %v", v, sq, err)
			}
		} else if !stderrors.Is(err, errors.ErrDecode) {
			t.Errorf("DecodeSquare(%d) error = %v; want ErrDecode", v, err)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: E2, To: E4, Tag: DoublePawnPush}, "e2e4"},
		{Move{From: G1, To: F3}, "g1f3"},
		{Move{From: E7, To: E8, Promotion: Queen}, "e7e8q"},
		{Move{From: B2, To: A1, Promotion: Knight}, "b2a1n"},
		{Move{From: E1, To: G1, Tag: CastleKingSide}, "e1g1"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
	if !(Move{Tag: CastleQueenSide}).IsCastle() || (Move{Tag: EnPassantCapture}).IsCastle() {
		t.Error("IsCastle() misclassifies tags")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{NoCastling, "-"},
		{AllCastling, "KQkq"},
		{WhiteKingSide | BlackQueenSide, "Kq"},
		{AllCastling.Without(CastlingRightsFor(White)), "kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}
