package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONReport represents a perft run in JSON format.
type JSONReport struct {
	FEN    string     `json:"fen"`
	Depth  int        `json:"depth"`
	Kind   string     `json:"kind"` // "nodes" or "distinct"
	Count  uint64     `json:"count"`
	Result string     `json:"result,omitempty"` // Set when the root game is over
	Moves  []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents one root move and the nodes below it.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Special   string `json:"special,omitempty"` // Move tag for castling, en passant and double pushes
	Nodes     uint64 `json:"nodes"`
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		FEN:   engine.BoardToFEN(r.Board),
		Depth: r.Depth,
		Kind:  strings.ToLower(r.Label()),
		Count: r.Total,
	}
	if result := engine.GameResult(r.Board); result.IsOver() {
		jr.Result = result.String()
	}
	if len(r.Divide) > 0 {
		jr.Moves = make([]JSONMove, 0, len(r.Divide))
		for _, e := range r.Divide {
			jr.Moves = append(jr.Moves, convertMove(r.Board, e))
		}
	}
	return jr
}

// convertMove describes a root move in the root position.
func convertMove(board *chess.Board, e engine.DivideEntry) JSONMove {
	m := e.Move
	jm := JSONMove{
		UCI:   m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: kindName(board.PieceAt(m.From).Kind()),
		Nodes: e.Nodes,
	}

	switch {
	case m.Tag == chess.EnPassantCapture:
		jm.Captured = kindName(chess.Pawn)
	case board.PieceAt(m.To) != chess.NoPiece:
		jm.Captured = kindName(board.PieceAt(m.To).Kind())
	}
	if m.IsPromotion() {
		jm.Promotion = kindName(m.Promotion)
	}
	if m.Tag != chess.Normal {
		jm.Special = m.Tag.String()
	}
	return jm
}

func kindName(k chess.PieceKind) string {
	return strings.ToLower(k.String())
}
