// Package output formats perft results as text or JSON.
package output

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Report is the outcome of one perft run.
type Report struct {
	Board    *chess.Board // Root position; not modified
	Depth    int
	Distinct bool   // Total counts distinct positions rather than paths
	Total    uint64 // Node or distinct position count
	Divide   []engine.DivideEntry
}

// Label names what Total counts.
func (r *Report) Label() string {
	if r.Distinct {
		return "Distinct"
	}
	return "Nodes"
}
