// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	// Position
	fenString = flag.String("fen", engine.InitialFEN, "Root position in FEN")
	moveList  = flag.String("moves", "", "Moves to play from the root first (e.g. 'e2e4 e7e5' or 'e2e4,e7e5')")

	// Counting
	depth    = flag.Int("depth", 1, "Number of plies to count")
	divide   = flag.Bool("divide", false, "Print the node count below each root move")
	distinct = flag.Bool("distinct", false, "Count distinct positions instead of move paths")
	workers  = flag.Int("workers", 0, "Worker goroutines (0 = count on the main goroutine)")

	// Output
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noColour     = flag.Bool("nocolour", false, "Disable coloured output")
	lang         = flag.String("lang", "en", "Language used to group digits in node counts")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Misc
	verbose = flag.Bool("v", false, "Log position details and timing")
	quiet   = flag.Bool("s", false, "Silent mode (print the bare count only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line settings into cfg.
func applyFlags(cfg *config.Config) {
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPerftFlags configures what is counted.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.FEN = strings.TrimSpace(*fenString)
	cfg.Perft.Moves = splitMoves(*moveList)
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Distinct = *distinct
	cfg.Perft.Workers = *workers
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Colour = !*noColour
	cfg.Output.Language = *lang
	cfg.Output.JSON = *jsonOutput
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(s string) []string {
	moves := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(moves) == 0 {
		return nil
	}
	return moves
}
