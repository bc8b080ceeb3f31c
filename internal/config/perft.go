package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxDepth bounds the requested perft depth.
const MaxDepth = 10

// PerftConfig holds settings for a perft run.
type PerftConfig struct {
	// FEN is the root position
	FEN string

	// Moves are played from FEN before counting, in long algebraic notation
	Moves []string

	// Depth is the number of plies to count
	Depth int

	// Divide prints the node count below every root move
	Divide bool

	// Distinct counts distinct leaf positions instead of paths
	Distinct bool

	// Workers is the number of goroutines; 0 runs on the calling goroutine
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:   engine.InitialFEN,
		Depth: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.FEN == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d out of range 0-%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("negative worker count (%d): %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Distinct {
		return fmt.Errorf("divide and distinct are exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
