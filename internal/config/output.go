package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Colour highlights moves and totals with ANSI colours
	Colour bool

	// Language selects digit grouping for node counts, e.g. "en" or "de"
	Language string

	// JSON enables JSON output instead of text
	JSON bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:   true,
		Language: "en",
	}
}

// Tag returns the parsed output language.
func (o *OutputConfig) Tag() language.Tag {
	tag, err := language.Parse(o.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if _, err := language.Parse(o.Language); err != nil {
		return fmt.Errorf("output language %q: %v: %w", o.Language, err, errors.ErrInvalidConfig)
	}
	return nil
}
