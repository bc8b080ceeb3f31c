package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyPerftFlags(t *testing.T) {
	defer saveRestoreString(fenString, "  "+testutil.KiwipeteFEN+" ")()
	defer saveRestoreString(moveList, "e1g1, a8b8")()
	defer saveRestoreInt(depth, 4)()
	defer saveRestoreBool(divide, true)()
	defer saveRestoreBool(distinct, false)()
	defer saveRestoreInt(workers, 6)()

	cfg := config.NewConfig()
	applyPerftFlags(cfg)

	testutil.AssertEqual(t, cfg.Perft.FEN, testutil.KiwipeteFEN)
	testutil.AssertEqual(t, cfg.Perft.Moves, []string{"e1g1", "a8b8"})
	testutil.AssertEqual(t, cfg.Perft.Depth, 4)
	testutil.AssertTrue(t, cfg.Perft.Divide)
	testutil.AssertFalse(t, cfg.Perft.Distinct)
	testutil.AssertEqual(t, cfg.Perft.Workers, 6)
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(noColour, true)()
	defer saveRestoreString(lang, "de")()
	defer saveRestoreBool(jsonOutput, true)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	if cfg.Output.Colour {
		t.Error("Colour should be false with -nocolour")
	}
	if cfg.Output.Language != "de" {
		t.Errorf("Language = %q; want de", cfg.Output.Language)
	}
	if !cfg.Output.JSON {
		t.Error("JSON should be true with -J")
	}
}

func TestApplyFlagsVerbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"e2e4", []string{"e2e4"}},
		{"e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{" e2e4,e7e5 ,\tg1f3 ", []string{"e2e4", "e7e5", "g1f3"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			testutil.AssertEqual(t, splitMoves(tt.in), tt.want)
		})
	}
}
