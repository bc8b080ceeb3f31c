package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// runConfig runs cfg and returns what was written to the output and log.
func runConfig(t *testing.T, cfg *config.Config) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg.SetOutput(out)
	cfg.SetLog(log)
	cfg.Output.Colour = false
	err := run(context.Background(), cfg)
	return out.String(), log.String(), err
}

func TestRunTotals(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{
			name: "depth 3",
			cfg:  config.NewConfigBuilder().WithDepth(3).Build(),
			want: "Nodes: 8,902\n",
		},
		{
			name: "depth 3 with workers",
			cfg:  config.NewConfigBuilder().WithDepth(3).WithWorkers(4).Build(),
			want: "Nodes: 8,902\n",
		},
		{
			name: "depth zero",
			cfg:  config.NewConfigBuilder().WithDepth(0).Build(),
			want: "Nodes: 1\n",
		},
		{
			name: "german grouping",
			cfg:  config.NewConfigBuilder().WithFEN(testutil.KiwipeteFEN).WithDepth(2).WithLanguage("de").Build(),
			want: "Nodes: 2.039\n",
		},
		{
			name: "quiet prints the bare count",
			cfg:  config.NewConfigBuilder().WithDepth(3).WithVerbosity(0).WithDivide(true).Build(),
			want: "8902\n",
		},
		{
			name: "distinct",
			cfg:  config.NewConfigBuilder().WithDepth(3).WithDistinct(true).Build(),
			want: "Distinct: 5,362\n",
		},
		{
			name: "distinct with workers",
			cfg:  config.NewConfigBuilder().WithDepth(3).WithDistinct(true).WithWorkers(2).Build(),
			want: "Distinct: 5,362\n",
		},
		{
			name: "checkmated root",
			cfg: config.NewConfigBuilder().
				WithMoves("f2f3", "e7e5", "g2g4", "d8h4").
				WithDepth(2).
				Build(),
			want: "Nodes: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runConfig(t, tt.cfg)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestRunDivide(t *testing.T) {
	for _, workers := range []int{0, 3} {
		cfg := config.NewConfigBuilder().
			WithMoves("e2e4", "e7e5").
			WithDepth(1).
			WithDivide(true).
			WithWorkers(workers).
			Build()

		got, _, err := runConfig(t, cfg)
		testutil.AssertNoError(t, err)

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		// 29 moves, a blank line and the total
		testutil.AssertEqual(t, len(lines), 31, "workers=%d", workers)
		testutil.AssertEqual(t, lines[0], "a2a3: 1", "workers=%d", workers)
		testutil.AssertEqual(t, lines[len(lines)-1], "Nodes: 29", "workers=%d", workers)
		testutil.AssertContains(t, got, "e1e2: 1\n")
	}
}

func TestRunVerboseLogsPosition(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithFEN("4k3/8/8/8/8/8/8/r3K3 w - - 0 1").
		WithDepth(1).
		WithVerbosity(2).
		Build()

	got, log, err := runConfig(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "Nodes: 3\n")
	testutil.AssertContains(t, log, "Position: 4k3/8/8/8/8/8/8/r3K3 w - - 0 1\n")
	testutil.AssertContains(t, log, "Key: ")
	testutil.AssertContains(t, log, "Checked by: [a1]\n")
	testutil.AssertContains(t, log, "Legal moves: 3\n")
	testutil.AssertContains(t, log, "d=1 Nodes=3 rate=")

	cfg = config.NewConfigBuilder().
		WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithVerbosity(2).
		Build()
	_, log, err = runConfig(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, log, "Neither side has mating material\n")
}

func TestRunErrors(t *testing.T) {
	t.Run("bad FEN", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithFEN("8/8/8/8/8/8/8/8 w - - 0 1").Build()
		_, _, err := runConfig(t, cfg)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	})

	t.Run("illegal move", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithMoves("e2e4", "e2e4").Build()
		_, _, err := runConfig(t, cfg)
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		if err != nil {
			testutil.AssertContains(t, err.Error(), "move 2")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithDepth(3).WithWorkers(2).Build()
		cfg.SetOutput(&bytes.Buffer{})
		cfg.Output.Colour = false
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := run(ctx, cfg); err == nil {
			t.Error("run() succeeded after cancellation")
		}
	})
}

func TestRunJSON(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithDepth(2).
		WithDivide(true).
		WithJSONOutput(true).
		Build()

	got, _, err := runConfig(t, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, got, `"count": 400`)
	testutil.AssertContains(t, got, `"uci": "g1f3"`)
	testutil.AssertContains(t, got, `"kind": "nodes"`)
}
