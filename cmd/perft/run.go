package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// run sets up the position and writes the requested count.
func run(ctx context.Context, cfg *config.Config) error {
	board, err := setupBoard(cfg.Perft)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 1 {
		describePosition(cfg.LogFile, board)
	}

	report := &output.Report{
		Board:    board,
		Depth:    cfg.Perft.Depth,
		Distinct: cfg.Perft.Distinct,
	}

	start := time.Now()
	if cfg.Perft.Distinct {
		n, err := countDistinct(ctx, board, cfg.Perft)
		if err != nil {
			return err
		}
		report.Total = uint64(n)
	} else {
		res, err := countNodes(ctx, board, cfg.Perft)
		if err != nil {
			return err
		}
		report.Total = res.Nodes
		if cfg.Perft.Divide {
			report.Divide = res.Divide
		}
	}
	elapsed := time.Since(start)

	if err := output.NewWriter(cfg).WriteReport(report); err != nil {
		return err
	}

	if cfg.Verbosity > 1 {
		rate := 0
		if secs := elapsed.Seconds(); secs > 0 {
			rate = int(float64(report.Total) / secs)
		}
		fmt.Fprintln(cfg.LogFile, message.NewPrinter(cfg.Output.Tag()).Sprintf("d=%d %s=%d rate=%dn/s (%.3fs elapsed)",
			report.Depth, report.Label(), report.Total, rate, elapsed.Seconds()))
	}
	return nil
}

// setupBoard parses the root position and plays the configured moves.
func setupBoard(p *config.PerftConfig) (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(p.FEN)
	if err != nil {
		return nil, err
	}
	for i, text := range p.Moves {
		m, err := engine.FindMove(board, text)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		board.Apply(m)
	}
	return board, nil
}

// countNodes runs perft on the calling goroutine or on the worker pool.
func countNodes(ctx context.Context, board *chess.Board, p *config.PerftConfig) (worker.PerftResult, error) {
	if p.Workers > 0 {
		return worker.ParallelPerft(ctx, board, p.Depth, p.Workers)
	}
	if p.Depth == 0 || !p.Divide {
		return worker.PerftResult{Nodes: engine.Perft(board, p.Depth)}, nil
	}
	res := worker.PerftResult{Divide: engine.PerftDivide(board, p.Depth)}
	for _, e := range res.Divide {
		res.Nodes += e.Nodes
	}
	return res, nil
}

// countDistinct counts distinct leaf positions.
func countDistinct(ctx context.Context, board *chess.Board, p *config.PerftConfig) (int, error) {
	if p.Workers > 0 {
		return worker.ParallelDistinct(ctx, board, p.Depth, p.Workers)
	}
	return hashing.CountDistinct(board, p.Depth), nil
}

// describePosition logs the root position before counting.
func describePosition(w io.Writer, board *chess.Board) {
	fmt.Fprintf(w, "Position: %s\n", engine.BoardToFEN(board))
	fmt.Fprintf(w, "Key: %016x\n", hashing.Key(board))
	if checkers := engine.Checkers(board, board.ToMove); len(checkers) > 0 {
		fmt.Fprintf(w, "Checked by: %v\n", checkers)
	}
	moves := engine.GenerateLegalMoves(board)
	fmt.Fprintf(w, "Legal moves: %d\n", len(moves))
	if result := engine.ResultFor(board, len(moves)); result.IsOver() {
		fmt.Fprintf(w, "Game over: %s\n", result)
	}
	if engine.HasInsufficientMaterial(board) {
		fmt.Fprintf(w, "Neither side has mating material\n")
	}
}
