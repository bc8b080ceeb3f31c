package worker

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// PerftResult is the outcome of a parallel perft run.
type PerftResult struct {
	Nodes  uint64
	Divide []engine.DivideEntry // Per root move, in generation order
}

// ParallelPerft computes Perft(root, depth) by handing each legal root move
// to a pool of numWorkers workers. The root board is not modified.
// Cancelling ctx stops the remaining work and returns ctx.Err().
func ParallelPerft(ctx context.Context, root *chess.Board, depth, numWorkers int) (PerftResult, error) {
	if depth < 0 {
		return PerftResult{}, nil
	}
	if depth == 0 {
		return PerftResult{Nodes: 1}, nil
	}
	results, err := splitRoot(ctx, root, depth, numWorkers, func(board *chess.Board, item WorkItem) ProcessResult {
		return ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: searchBelow(board, item, engine.Perft),
		}
	})
	if err != nil {
		return PerftResult{}, err
	}

	out := PerftResult{Divide: make([]engine.DivideEntry, 0, len(results))}
	for _, r := range results {
		out.Nodes += r.Nodes
		out.Divide = append(out.Divide, engine.DivideEntry{Move: r.Move, Nodes: r.Nodes})
	}
	return out, nil
}

// ParallelDistinct counts the distinct positions reachable in exactly depth
// plies, sharing one position set between the workers.
func ParallelDistinct(ctx context.Context, root *chess.Board, depth, numWorkers int) (int, error) {
	set := hashing.NewThreadSafePositionSet()
	if depth < 0 {
		return 0, nil
	}
	if depth == 0 {
		set.CheckAndAdd(root)
		return set.UniqueCount(), nil
	}
	_, err := splitRoot(ctx, root, depth, numWorkers, func(board *chess.Board, item WorkItem) ProcessResult {
		searchBelow(board, item, func(b *chess.Board, d int) uint64 {
			hashing.AddLeaves(set, b, d)
			return 0
		})
		return ProcessResult{Move: item.Move, Index: item.Index}
	})
	if err != nil {
		return 0, err
	}
	return set.UniqueCount(), nil
}

// searchBelow plays the item's move, runs search on the remaining depth and
// takes the move back on every exit path.
func searchBelow(board *chess.Board, item WorkItem, search func(*chess.Board, int) uint64) uint64 {
	r := board.Apply(item.Move)
	defer board.Unapply(r)
	return search(board, item.Depth)
}

// splitRoot runs process for every legal root move and returns the results
// in generation order. A finished game has no root moves.
func splitRoot(ctx context.Context, root *chess.Board, depth, numWorkers int, process ProcessFunc) ([]ProcessResult, error) {
	moves := engine.GenerateLegalMoves(root)
	if engine.ResultFor(root, len(moves)).IsOver() {
		return nil, nil
	}

	pool := NewPoolWithOptions(root, process, WithWorkers(numWorkers), WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(moves))
	done := ctx.Done()
	for {
		select {
		case <-done:
			pool.Stop()
			done = nil // Keep draining so the workers can exit
		case r, ok := <-pool.Results():
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if len(results) != len(moves) {
					return nil, fmt.Errorf("worker pool returned %d of %d root moves", len(results), len(moves))
				}
				sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
				return results, nil
			}
			if r.Error != nil {
				pool.Stop()
				return nil, r.Error
			}
			results = append(results, r)
		}
	}
}
