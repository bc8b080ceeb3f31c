// Package worker provides a worker pool for splitting move-tree walks
// across goroutines.
package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem represents one root move to be searched below.
type WorkItem struct {
	Move  chess.Move
	Depth int // Remaining depth below the move
	Index int // Original index for tracking
}

// ProcessResult represents the result of processing a root move.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error // Set when the process func panicked
}

// ProcessFunc processes a work item on the worker's own board. The board
// must be returned to the state it was in on entry.
type ProcessFunc func(board *chess.Board, item WorkItem) ProcessResult

// Pool manages a pool of workers, each owning a private copy of the root
// board.
type Pool struct {
	numWorkers  int
	bufferSize  int
	root        *chess.Board
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, root *chess.Board, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(root, processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// root and processFunc are required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(root *chess.Board, processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		root:        root,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start copies the root board once per worker and starts the worker
// goroutines. The root must not change until Close returns.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		board := p.root.Copy()
		p.wg.Add(1)
		go p.worker(board)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(board *chess.Board) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.process(board, item)
	}
}

// process runs the process func, turning a panic into an error result. The
// board may be left mid-move afterwards, so callers should stop the pool.
func (p *Pool) process(board *chess.Board, item WorkItem) (result ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ProcessResult{
				Move:  item.Move,
				Index: item.Index,
				Error: fmt.Errorf("root move %s: %v", item.Move, r),
			}
		}
	}()
	return p.processFunc(board, item)
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
