// Package hashing provides position keys and distinct-position counting.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PositionSet tracks which positions have been seen, keyed by Zobrist key.
type PositionSet struct {
	// seen maps a key to the number of times it was added
	seen map[uint64]int
	// duplicateCount tracks the number of repeated additions
	duplicateCount int
}

// NewPositionSet creates an empty position set.
func NewPositionSet() *PositionSet {
	return &PositionSet{seen: make(map[uint64]int)}
}

// CheckAndAdd records the board's position.
// Returns true if the position had been seen before.
func (s *PositionSet) CheckAndAdd(board *chess.Board) bool {
	return s.addKey(Key(board))
}

func (s *PositionSet) addKey(key uint64) bool {
	s.seen[key]++
	if s.seen[key] > 1 {
		s.duplicateCount++
		return true
	}
	return false
}

// Occurrences returns how many times the board's position was added.
func (s *PositionSet) Occurrences(board *chess.Board) int {
	return s.seen[Key(board)]
}

// DuplicateCount returns the number of additions of already seen positions.
func (s *PositionSet) DuplicateCount() int {
	return s.duplicateCount
}

// UniqueCount returns the number of distinct positions.
func (s *PositionSet) UniqueCount() int {
	return len(s.seen)
}

// Reset clears the set.
func (s *PositionSet) Reset() {
	s.seen = make(map[uint64]int)
	s.duplicateCount = 0
}

// PositionRecorder is implemented by PositionSet and ThreadSafePositionSet.
type PositionRecorder interface {
	CheckAndAdd(board *chess.Board) bool
}

// AddLeaves adds every position reachable in exactly depth plies to set.
// Positions where the game has ended before depth are not added, and a
// negative depth adds nothing. The board is identical before and after the
// call.
func AddLeaves(set PositionRecorder, board *chess.Board, depth int) {
	if depth < 0 {
		return
	}
	if depth == 0 {
		set.CheckAndAdd(board)
		return
	}
	moves := engine.GenerateLegalMoves(board)
	if engine.ResultFor(board, len(moves)).IsOver() {
		return
	}
	for _, m := range moves {
		r := board.Apply(m)
		AddLeaves(set, board, depth-1)
		board.Unapply(r)
	}
}

// CountDistinct returns the number of distinct positions reachable in
// exactly depth plies.
func CountDistinct(board *chess.Board, depth int) int {
	set := NewPositionSet()
	AddLeaves(set, board, depth)
	return set.UniqueCount()
}
