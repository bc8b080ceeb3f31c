package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreadSafePositionSet wraps PositionSet with mutex protection for concurrent access.
type ThreadSafePositionSet struct {
	set *PositionSet
	mu  sync.RWMutex
}

// NewThreadSafePositionSet creates a new thread-safe position set.
func NewThreadSafePositionSet() *ThreadSafePositionSet {
	return &ThreadSafePositionSet{set: NewPositionSet()}
}

// CheckAndAdd atomically checks if a position was seen and records it.
// The key is computed before the lock is taken.
func (s *ThreadSafePositionSet) CheckAndAdd(board *chess.Board) bool {
	key := Key(board)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.addKey(key)
}

// DuplicateCount returns the number of additions of already seen positions.
func (s *ThreadSafePositionSet) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.DuplicateCount()
}

// UniqueCount returns the number of distinct positions.
func (s *ThreadSafePositionSet) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.UniqueCount()
}
