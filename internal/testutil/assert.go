// Package testutil provides shared test utilities for the chess rules packages.
package testutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, msgAndArgs, "error = %v; want %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		reportf(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		reportf(t, msgAndArgs, "expected false but got true")
	}
}

// MoveStrings renders moves in long algebraic notation, keeping their order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// AssertMoveSet compares moves against want ignoring order.
func AssertMoveSet(t testing.TB, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, MoveStrings(got), sortStrings, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, msgAndArgs, "move set mismatch (-want +got):\n%s", diff)
	}
}

// AssertHasMove fails unless a move with the given text is in moves.
func AssertHasMove(t testing.TB, moves []chess.Move, text string, msgAndArgs ...interface{}) {
	t.Helper()
	if !containsMove(moves, text) {
		reportf(t, msgAndArgs, "%s not in %v", text, sorted(MoveStrings(moves)))
	}
}

// AssertNoMove fails if a move with the given text is in moves.
func AssertNoMove(t testing.TB, moves []chess.Move, text string, msgAndArgs ...interface{}) {
	t.Helper()
	if containsMove(moves, text) {
		reportf(t, msgAndArgs, "%s unexpectedly in %v", text, sorted(MoveStrings(moves)))
	}
}

// AssertSameState fails if the board differs from a previously saved state.
func AssertSameState(t testing.TB, board *chess.Board, want chess.State, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, board.SaveState()); diff != "" {
		reportf(t, msgAndArgs, "board state changed (-want +got):\n%s", diff)
	}
}

func containsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}

func sorted(s []string) []string {
	sort.Strings(s)
	return s
}

// reportf reports a failure, prefixed with the optional caller message.
func reportf(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
