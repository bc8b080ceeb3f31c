// Package errors provides sentinel errors and error types for the chess rules core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed algebraic square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrDecode indicates an encoded value outside its valid range.
	ErrDecode = errors.New("decode failure")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Kind classifies what was being parsed when a ParseError occurred.
type Kind int

const (
	KindSquare Kind = iota
	KindPiece
	KindPieceKind
	KindFEN
	KindMove
)

// String returns the name of the parse kind.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindPiece:
		return "piece"
	case KindPieceKind:
		return "piece kind"
	case KindFEN:
		return "FEN"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// ParseError represents a failure to parse or decode external input.
// It carries the kind of value being parsed and the offending text.
type ParseError struct {
	Kind   Kind   // What was being parsed
	Text   string // The offending input
	Detail string // Optional explanation (e.g. "expected 8 ranks")
	Err    error  // The underlying sentinel
}

// Error returns a formatted error message with the kind, text and detail.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Kind, e.Text)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError wrapping sentinel.
func NewParseError(kind Kind, text string, sentinel error, detail string) *ParseError {
	return &ParseError{
		Kind:   kind,
		Text:   text,
		Detail: detail,
		Err:    sentinel,
	}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
