package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions callers are expected to
// test for with errors.Is.
var (
	// ErrIllegalMove indicates a move that violates the rules for the
	// position it was applied to. Recoverable: the caller picks another
	// move, and no position state was produced.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates malformed algebraic square notation.
	ErrInvalidSquare = errors.New("invalid square notation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps a rule violation with the move that caused it. It
// unwraps to the underlying sentinel, so
// errors.Is(err, ErrIllegalMove) works through it.
type MoveError struct {
	Move Move
	Err  error
}

// Error returns the move followed by the underlying condition.
func (e *MoveError) Error() string {
	return fmt.Sprintf("move %v: %v", e.Move, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}
