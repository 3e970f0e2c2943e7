package chess

import (
	"fmt"
	"strings"
)

// Square is an index into the flattened 8x8 board, row-major from the
// top-left: 0 is A8, 7 is H8, 56 is A1 and 63 is H1.
type Square int

// NoSquare marks the absence of a square, such as a position without an
// en passant target.
const NoSquare Square = -1

// Row returns the row of the square, 0 at the top (rank 8).
func (s Square) Row() int {
	return int(s) / 8
}

// Col returns the column of the square, 0 at the left (file A).
func (s Square) Col() int {
	return int(s) % 8
}

// String returns the algebraic notation for the square with an
// uppercase file letter, such as "E4". NoSquare renders as "-".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+s.Col(), 8-s.Row())
}

// ParseSquare parses two-character algebraic notation into a square.
// The file letter may be upper or lower case; the rank is a digit 1-8.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("notation %q: %w", text, ErrInvalidSquare)
	}
	file := strings.ToUpper(text)[0]
	rank := text[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("notation %q: %w", text, ErrInvalidSquare)
	}
	return Square(int(file-'A') + (8-int(rank-'0'))*8), nil
}
