package testutil

import (
	"testing"

	"github.com/hvandenberg/chesscore/chess"
)

// MustPosition parses a FEN string and returns the position. It calls
// t.Fatal if the string does not parse. Use this in test setup where a
// bad fixture should abort the test.
func MustPosition(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test position %q: %v", fen, err)
	}
	return pos
}

// MustMove builds a move from a pair of square notations such as
// "E2", "E4". It calls t.Fatal if either square does not parse.
func MustMove(t *testing.T, from, to string) chess.Move {
	t.Helper()
	f, err := chess.ParseSquare(from)
	if err != nil {
		t.Fatalf("bad origin square %q: %v", from, err)
	}
	d, err := chess.ParseSquare(to)
	if err != nil {
		t.Fatalf("bad destination square %q: %v", to, err)
	}
	return chess.Move{From: f, To: d}
}
