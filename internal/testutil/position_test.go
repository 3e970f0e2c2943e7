package testutil

import (
	"testing"

	"github.com/hvandenberg/chesscore/chess"
)

func TestMustPosition(t *testing.T) {
	pos := MustPosition(t, chess.InitialFEN)
	AssertEqual(t, pos, chess.Initial())
}

func TestMustMove(t *testing.T) {
	m := MustMove(t, "E2", "E4")
	AssertEqual(t, m, chess.Move{From: 52, To: 36})
}
