package chess

import (
	"strings"
	"testing"
)

func TestInitial(t *testing.T) {
	pos := Initial()

	if pos.Board != InitialBoard {
		t.Error("Initial() board differs from InitialBoard")
	}
	if pos.Turn != White {
		t.Errorf("Turn = %v, want White", pos.Turn)
	}
	full := CastlingRights{Kingside: true, Queenside: true}
	if pos.WhiteCastling != full || pos.BlackCastling != full {
		t.Errorf("castling = %+v/%+v, want both sides available", pos.WhiteCastling, pos.BlackCastling)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("EnPassant = %v, want NoSquare", pos.EnPassant)
	}
	if pos.HalfmoveClock != 0 || pos.MoveCount != 0 {
		t.Errorf("clock/moves = %d/%d, want 0/0", pos.HalfmoveClock, pos.MoveCount)
	}
}

func TestCastlingAccessor(t *testing.T) {
	pos := Position{
		WhiteCastling: CastlingRights{Kingside: true},
		BlackCastling: CastlingRights{Queenside: true},
	}
	if got := pos.Castling(White); got != (CastlingRights{Kingside: true}) {
		t.Errorf("Castling(White) = %+v", got)
	}
	if got := pos.Castling(Black); got != (CastlingRights{Queenside: true}) {
		t.Errorf("Castling(Black) = %+v", got)
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: 52, To: 36}
	if got := m.String(); got != "E2E4" {
		t.Errorf("String() = %q, want %q", got, "E2E4")
	}
}

func TestPositionString(t *testing.T) {
	s := Initial().String()
	for _, want := range []string{"White to move", "KQkq", "en passant -", "clock 0"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
