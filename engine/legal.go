package engine

import (
	"iter"

	"github.com/hvandenberg/chesscore/chess"
)

// LegalMoves yields the subset of Moves(origin, pos) that leaves the
// moving side's king out of danger. King moves are screened against
// the besieged squares, and a castling king must additionally start
// from a safe square and cross a safe one. Every other candidate is
// played out on a copy of the position and dropped if the mover's king
// ends up in check. Like Moves, it panics if origin is empty.
func LegalMoves(origin chess.Square, pos chess.Position) iter.Seq[chess.Move] {
	candidates := Moves(origin, pos)
	piece := pos.Board[origin]
	team, _ := piece.Team()

	if piece.Role() == chess.King {
		return func(yield func(chess.Move) bool) {
			besieged := Besieged(team, pos)
			for m := range candidates {
				if besieged.Contains(m.To) {
					continue
				}
				if m.To-m.From == 2 || m.From-m.To == 2 {
					// Castling: no escape from check, no crossing
					// an attacked square.
					if besieged.Contains(m.From) || besieged.Contains((m.From+m.To)/2) {
						continue
					}
				}
				if !yield(m) {
					return
				}
			}
		}
	}

	return func(yield func(chess.Move) bool) {
		for m := range candidates {
			if IsCheck(team, apply(pos, m, chess.Queen)) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// IsMoveLegal reports whether the side to move may play m in pos.
func IsMoveLegal(m chess.Move, pos chess.Position) bool {
	team, ok := pos.Board[m.From].Team()
	if !ok || team != pos.Turn {
		return false
	}
	if t, ok := pos.Board[m.To].Team(); ok && t == team {
		return false
	}
	for candidate := range LegalMoves(m.From, pos) {
		if candidate == m {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether team has at least one legal move.
// Together with IsCheck this lets a caller tell mate from stalemate.
func HasLegalMoves(team chess.Team, pos chess.Position) bool {
	for origin := chess.Square(0); origin < 64; origin++ {
		if t, ok := pos.Board[origin].Team(); !ok || t != team {
			continue
		}
		for range LegalMoves(origin, pos) {
			return true
		}
	}
	return false
}

// allLegalMoves yields every legal move available to the side to move,
// scanning origins in square order.
func allLegalMoves(pos chess.Position) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		for origin := chess.Square(0); origin < 64; origin++ {
			if t, ok := pos.Board[origin].Team(); !ok || t != pos.Turn {
				continue
			}
			for m := range LegalMoves(origin, pos) {
				if !yield(m) {
					return
				}
			}
		}
	}
}
