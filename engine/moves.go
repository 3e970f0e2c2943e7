// Package engine provides move generation, legality checking and
// position transitions for the chess types.
package engine

import (
	"fmt"
	"iter"

	"github.com/hvandenberg/chesscore/chess"
)

// Pawn home ranks, one row in from the south and north edges. Double
// steps are only available from these squares.
const (
	whitePawnHome = chess.BorderSouth >> 8
	blackPawnHome = chess.BorderNorth << 8
)

// Inner columns next to the side borders. A knight step spans two
// columns, so its wraps land one column further in than the border.
const (
	innerEast = chess.BorderEast >> 1
	innerWest = chess.BorderWest << 1
)

// Moves yields every pseudo-legal move for the piece on origin: each
// square the piece could reach by its movement pattern, without regard
// for the safety of its own king. Castling candidates are included
// whenever the right is held and the squares between king and rook are
// empty. The sequence is finite and may be ranged over any number of
// times; each pass generates afresh. Moves panics if origin is empty.
func Moves(origin chess.Square, pos chess.Position) iter.Seq[chess.Move] {
	return moves(origin, pos, false)
}

// moves is the generator behind Moves. With capturesOnly set it yields
// only capturing patterns: pawn pushes and castling are suppressed,
// and pawn diagonals are yielded whether or not a victim stands there.
// Besieged is built on that mode.
func moves(origin chess.Square, pos chess.Position, capturesOnly bool) iter.Seq[chess.Move] {
	piece := pos.Board[origin]
	team, ok := piece.Team()
	if !ok {
		panic(fmt.Sprintf("engine: no piece on %v", origin))
	}

	role := piece.Role()
	sliding := role == chess.Queen || role == chess.Rook || role == chess.Bishop

	forward, home := chess.North, whitePawnHome
	if team == chess.Black {
		forward, home = chess.South, blackPawnHome
	}

	dirs := chess.Directions(team)[piece]

	return func(yield func(chess.Move) bool) {
		for _, dir := range dirs {
			step := chess.Square(dir)
			for from, to := origin, origin+step; inBounds(from, to); from, to = to, to+step {
				target := pos.Board[to]
				if t, ok := target.Team(); ok && t == team {
					break
				}

				if role == chess.Pawn {
					if dir == forward || dir == 2*forward {
						// Forward steps never capture.
						if capturesOnly || target != chess.NoPiece {
							break
						}
						if dir == 2*forward &&
							(!home.Contains(origin) || pos.Board[origin+chess.Square(forward)] != chess.NoPiece) {
							break
						}
					} else if !capturesOnly && target == chess.NoPiece && to != pos.EnPassant {
						// Diagonal steps need a victim, present or en passant.
						break
					}
				}

				if role == chess.King && (dir == 2*chess.East || dir == 2*chess.West) {
					if capturesOnly || !castleOpen(pos, origin, dir, team) {
						break
					}
				}

				if !yield(chess.Move{From: origin, To: to}) {
					return
				}
				if target != chess.NoPiece || !sliding {
					break
				}
			}
		}
	}
}

// castleOpen reports whether the king on origin may start a castle in
// dir: the matching right must still be held and every square between
// the king and the rook's home must be empty. Safety from check is the
// legality filter's concern, not the generator's.
func castleOpen(pos chess.Position, origin chess.Square, dir chess.Direction, team chess.Team) bool {
	rights := pos.Castling(team)
	var between []chess.Square
	switch dir {
	case 2 * chess.East:
		if !rights.Kingside {
			return false
		}
		between = []chess.Square{origin + 1, origin + 2}
	case 2 * chess.West:
		if !rights.Queenside {
			return false
		}
		between = []chess.Square{origin - 1, origin - 2, origin - 3}
	}
	for _, s := range between {
		if s < 0 || s > 63 || s.Row() != origin.Row() {
			return false
		}
		if pos.Board[s] != chess.NoPiece {
			return false
		}
	}
	return true
}

// inBounds reports whether a single step from from to to stayed on the
// board. Stepping off the top or bottom leaves the 0..63 range, while
// a horizontal wrap keeps the index in range but jumps between
// opposite edges, so wraps are detected by border membership of the
// squares before and after the step.
func inBounds(from, to chess.Square) bool {
	switch {
	case to < 0 || to > 63:
		return false
	case chess.BorderEast.Contains(from) && chess.BorderWest.Contains(to):
		return false
	case chess.BorderWest.Contains(from) && chess.BorderEast.Contains(to):
		return false
	case innerEast.Contains(from) && chess.BorderWest.Contains(to),
		chess.BorderEast.Contains(from) && innerWest.Contains(to):
		return false
	case innerWest.Contains(from) && chess.BorderEast.Contains(to),
		chess.BorderWest.Contains(from) && innerEast.Contains(to):
		return false
	}
	return true
}
