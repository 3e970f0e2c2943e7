package engine

import "github.com/hvandenberg/chesscore/chess"

// Besieged returns the squares the opponent of team currently attacks:
// the union of capture destinations of every opposing piece, whether
// or not a victim stands on them. Squares occupied by the attacking
// side's own pieces are not part of the coverage. The set is computed
// from scratch on every call.
func Besieged(team chess.Team, pos chess.Position) chess.SquareSet {
	var set chess.SquareSet
	attacker := team.Opponent()
	for origin := chess.Square(0); origin < 64; origin++ {
		if t, ok := pos.Board[origin].Team(); !ok || t != attacker {
			continue
		}
		for m := range moves(origin, pos, true) {
			set.Add(m.To)
		}
	}
	return set
}
