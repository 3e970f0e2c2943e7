package engine

import "github.com/hvandenberg/chesscore/chess"

// IsCheck reports whether team's king stands on a besieged square. A
// position holding no king for team is never in check.
func IsCheck(team chess.Team, pos chess.Position) bool {
	king := pos.Board.Find(chess.NewPiece(team, chess.King))
	if king == chess.NoSquare {
		return false
	}
	return Besieged(team, pos).Contains(king)
}
