package chess

import "fmt"

// Move is an origin and destination square pair. It carries no
// promotion choice; that is supplied when the move is committed.
type Move struct {
	From Square
	To   Square
}

// String returns the move as origin and destination notation, "E2E4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// CastlingRights holds one team's castling availability. Rights are
// monotonic: transitions clear them and nothing restores them.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Position is the complete state of a game between moves. It is an
// immutable value: transitions build a new Position and never touch
// the old one, so distinct positions share nothing.
//
// Exactly one king per team is assumed by the legality and check
// queries; positions violating that are accepted but those queries
// lose their meaning.
type Position struct {
	Board         Board
	Turn          Team
	WhiteCastling CastlingRights
	BlackCastling CastlingRights
	EnPassant     Square // NoSquare unless the previous move was a double pawn push
	HalfmoveClock int    // half-moves since the last capture or pawn move
	MoveCount     int    // completed move pairs; 0 at the start of a game
}

// Initial returns the standard starting position.
func Initial() Position {
	return Position{
		Board:         InitialBoard,
		Turn:          White,
		WhiteCastling: CastlingRights{Kingside: true, Queenside: true},
		BlackCastling: CastlingRights{Kingside: true, Queenside: true},
		EnPassant:     NoSquare,
	}
}

// Castling returns the castling rights of a team.
func (p Position) Castling(t Team) CastlingRights {
	if t == White {
		return p.WhiteCastling
	}
	return p.BlackCastling
}

// String renders the board followed by a one-line summary of the
// remaining state.
func (p Position) String() string {
	return fmt.Sprintf("%s\n%v to move, castling %s, en passant %v, clock %d, moves %d",
		p.Board, p.Turn, castlingField(p), p.EnPassant, p.HalfmoveClock, p.MoveCount)
}
