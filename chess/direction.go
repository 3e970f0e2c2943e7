package chess

// Direction is a signed step over the flattened board. Vertical steps
// move by whole rows, so North from E4 lands on E5.
type Direction int

const (
	North Direction = -8
	East  Direction = 1
	South Direction = 8
	West  Direction = -1

	NorthEast = North + East
	SouthEast = South + East
	SouthWest = South + West
	NorthWest = North + West
)

// directionsWhite maps each white piece to its movement vectors. The
// king's table carries the two-square castling offsets; whether such a
// candidate survives is decided by the move generator and legality
// filter, not here. Pawn vectors point North because White moves up
// the board toward index 0.
var directionsWhite = map[Piece][]Direction{
	WhiteKing: {North, NorthEast, East, 2 * East, SouthEast, South,
		SouthWest, West, 2 * West, NorthWest},
	WhiteQueen: {North, NorthEast, East, SouthEast, South, SouthWest,
		West, NorthWest},
	WhiteRook:   {North, East, South, West},
	WhiteBishop: {NorthEast, SouthEast, SouthWest, NorthWest},
	WhiteKnight: {2*North + East, North + 2*East, South + 2*East, 2*South + East,
		2*South + West, South + 2*West, North + 2*West, 2*North + West},
	WhitePawn: {North, 2 * North, NorthEast, NorthWest},
}

var directionsBlack = map[Piece][]Direction{
	BlackKing: {North, NorthEast, East, 2 * East, SouthEast, South,
		SouthWest, West, 2 * West, NorthWest},
	BlackQueen: {North, NorthEast, East, SouthEast, South, SouthWest,
		West, NorthWest},
	BlackRook:   {North, East, South, West},
	BlackBishop: {NorthEast, SouthEast, SouthWest, NorthWest},
	BlackKnight: {2*North + East, North + 2*East, South + 2*East, 2*South + East,
		2*South + West, South + 2*West, North + 2*West, 2*North + West},
	BlackPawn: {SouthEast, South, 2 * South, SouthWest},
}

// Directions returns the direction table for a team, keyed by piece
// identity. The table is shared and must not be modified.
func Directions(t Team) map[Piece][]Direction {
	if t == White {
		return directionsWhite
	}
	return directionsBlack
}
