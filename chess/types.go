// Package chess provides the core chess types: squares, pieces, boards
// and immutable game positions. It carries no rules logic of its own;
// move generation and legality live in the engine package.
package chess

// Team represents one of the two sides of a game.
type Team uint8

const (
	White Team = iota
	Black
)

// String returns the string representation of a team.
func (t Team) String() string {
	if t == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the opposing team.
func (t Team) Opponent() Team {
	if t == White {
		return Black
	}
	return White
}

// Pieces returns the set of piece identities belonging to the team.
func (t Team) Pieces() PieceSet {
	if t == White {
		return Whites
	}
	return Blacks
}

// Role represents the kind of a piece independent of its team.
type Role uint8

const (
	NoRole Role = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a role.
func (r Role) String() string {
	names := []string{"NoRole", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Piece is a single piece identity, one of the twelve team and role
// combinations. The identities are the Unicode chess figurines, so a
// Piece prints as itself. NoPiece marks an empty cell.
type Piece rune

const (
	NoPiece Piece = 0

	WhiteKing   Piece = '♔'
	WhiteQueen  Piece = '♕'
	WhiteRook   Piece = '♖'
	WhiteBishop Piece = '♗'
	WhiteKnight Piece = '♘'
	WhitePawn   Piece = '♙'

	BlackKing   Piece = '♚'
	BlackQueen  Piece = '♛'
	BlackRook   Piece = '♜'
	BlackBishop Piece = '♝'
	BlackKnight Piece = '♞'
	BlackPawn   Piece = '♟'
)

// The figurine code points are contiguous: six white pieces from
// WhiteKing, then six black in the same role order.
const teamSpan = 6

// NewPiece returns the piece identity for a team and role.
// It returns NoPiece when role is NoRole.
func NewPiece(t Team, r Role) Piece {
	if r == NoRole {
		return NoPiece
	}
	p := WhiteKing + Piece(r-King)
	if t == Black {
		p += teamSpan
	}
	return p
}

// Role returns the role of a piece, or NoRole for NoPiece and
// values outside the twelve identities.
func (p Piece) Role() Role {
	if p < WhiteKing || p > BlackPawn {
		return NoRole
	}
	return King + Role((p-WhiteKing)%teamSpan)
}

// Team returns the team a piece belongs to. The second return value is
// false for NoPiece and values outside the twelve identities.
func (p Piece) Team() (Team, bool) {
	switch {
	case p >= WhiteKing && p <= WhitePawn:
		return White, true
	case p >= BlackKing && p <= BlackPawn:
		return Black, true
	}
	return White, false
}

// String returns the figurine for the piece.
func (p Piece) String() string {
	if p == NoPiece {
		return "none"
	}
	return string(rune(p))
}

// PieceSet is a membership set over piece identities.
type PieceSet map[Piece]bool

// Contains reports whether the set holds p.
func (s PieceSet) Contains(p Piece) bool {
	return s[p]
}

// Identity sets grouping pieces by team and by role. They are
// initialized once and never mutated.
var (
	Whites = PieceSet{WhiteKing: true, WhiteQueen: true, WhiteRook: true,
		WhiteBishop: true, WhiteKnight: true, WhitePawn: true}
	Blacks = PieceSet{BlackKing: true, BlackQueen: true, BlackRook: true,
		BlackBishop: true, BlackKnight: true, BlackPawn: true}

	Kings   = PieceSet{WhiteKing: true, BlackKing: true}
	Queens  = PieceSet{WhiteQueen: true, BlackQueen: true}
	Rooks   = PieceSet{WhiteRook: true, BlackRook: true}
	Bishops = PieceSet{WhiteBishop: true, BlackBishop: true}
	Knights = PieceSet{WhiteKnight: true, BlackKnight: true}
	Pawns   = PieceSet{WhitePawn: true, BlackPawn: true}
)
