package chess

import "strings"

// Board is the 64-cell piece array. It is a plain value: assignment
// copies it, so derived boards never alias their source.
type Board [64]Piece

// InitialBoard is the standard starting placement. Index 0 is A8, so
// Black's pieces fill the first two rows.
var InitialBoard = Board{
	BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook,
	BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn,
	WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook,
}

// MovePiece returns a board with the piece on m.From relocated to
// m.To, overwriting whatever m.To held.
func (b Board) MovePiece(m Move) Board {
	b[m.To] = b[m.From]
	if m.From != m.To {
		b[m.From] = NoPiece
	}
	return b
}

// Place returns a board with p on s.
func (b Board) Place(s Square, p Piece) Board {
	b[s] = p
	return b
}

// Clear returns a board with s emptied.
func (b Board) Clear(s Square) Board {
	b[s] = NoPiece
	return b
}

// Find returns the first square holding p in index order, or NoSquare
// if the board has none.
func (b Board) Find(p Piece) Square {
	for s := Square(0); s < 64; s++ {
		if b[s] == p {
			return s
		}
	}
	return NoSquare
}

// String renders the board as eight rows of figurines from Black's
// back rank down, with dots for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for s := Square(0); s < 64; s++ {
		if s > 0 && s.Col() == 0 {
			sb.WriteByte('\n')
		} else if s.Col() > 0 {
			sb.WriteByte(' ')
		}
		if b[s] == NoPiece {
			sb.WriteRune('·')
		} else {
			sb.WriteRune(rune(b[s]))
		}
	}
	return sb.String()
}
