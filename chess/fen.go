package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN letters for the twelve piece identities.
var fenLetters = map[Piece]byte{
	WhiteKing: 'K', WhiteQueen: 'Q', WhiteRook: 'R',
	WhiteBishop: 'B', WhiteKnight: 'N', WhitePawn: 'P',
	BlackKing: 'k', BlackQueen: 'q', BlackRook: 'r',
	BlackBishop: 'b', BlackKnight: 'n', BlackPawn: 'p',
}

var fenPieces = map[byte]Piece{
	'K': WhiteKing, 'Q': WhiteQueen, 'R': WhiteRook,
	'B': WhiteBishop, 'N': WhiteKnight, 'P': WhitePawn,
	'k': BlackKing, 'q': BlackQueen, 'r': BlackRook,
	'b': BlackBishop, 'n': BlackKnight, 'p': BlackPawn,
}

// ParseFEN builds a position from a FEN string. The half-move clock
// and fullmove number fields are optional and default to 0 and 1. The
// position's move counter is the fullmove number minus one, since it
// counts completed move pairs from zero.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return Position{}, fmt.Errorf("need at least 4 fields, have %d: %w", len(parts), ErrInvalidFEN)
	}

	pos := Position{EnPassant: NoSquare}

	if err := parseFENBoard(&pos.Board, parts[0]); err != nil {
		return Position{}, err
	}

	switch parts[1] {
	case "w":
		pos.Turn = White
	case "b":
		pos.Turn = Black
	default:
		return Position{}, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidFEN)
	}

	if err := parseFENCastling(&pos, parts[2]); err != nil {
		return Position{}, err
	}

	if parts[3] != "-" {
		target, err := ParseSquare(parts[3])
		if err != nil {
			return Position{}, fmt.Errorf("en passant target %q: %w", parts[3], ErrInvalidFEN)
		}
		pos.EnPassant = target
	}

	if len(parts) >= 5 {
		clock, err := strconv.Atoi(parts[4])
		if err != nil || clock < 0 {
			return Position{}, fmt.Errorf("half-move clock %q: %w", parts[4], ErrInvalidFEN)
		}
		pos.HalfmoveClock = clock
	}
	if len(parts) >= 6 {
		fullmove, err := strconv.Atoi(parts[5])
		if err != nil || fullmove < 1 {
			return Position{}, fmt.Errorf("fullmove number %q: %w", parts[5], ErrInvalidFEN)
		}
		pos.MoveCount = fullmove - 1
	}

	return pos, nil
}

// parseFENBoard fills board from the piece placement field.
func parseFENBoard(board *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("placement has %d ranks: %w", len(ranks), ErrInvalidFEN)
	}
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece, ok := fenPieces[c]
				if !ok {
					return fmt.Errorf("piece character %q: %w", c, ErrInvalidFEN)
				}
				if col > 7 {
					return fmt.Errorf("rank %d overflows: %w", 8-row, ErrInvalidFEN)
				}
				board[row*8+col] = piece
				col++
			}
		}
		if col != 8 {
			return fmt.Errorf("rank %d has %d files: %w", 8-row, col, ErrInvalidFEN)
		}
	}
	return nil
}

// parseFENCastling fills the castling rights from the availability field.
func parseFENCastling(pos *Position, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.WhiteCastling.Kingside = true
		case 'Q':
			pos.WhiteCastling.Queenside = true
		case 'k':
			pos.BlackCastling.Kingside = true
		case 'q':
			pos.BlackCastling.Queenside = true
		default:
			return fmt.Errorf("castling availability %q: %w", field, ErrInvalidFEN)
		}
	}
	return nil
}

// FEN returns the position in Forsyth-Edwards Notation.
func (p Position) FEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := p.Board[row*8+col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenLetters[piece])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingField(p))

	sb.WriteByte(' ')
	if p.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(strings.ToLower(p.EnPassant.String()))
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.MoveCount+1)
	return sb.String()
}

// castlingField renders the rights of both teams as a FEN availability
// field, "-" when no right remains.
func castlingField(p Position) string {
	var sb strings.Builder
	if p.WhiteCastling.Kingside {
		sb.WriteByte('K')
	}
	if p.WhiteCastling.Queenside {
		sb.WriteByte('Q')
	}
	if p.BlackCastling.Kingside {
		sb.WriteByte('k')
	}
	if p.BlackCastling.Queenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
