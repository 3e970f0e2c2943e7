package engine

import "github.com/hvandenberg/chesscore/chess"

// ApplyOption adjusts how ApplyMove commits a move.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	forced    bool
	promotion chess.Role
}

// Forced skips the legality check. The move is committed exactly as
// given, even one that LegalMoves would reject.
func Forced() ApplyOption {
	return func(c *applyConfig) {
		c.forced = true
	}
}

// WithPromotion selects the role a pawn promotes to on reaching the
// far rank. Without it, promotion produces a queen.
func WithPromotion(r chess.Role) ApplyOption {
	return func(c *applyConfig) {
		c.promotion = r
	}
}

// ApplyMove plays m in pos and returns the resulting position; pos
// itself is never modified. Unless Forced is given, a move the side to
// move may not play is rejected with a *chess.MoveError wrapping
// chess.ErrIllegalMove, and no position is produced.
func ApplyMove(pos chess.Position, m chess.Move, opts ...ApplyOption) (chess.Position, error) {
	cfg := applyConfig{promotion: chess.Queen}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.forced && !IsMoveLegal(m, pos) {
		return chess.Position{}, &chess.MoveError{Move: m, Err: chess.ErrIllegalMove}
	}
	return apply(pos, m, cfg.promotion), nil
}

// apply commits m without any legality check and updates the derived
// state: side to move, castling rights, en-passant target, half-move
// clock and move counter, the rook relocation on castling, the victim
// removal on en passant, and promotion.
func apply(pos chess.Position, m chess.Move, promotion chess.Role) chess.Position {
	if promotion == chess.NoRole {
		promotion = chess.Queen
	}

	piece := pos.Board[m.From]
	team, moved := piece.Team()
	captured := pos.Board[m.To] != chess.NoPiece

	next := pos
	next.Board = pos.Board.MovePiece(m)
	next.Turn = pos.Turn.Opponent()
	next.EnPassant = chess.NoSquare
	next.HalfmoveClock = pos.HalfmoveClock + 1
	if moved && team == chess.Black {
		next.MoveCount = pos.MoveCount + 1
	}

	rights := &next.WhiteCastling
	if team == chess.Black {
		rights = &next.BlackCastling
	}

	switch piece.Role() {
	case chess.King:
		// On a castle the rook follows the king.
		switch m.To - m.From {
		case 2:
			next.Board = next.Board.MovePiece(chess.Move{From: m.From + 3, To: m.From + 1})
		case -2:
			next.Board = next.Board.MovePiece(chess.Move{From: m.From - 4, To: m.From - 1})
		}
		*rights = chess.CastlingRights{}

	case chess.Rook:
		if m.From.Col() == 7 {
			rights.Kingside = false
		} else {
			rights.Queenside = false
		}

	case chess.Pawn:
		next.HalfmoveClock = 0
		forward, lastRow := chess.Square(chess.North), chess.BorderNorth
		if team == chess.Black {
			forward, lastRow = chess.Square(chess.South), chess.BorderSouth
		}
		switch {
		case m.To-m.From == 2*forward:
			next.EnPassant = m.From + forward
		case m.From.Col() != m.To.Col() && !captured:
			// En passant: the victim stands behind the landing square.
			next.Board = next.Board.Clear(m.To - forward)
		}
		if lastRow.Contains(m.To) {
			next.Board = next.Board.Place(m.To, chess.NewPiece(team, promotion))
		}
	}

	if captured {
		next.HalfmoveClock = 0
	}
	return next
}
