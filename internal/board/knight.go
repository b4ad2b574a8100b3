package board

// Knight moves in an L shape and jumps over other pieces.
type Knight struct {
	piece
}

// NewKnight creates a knight.
func NewKnight(team Team) *Knight {
	return &Knight{piece{team: team}}
}

// Kind returns KindKnight.
func (n *Knight) Kind() Kind {
	return KindKnight
}

// Symbol returns the glyph the knight renders as.
func (n *Knight) Symbol() string {
	if n.team == Black {
		return "♘"
	}

	return "♞"
}

func (n *Knight) checkTake(cell, ignore *Cell) error {
	if n.cell == nil {
		return ErrStaleBoard
	}

	if cell == n.cell {
		return nil
	}

	dx := abs(cell.X - n.cell.X)
	dy := abs(cell.Y - n.cell.Y)

	if !((dx == 1 && dy == 2) || (dx == 2 && dy == 1)) {
		return NewMoveError(ErrKnightMove, n.cell, cell, nil)
	}

	if cell.Piece() != nil && cell.Piece().Team() == n.team {
		return NewMoveError(ErrTakingOwn, n.cell, cell, cell)
	}

	return nil
}
