package board

// Rook moves any number of cells along a row or column.
type Rook struct {
	piece
}

// NewRook creates a rook.
func NewRook(team Team) *Rook {
	return &Rook{piece{team: team}}
}

// Kind returns KindRook.
func (r *Rook) Kind() Kind {
	return KindRook
}

// Symbol returns the glyph the rook renders as.
func (r *Rook) Symbol() string {
	if r.team == Black {
		return "♖"
	}

	return "♜"
}

func (r *Rook) checkTake(cell, ignore *Cell) error {
	if r.cell == nil {
		return ErrStaleBoard
	}

	if cell == r.cell {
		return nil
	}

	if cell.X != r.cell.X && cell.Y != r.cell.Y {
		return NewMoveError(ErrDiagonalMove, r.cell, cell, nil)
	}

	x := r.cell.X - cell.X
	y := r.cell.Y - cell.Y

	var direction Direction

	switch {
	case y > 0:
		direction = Up
	case y < 0:
		direction = Down
	case x > 0:
		direction = Left
	default:
		direction = Right
	}

	for _, c := range r.cell.board.GetCells(r.cell, direction, max(abs(x), abs(y)))[1:] {
		if c.Piece() != nil && c != ignore {
			return NewMoveError(ErrThroughPiece, r.cell, cell, c)
		}
	}

	if cell.Piece() != nil && cell.Piece().Team() == r.team {
		return NewMoveError(ErrTakingOwn, r.cell, cell, cell)
	}

	return nil
}
