package board

// Bishop moves any number of cells diagonally.
type Bishop struct {
	piece
}

// NewBishop creates a bishop.
func NewBishop(team Team) *Bishop {
	return &Bishop{piece{team: team}}
}

// Kind returns KindBishop.
func (b *Bishop) Kind() Kind {
	return KindBishop
}

// Symbol returns the glyph the bishop renders as.
func (b *Bishop) Symbol() string {
	if b.team == Black {
		return "♗"
	}

	return "♝"
}

func (b *Bishop) checkTake(cell, ignore *Cell) error {
	if b.cell == nil {
		return ErrStaleBoard
	}

	if cell == b.cell {
		return nil
	}

	x := b.cell.X - cell.X
	y := b.cell.Y - cell.Y

	if x+y != 0 && x-y != 0 {
		return NewMoveError(ErrBishopMove, b.cell, cell, nil)
	}

	var direction Direction

	switch {
	case x > 0 && y > 0:
		direction = UpLeft
	case x < 0 && y < 0:
		direction = DownRight
	case x < 0 && y > 0:
		direction = UpRight
	default:
		direction = DownLeft
	}

	for _, c := range b.cell.board.GetCells(b.cell, direction, (abs(x)+abs(y))/2)[1:] {
		if c.Piece() != nil {
			return NewMoveError(ErrThroughPiece, b.cell, cell, c)
		}
	}

	if cell.Piece() != nil && cell.Piece().Team() == b.team {
		return NewMoveError(ErrTakingOwn, b.cell, cell, cell)
	}

	return nil
}
