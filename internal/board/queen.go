package board

// Queen moves any number of cells along a row, column or diagonal.
type Queen struct {
	piece
}

// NewQueen creates a queen.
func NewQueen(team Team) *Queen {
	return &Queen{piece{team: team}}
}

// Kind returns KindQueen.
func (q *Queen) Kind() Kind {
	return KindQueen
}

// Symbol returns the glyph the queen renders as.
func (q *Queen) Symbol() string {
	if q.team == Black {
		return "♕"
	}

	return "♛"
}

func (q *Queen) checkTake(cell, ignore *Cell) error {
	if q.cell == nil {
		return ErrStaleBoard
	}

	if cell == q.cell {
		return nil
	}

	x := q.cell.X - cell.X
	y := q.cell.Y - cell.Y

	if x+y != 0 && x-y != 0 && x != 0 && y != 0 {
		return NewMoveError(ErrQueenMove, q.cell, cell, nil)
	}

	var direction Direction

	switch {
	case x == 0 && y > 0:
		direction = Up
	case x == 0 && y < 0:
		direction = Down
	case y == 0 && x > 0:
		direction = Left
	case y == 0 && x < 0:
		direction = Right
	case x > 0 && y > 0:
		direction = UpLeft
	case x < 0 && y < 0:
		direction = DownRight
	case x < 0 && y > 0:
		direction = UpRight
	default:
		direction = DownLeft
	}

	// The ray may overshoot on diagonals, so stop at the destination.
	for _, c := range q.cell.board.GetCells(q.cell, direction, abs(x)+abs(y))[1:] {
		if c == cell {
			break
		}

		if c.Piece() != nil {
			return NewMoveError(ErrThroughPiece, q.cell, cell, c)
		}
	}

	if cell.Piece() != nil && cell.Piece().Team() == q.team {
		return NewMoveError(ErrTakingOwn, q.cell, cell, cell)
	}

	return nil
}
