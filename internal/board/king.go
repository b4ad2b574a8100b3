package board

// King moves one cell in any direction, or two cells toward a rook
// when castling.
type King struct {
	piece
}

// NewKing creates a king.
func NewKing(team Team) *King {
	return &King{piece{team: team}}
}

// Kind returns KindKing.
func (k *King) Kind() Kind {
	return KindKing
}

// Symbol returns the glyph the king renders as.
func (k *King) Symbol() string {
	if k.team == Black {
		return "♔"
	}

	return "♚"
}

func (k *King) checkTake(cell, ignore *Cell) error {
	if k.cell == nil {
		return ErrStaleBoard
	}

	if cell == k.cell {
		return nil
	}

	x := k.cell.X - cell.X
	dx := abs(x)
	dy := abs(cell.Y - k.cell.Y)

	if dx > 2 || dy > 1 || (dx == 2 && dy != 0) {
		return NewMoveError(ErrMoreThanOneSpace, k.cell, cell, nil)
	}

	if cell.Piece() != nil && cell.Piece().Team() == k.team {
		return NewMoveError(ErrTakingOwn, k.cell, cell, cell)
	}

	// A two column move castles. The king and its rook must both be
	// unmoved, the cells between them clear, and the king may not pass
	// through an attacked cell.
	if dx == 2 {
		if k.hasMoved {
			return NewMoveError(ErrCastlingKing, k.cell, cell, nil)
		}

		rookX := 7

		if x > 0 {
			rookX = 0
		}

		rookCell := k.cell.board.At(rookX, cell.Y)

		if rookCell.Piece() == nil || rookCell.Piece().HasMoved() {
			return NewMoveError(ErrCastlingRook, k.cell, cell, rookCell)
		}

		lo, hi := k.cell.X, cell.X

		if lo > hi {
			lo, hi = hi, lo
		}

		for wx := lo; wx < hi; wx++ {
			c := k.cell.board.At(wx, cell.Y)

			if c == k.cell {
				continue
			}

			if c.Piece() != nil {
				return NewMoveError(ErrThroughPiece, k.cell, cell, c)
			}

			if !c.IsSafe(k.team) {
				return NewMoveError(ErrThroughCheck, k.cell, cell, nil)
			}
		}

		target := cell.Right(1)

		if x < 0 {
			target = cell.Left(1)
		}

		return rookCell.Piece().checkTake(target, nil)
	}

	return nil
}
