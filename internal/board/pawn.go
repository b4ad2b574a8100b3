package board

// Pawn moves one cell forward, two on its first move, and takes one
// cell diagonally forward.
type Pawn struct {
	piece
}

// NewPawn creates a pawn.
func NewPawn(team Team) *Pawn {
	return &Pawn{piece{team: team}}
}

// Kind returns KindPawn.
func (p *Pawn) Kind() Kind {
	return KindPawn
}

// Symbol returns the glyph the pawn renders as.
func (p *Pawn) Symbol() string {
	if p.team == Black {
		return "♙"
	}

	return "♟"
}

// IsEnPassant reports whether the pawn just advanced two cells and can
// be taken in passing. Any later move or promotion clears the window.
func (p *Pawn) IsEnPassant() bool {
	if p.cell == nil {
		return false
	}

	entry, ok := p.cell.board.Ilog.Last()

	if !ok || entry.IsEvent() || entry.To != p.cell.Point() {
		return false
	}

	return entry.From.X == entry.To.X && abs(entry.From.Y-entry.To.Y) == 2
}

func (p *Pawn) checkTake(cell, ignore *Cell) error {
	if p.cell == nil {
		return ErrStaleBoard
	}

	if cell == p.cell {
		return nil
	}

	x := cell.X - p.cell.X
	y := cell.Y - p.cell.Y

	if (p.team == Black && y < 0) || (p.team == White && y > 0) {
		return NewMoveError(ErrBackwardMove, p.cell, cell, nil)
	}

	dx, dy := abs(x), abs(y)

	if dx > 1 || (dx == 1 && dy == 0) {
		return NewMoveError(ErrHorizontalMove, p.cell, cell, nil)
	}

	if dy > 2 || (dx >= 1 && dy > 1) {
		return NewMoveError(ErrMoreThanTwoSpaces, p.cell, cell, nil)
	}

	if dy == 2 {
		if p.hasMoved {
			return NewMoveError(ErrMoreThanOneSpace, p.cell, cell, nil)
		}

		step := p.cell.Up(1)

		if p.team == Black {
			step = p.cell.Down(1)
		}

		if step.Piece() != nil {
			return NewMoveError(ErrThroughPiece, p.cell, cell, step)
		}
	}

	if cell.Piece() == nil {
		if dx == 1 && dy == 1 {
			behind := cell.Up(1)

			if p.team == White {
				behind = cell.Down(1)
			}

			taken, ok := behind.Piece().(*Pawn)

			if !ok || !taken.IsEnPassant() {
				return NewMoveError(ErrDiagonalMove, p.cell, cell, nil)
			}
		}

		return nil
	}

	if dx == 0 {
		return NewMoveError(ErrThroughPiece, p.cell, cell, cell)
	}

	if cell.Piece().Team() == p.team {
		return NewMoveError(ErrTakingOwn, p.cell, cell, cell)
	}

	return nil
}
