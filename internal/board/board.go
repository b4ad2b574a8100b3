// Package board implements the chess board: cells, pieces and their
// movement rules, plus the move and capture records a game keeps on
// top of them.
package board

// Board is an 8 by 8 grid of cells. Row 0 holds Black's back rank and
// row 7 White's. A board is not safe for concurrent use.
type Board struct {
	// Ilog records moves and events by coordinates, in order.
	Ilog CoordinateLog
	// Elog records the same history in algebraic notation.
	Elog AlgebraicLog
	// MoveIndex counts the completed full moves.
	MoveIndex int
	// Captures lists taken pieces by their own team, in capture order.
	Captures map[Team][]Piece

	cells [8][8]*Cell
	stale bool
}

// New creates a board with both teams placed for a new game.
func New() *Board {
	b := NewEmpty()
	template := [8]Kind{KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook}

	for x, kind := range template {
		b.cells[0][x].SetPiece(NewPiece(kind, Black))
		b.cells[1][x].SetPiece(NewPawn(Black))
		b.cells[6][x].SetPiece(NewPawn(White))
		b.cells[7][x].SetPiece(NewPiece(kind, White))
	}

	return b
}

// NewEmpty creates a board without any pieces.
func NewEmpty() *Board {
	b := &Board{
		Captures: map[Team][]Piece{White: {}, Black: {}},
	}

	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = newCell(x, y, b)
		}
	}

	return b
}

// At returns the cell at column x and row y, or nil when the
// coordinate is off the board.
func (b *Board) At(x, y int) *Cell {
	if x < 0 || x > 7 || y < 0 || y > 7 {
		return nil
	}

	return b.cells[y][x]
}

// Cells returns every cell in row major order.
func (b *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, 64)

	for y := range b.cells {
		cells = append(cells, b.cells[y][:]...)
	}

	return cells
}

// GetCells returns up to limit cells walking from start in the given
// direction, the start cell included. The walk stops at the board
// edge.
func (b *Board) GetCells(start *Cell, direction Direction, limit int) []*Cell {
	cells := make([]*Cell, 0, limit)
	dx, dy := direction.Offset()

	for i := 0; i < limit; i++ {
		c := b.At(start.X+i*dx, start.Y+i*dy)

		if c == nil {
			break
		}

		cells = append(cells, c)
	}

	return cells
}

// MovePiece moves a piece to the given cell after checking the move is
// legal, and returns the performed move so it can be reversed.
func (b *Board) MovePiece(piece Piece, cell *Cell) (*Move, error) {
	return b.movePiece(piece, cell, nil)
}

// CastleRook moves the castling partner rook to the given cell. The
// king already stands on kingCell, which the rook may pass through.
func (b *Board) CastleRook(piece Piece, cell, kingCell *Cell) (*Move, error) {
	return b.movePiece(piece, cell, kingCell)
}

// TryMovePiece reports whether MovePiece would succeed. The board is left
// untouched either way; a successful trial move is undone before returning.
func (b *Board) TryMovePiece(piece Piece, cell *Cell) bool {
	move, err := b.MovePiece(piece, cell)
	if err != nil {
		return false
	}

	b.Undo(move)

	return true
}

// Undo reverses a move returned by MovePiece and drops its capture from
// the capture lists again.
func (b *Board) Undo(move *Move) {
	move.Reverse()

	if move.Captured != nil {
		taken := b.Captures[move.Captured.Team()]
		b.Captures[move.Captured.Team()] = taken[:len(taken)-1]
	}
}

func (b *Board) movePiece(piece Piece, cell, ignore *Cell) (*Move, error) {
	if b.stale {
		return nil, ErrStaleBoard
	}

	if err := piece.checkTake(cell, ignore); err != nil {
		return nil, err
	}

	enPassant := piece.Kind() == KindPawn &&
		piece.Cell() != nil &&
		abs(cell.Y-piece.Cell().Y) == 1 &&
		abs(cell.X-piece.Cell().X) == 1 &&
		cell.Piece() == nil

	taken := cell

	if enPassant {
		if piece.Team() == Black {
			taken = cell.Up(1)
		} else {
			taken = cell.Down(1)
		}
	}

	move := newMove(piece, cell, taken)
	move.Perform()

	if king, err := b.GetKing(piece.Team()); err == nil && !king.IsSafe() {
		move.Reverse()

		reason := ErrToCheck

		if piece == Piece(king) {
			reason = ErrThroughCheck
		}

		return nil, NewMoveError(reason, piece.Cell(), cell, nil)
	}

	if move.Captured != nil && move.Captured.Kind() == KindKing {
		return nil, NewMoveError(ErrTakingKing, piece.Cell(), cell, nil)
	}

	if move.Captured != nil {
		b.Captures[move.Captured.Team()] = append(b.Captures[move.Captured.Team()], move.Captured)
	}

	return move, nil
}

// GetKing returns the king of the given team, or ErrKingNotFound when
// no king is on the board.
func (b *Board) GetKing(team Team) (*King, error) {
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if king, ok := c.piece.(*King); ok && king.Team() == team {
				return king, nil
			}
		}
	}

	return nil, ErrKingNotFound
}

// GetPromotable returns the cell of a pawn standing on its promotion
// row, or nil when no pawn awaits promotion.
func (b *Board) GetPromotable() *Cell {
	for _, team := range []Team{Black, White} {
		for _, c := range b.GetCells(b.At(0, team.Home()), Right, 8) {
			if c.piece != nil && c.piece.Kind() == KindPawn {
				return c
			}
		}
	}

	return nil
}

// Retire marks the board stale and detaches every piece from its
// cell. Pieces kept from a retired board report ErrStaleBoard instead
// of moving.
func (b *Board) Retire() {
	b.stale = true

	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c.piece != nil {
				c.piece.setCell(nil)
			}
		}
	}
}

// PieceRecord describes one piece in a version 1 save file.
type PieceRecord struct {
	Kind     string `json:"kind"`
	Team     bool   `json:"team"`
	HasMoved bool   `json:"has_moved"`
}

// Records returns the board contents for a version 1 save file, with
// nil for empty cells.
func (b *Board) Records() [][]*PieceRecord {
	records := make([][]*PieceRecord, len(b.cells))

	for y := range b.cells {
		records[y] = make([]*PieceRecord, len(b.cells[y]))

		for x, c := range b.cells[y] {
			if c.piece == nil {
				continue
			}

			records[y][x] = &PieceRecord{
				Kind:     c.piece.Kind().String(),
				Team:     c.piece.Team().Bool(),
				HasMoved: c.piece.HasMoved(),
			}
		}
	}

	return records
}

// IsSafeCell reports whether no piece of the opposing team can take
// the cell. A king standing on an unsafe cell is in check.
func (b *Board) IsSafeCell(cell *Cell, team Team) bool {
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c != cell && c.piece != nil && c.piece.Team() != team && CanTake(c.piece, cell) {
				return false
			}
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
