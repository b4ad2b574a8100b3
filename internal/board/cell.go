package board

import "fmt"

// Cell is one square of a board. Cells and their pieces hold links to
// each other, and SetPiece keeps both sides consistent.
type Cell struct {
	X int
	Y int

	piece Piece
	board *Board
}

func newCell(x, y int, board *Board) *Cell {
	return &Cell{X: x, Y: y, board: board}
}

// Name returns the cell coordinate in algebraic form, A1 to H8.
func (c *Cell) Name() string {
	return fmt.Sprintf("%c%d", 'A'+c.X, 8-c.Y)
}

// Point returns the cell coordinate as a point.
func (c *Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Piece returns the piece standing on the cell, or nil.
func (c *Cell) Piece() Piece {
	return c.piece
}

// SetPiece places a piece on the cell, detaching it from its previous
// cell and detaching any piece the cell already held. A nil piece
// clears the cell.
func (c *Cell) SetPiece(piece Piece) {
	if c.piece == piece {
		return
	}

	if c.piece != nil {
		c.piece.setCell(nil)
	}

	if piece != nil {
		if prev := piece.Cell(); prev != nil {
			prev.SetPiece(nil)
		}

		piece.setCell(c)
	}

	c.piece = piece
}

// Board returns the board the cell belongs to, or ErrStaleBoard once
// the board is retired.
func (c *Cell) Board() (*Board, error) {
	if c.board.stale {
		return nil, ErrStaleBoard
	}

	return c.board, nil
}

// IsSafe reports whether no piece of the opposing team can take this
// cell.
func (c *Cell) IsSafe(team Team) bool {
	return c.board.IsSafeCell(c, team)
}

// Up returns the cell distance rows toward row 8, or nil at the edge.
func (c *Cell) Up(distance int) *Cell {
	return c.board.At(c.X, c.Y-distance)
}

// Down returns the cell distance rows toward row 1, or nil at the edge.
func (c *Cell) Down(distance int) *Cell {
	return c.board.At(c.X, c.Y+distance)
}

// Left returns the cell distance columns toward column A, or nil at
// the edge.
func (c *Cell) Left(distance int) *Cell {
	return c.board.At(c.X-distance, c.Y)
}

// Right returns the cell distance columns toward column H, or nil at
// the edge.
func (c *Cell) Right(distance int) *Cell {
	return c.board.At(c.X+distance, c.Y)
}
