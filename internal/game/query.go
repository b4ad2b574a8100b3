package game

import (
	"fmt"

	"github.com/hailam/chesskit/internal/board"
)

// Point resolves a query to a board point. A query may be a cell name
// such as "A1" or "e4", a board.Point, a [2]any pair whose components
// are column and row given as indexes or as their letter and digit, a
// *board.Cell, or a board.Piece that stands on a cell. Anything else
// reports ErrInvalidQuery.
func (g *Game) Point(q any) (board.Point, error) {
	switch v := q.(type) {
	case string:
		if len(v) != 2 {
			return board.Point{}, fmt.Errorf("%w: %q", ErrInvalidQuery, v)
		}

		return checkPoint(board.Point{X: columnIndex(v[0]), Y: rowIndex(v[1])})
	case board.Point:
		return checkPoint(v)
	case [2]any:
		x, err := component(v[0], columnIndex)

		if err != nil {
			return board.Point{}, err
		}

		y, err := component(v[1], rowIndex)

		if err != nil {
			return board.Point{}, err
		}

		return checkPoint(board.Point{X: x, Y: y})
	case *board.Cell:
		if v == nil {
			return board.Point{}, ErrInvalidQuery
		}

		return v.Point(), nil
	case board.Piece:
		if v == nil || v.Cell() == nil {
			return board.Point{}, ErrInvalidQuery
		}

		return v.Cell().Point(), nil
	}

	return board.Point{}, fmt.Errorf("%w: %T", ErrInvalidQuery, q)
}

// columnIndex maps a column letter to its index. Both cases are
// accepted.
func columnIndex(c byte) int {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}

	return int(c) - 'A'
}

// rowIndex maps a rank digit to its row index. Rank 8 is row 0.
func rowIndex(c byte) int {
	return 7 - (int(c) - '1')
}

// component resolves one half of a pair query: an int is used as the
// index directly, a single character is mapped through conv.
func component(v any, conv func(byte) int) (int, error) {
	switch c := v.(type) {
	case int:
		return c, nil
	case byte:
		return conv(c), nil
	case rune:
		return conv(byte(c)), nil
	case string:
		if len(c) == 1 {
			return conv(c[0]), nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrInvalidQuery, v)
}

func checkPoint(p board.Point) (board.Point, error) {
	if p.X < 0 || p.X > 7 || p.Y < 0 || p.Y > 7 {
		return board.Point{}, fmt.Errorf("%w: %d,%d", ErrInvalidQuery, p.X, p.Y)
	}

	return p, nil
}

// Cell resolves a query to the cell it names.
func (g *Game) Cell(q any) (*board.Cell, error) {
	p, err := g.Point(q)

	if err != nil {
		return nil, err
	}

	return g.Board().At(p.X, p.Y), nil
}

// Cells resolves queries to the set of cells they name.
func (g *Game) Cells(qs ...any) (map[*board.Cell]struct{}, error) {
	cells := make(map[*board.Cell]struct{}, len(qs))

	for _, q := range qs {
		c, err := g.Cell(q)

		if err != nil {
			return nil, err
		}

		cells[c] = struct{}{}
	}

	return cells, nil
}

// Moves returns every cell the piece on the queried cell can take,
// its own cell excluded. An empty cell has no moves.
func (g *Game) Moves(q any) (map[*board.Cell]struct{}, error) {
	cell, err := g.Cell(q)

	if err != nil {
		return nil, err
	}

	moves := make(map[*board.Cell]struct{})

	if cell.Piece() == nil {
		return moves, nil
	}

	for _, c := range g.Board().Cells() {
		if c != cell && board.CanTake(cell.Piece(), c) {
			moves[c] = struct{}{}
		}
	}

	return moves, nil
}
