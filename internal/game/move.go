package game

import (
	"fmt"
	"strings"

	"github.com/hailam/chesskit/internal/board"
)

// Move plays a half move between two queried cells, commits it to the
// logs and publishes a "move" event. A castling king brings its rook
// along. The game is left unchanged when an error is reported.
func (g *Game) Move(q1, q2 any) error {
	return g.move(q1, q2, true)
}

// CanMove reports whether the half move is legal, leaving the game
// unchanged.
func (g *Game) CanMove(q1, q2 any) bool {
	return g.move(q1, q2, false) == nil
}

func (g *Game) move(q1, q2 any, commit bool) error {
	cell1, err := g.Cell(q1)

	if err != nil {
		return err
	}

	cell2, err := g.Cell(q2)

	if err != nil {
		return err
	}

	b := g.Board()

	if b.GetPromotable() != nil {
		return board.NewMoveError(board.ErrWhilePromoting, cell1, cell2, nil)
	}

	piece := cell1.Piece()

	if piece == nil {
		return board.NewMoveError(board.ErrIllegalMove, cell1, cell2, nil)
	}

	turn := TurnOf(piece.Team())

	if g.Turn() != turn {
		return board.NewMoveError(board.ErrOutOfTurn, cell1, cell2, nil)
	}

	// Another piece of the same kind able to reach the destination
	// forces a disambiguated algebraic entry.
	var twin *board.Cell

	if commit {
		twin, _ = g.FindPlayableCell(piece.Kind(), piece.Team(), "", cell2, piece)
	}

	x := cell1.X - cell2.X
	mainMove, err := b.MovePiece(piece, cell2)

	if err != nil {
		return err
	}

	rookX := 7

	if x > 0 {
		rookX = 0
	}

	rookCell := b.At(rookX, cell2.Y)
	rookPiece := rookCell.Piece()
	castling := piece.Kind() == board.KindKing && abs(x) == 2 && rookPiece != nil

	var elogMove string

	if castling {
		target := cell2.Right(1)

		if rookCell.X > cell2.X {
			target = cell2.Left(1)
		}

		rookMove, err := b.CastleRook(rookPiece, target, cell2)

		if err != nil {
			b.Undo(mainMove)

			return err
		}

		if x < 0 {
			elogMove = "O-O"
		} else {
			elogMove = "O-O-O"
		}

		if !commit {
			b.Undo(mainMove)
			b.Undo(rookMove)

			return nil
		}

		g.commit(turn, cell1, cell2, g.annotateCheck(piece.Team(), elogMove), mainMove)

		return nil
	}

	if piece.Kind() == board.KindPawn {
		if mainMove.Captured != nil {
			elogMove = strings.ToLower(cell1.Name()[:1]) + "x"
		}

		// TODO: annotate en passant captures.
	} else {
		elogMove = string(piece.Kind().Letter())

		if twin != nil {
			disambiguator := cell1.Name()[:1]

			if twin.X == cell1.X {
				disambiguator = cell1.Name()[1:2]
			}

			elogMove += strings.ToLower(disambiguator)
		}

		if mainMove.Captured != nil {
			elogMove += "x"
		}
	}

	elogMove += strings.ToLower(cell2.Name())

	if !commit {
		b.Undo(mainMove)

		return nil
	}

	g.commit(turn, cell1, cell2, g.annotateCheck(piece.Team(), elogMove), mainMove)

	return nil
}

// annotateCheck appends the check mark when the move leaves the
// opposing king attacked. A board without that king is left as is.
func (g *Game) annotateCheck(team board.Team, elogMove string) string {
	if king, err := g.Board().GetKing(team.Opponent()); err == nil && !king.IsSafe() {
		return elogMove + "+"
	}

	return elogMove
}

func (g *Game) commit(turn Turn, cell1, cell2 *board.Cell, elogMove string, mainMove *board.Move) {
	b := g.Board()
	g.lastTurn = turn

	if turn == TurnWhite {
		b.Elog = append(b.Elog, board.AlgebraicEntry{fmt.Sprintf("%d.", b.MoveIndex+1), elogMove})
	} else {
		if n := len(b.Elog); n > 0 && len(b.Elog[n-1]) == 2 {
			b.Elog[n-1] = append(b.Elog[n-1], elogMove)
		} else {
			b.Elog = append(b.Elog, board.AlgebraicEntry{fmt.Sprintf("%d...", b.MoveIndex+1), elogMove})
		}

		b.MoveIndex++
	}

	b.Ilog = append(b.Ilog, board.NewMoveEntry(cell1.Point(), cell2.Point()))
	g.Notify("move", mainMove)
}

// FindPlayableCell returns the first cell, scanning from A8 toward
// H1, holding a piece of the given kind and team that can legally
// move to dest. A non-empty rof narrows candidates to cells whose
// name contains it, and ignorable excludes one piece from the search.
// ErrNoPlayableCell reports that no piece qualifies.
func (g *Game) FindPlayableCell(kind board.Kind, team board.Team, rof string, dest any, ignorable board.Piece) (*board.Cell, error) {
	destCell, err := g.Cell(dest)

	if err != nil {
		return nil, err
	}

	for _, c := range g.Board().Cells() {
		piece := c.Piece()

		if piece == nil || piece == ignorable || piece.Team() != team || piece.Kind() != kind {
			continue
		}

		if rof != "" && !strings.Contains(c.Name(), rof) {
			continue
		}

		if g.move(piece, destCell, false) == nil {
			return c, nil
		}
	}

	return nil, ErrNoPlayableCell
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
