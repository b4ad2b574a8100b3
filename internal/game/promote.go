package game

import (
	"fmt"
	"strings"

	"github.com/hailam/chesskit/internal/board"
)

// Promote replaces the pawn waiting on its promotion row with a fresh
// piece of the given kind, amends the algebraic log, records a
// promotion event entry and publishes "promote". Kings and pawns are
// not valid promotion targets.
func (g *Game) Promote(kind board.Kind) error {
	b := g.Board()
	cell := b.GetPromotable()

	if cell == nil {
		return board.NewMoveError(board.ErrCannotPromote, nil, nil, nil)
	}

	piece := cell.Piece()

	if piece == nil || piece.Kind() != board.KindPawn || kind == board.KindPawn || kind == board.KindKing {
		return board.NewPromotionTypeError(cell, kind)
	}

	team := piece.Team()
	promoted := board.NewPiece(kind, team)
	promoted.SetHasMoved(true)
	cell.SetPiece(promoted)

	letter := string(kind.Letter())

	if n := len(b.Elog); n > 0 {
		entry := b.Elog[n-1]
		last := len(entry) - 1
		annotated := entry[last] + "=" + letter

		if checked := strings.TrimSuffix(entry[last], "+"); checked != entry[last] {
			annotated = checked + "=" + letter + "+"
		} else if king, err := b.GetKing(team.Opponent()); err == nil && !king.IsSafe() {
			annotated += "+"
		}

		entry[last] = annotated
	}

	b.Ilog = append(b.Ilog, board.NewEventEntry(cell.Point(), letter))
	g.Notify("promote")

	return nil
}

// AddComment attaches a free text comment to the latest algebraic log
// entry, merging with an existing trailing comment. Blank comments
// are discarded.
func (g *Game) AddComment(comment string) {
	comment = strings.TrimSpace(comment)

	if comment == "" {
		return
	}

	b := g.Board()

	if n := len(b.Elog); n > 0 {
		entry := b.Elog[n-1]
		last := entry[len(entry)-1]

		if strings.HasPrefix(last, "{") && strings.HasSuffix(last, "}") {
			merged := strings.TrimSuffix(strings.TrimPrefix(last, "{"), "}") + " " + comment
			entry[len(entry)-1] = "{" + merged + "}"

			return
		}

		if len(entry) == 2 {
			b.Elog[n-1] = append(entry, "{"+comment+"}")

			return
		}
	}

	b.Elog = append(b.Elog, board.AlgebraicEntry{fmt.Sprintf("%d.", b.MoveIndex+1), "{" + comment + "}"})
}
