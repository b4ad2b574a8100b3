package board

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders the board as a box drawing with rank and column
// labels, the way snapshots are written and parsed back.
func (b *Board) String() string {
	dashes := make([]string, 8)
	files := make([]string, 8)

	for i := range dashes {
		dashes[i] = "─"
		files[i] = string(rune('A' + i))
	}

	var sb strings.Builder

	sb.WriteString("\n ──┬─")
	sb.WriteString(strings.Join(dashes, "─┬─"))
	sb.WriteString("─┐\n")

	for y, row := range b.cells {
		glyphs := make([]string, 8)

		for x, c := range row {
			if c.piece == nil {
				glyphs[x] = " "
			} else {
				glyphs[x] = c.piece.Symbol()
			}
		}

		sb.WriteString(fmt.Sprintf(" %d │ ", 8-y))
		sb.WriteString(strings.Join(glyphs, " │ "))
		sb.WriteString(" │\n ")
		sb.WriteString(strings.Join(dashes, "─┼─"))
		sb.WriteString("─┼───┤")

		if y < 7 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n   │ ")
	sb.WriteString(strings.Join(files, " │ "))
	sb.WriteString(" │ ")

	return sb.String()
}

type glyph struct {
	kind Kind
	team Team
}

// ParseSnapshot rebuilds a board from the drawing String produces.
// Every parsed piece is marked as moved. Unknown glyphs and extra
// rows report ErrInvalidSnapshot.
func ParseSnapshot(s string) (*Board, error) {
	glyphs := make(map[string]glyph)

	for _, team := range []Team{Black, White} {
		for _, kind := range []Kind{KindPawn, KindRook, KindKnight, KindBishop, KindQueen, KindKing} {
			glyphs[NewPiece(kind, team).Symbol()] = glyph{kind: kind, team: team}
		}
	}

	b := NewEmpty()
	lines := strings.Split(strings.TrimSpace(s), "\n")

	if len(lines) < 2 {
		return b, nil
	}

	y := -1

	for _, line := range lines[1 : len(lines)-1] {
		parts := strings.Split(strings.TrimSuffix(strings.TrimSpace(line), " │"), " │ ")

		if len(parts) != 9 {
			continue
		}

		y++

		if y > 7 {
			return nil, ErrInvalidSnapshot
		}

		for x, v := range parts[1:] {
			ch := strings.TrimSpace(v)

			if utf8.RuneCountInString(ch) != 1 {
				continue
			}

			g, ok := glyphs[ch]

			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q", ErrInvalidSnapshot, ch)
			}

			piece := NewPiece(g.kind, g.team)
			piece.SetHasMoved(true)
			b.cells[y][x].SetPiece(piece)
		}
	}

	return b, nil
}
