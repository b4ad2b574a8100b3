package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chesskit/internal/board"
)

func TestPromoteWithoutPromotable(t *testing.T) {
	g := New()

	err := g.Promote(board.KindQueen)

	if !errors.Is(err, board.ErrCannotPromote) {
		t.Fatalf("Promote = %v, want %v", err, board.ErrCannotPromote)
	}

	if !errors.Is(err, board.ErrIllegalMove) {
		t.Error("promotion error does not match ErrIllegalMove")
	}

	if got, want := err.Error(), "cannot promote."; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestPromoteByPoints(t *testing.T) {
	g := New()

	moves := [][2]board.Point{
		{{X: 0, Y: 6}, {X: 0, Y: 4}},
		{{X: 1, Y: 1}, {X: 1, Y: 3}},
		{{X: 0, Y: 4}, {X: 0, Y: 3}},
		{{X: 1, Y: 3}, {X: 1, Y: 4}},
		{{X: 0, Y: 3}, {X: 0, Y: 2}},
		{{X: 1, Y: 4}, {X: 1, Y: 5}},
		{{X: 3, Y: 6}, {X: 3, Y: 4}},
		{{X: 1, Y: 5}, {X: 2, Y: 6}},
		{{X: 3, Y: 4}, {X: 3, Y: 3}},
	}

	for _, m := range moves {
		if err := g.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%v, %v) failed: %v", m[0], m[1], err)
		}
	}

	// Nothing on a promotion row yet.
	if err := g.Promote(board.KindQueen); !errors.Is(err, board.ErrCannotPromote) {
		t.Fatalf("early Promote = %v, want %v", err, board.ErrCannotPromote)
	}

	// The black pawn takes the queen on D1 and waits for promotion.
	if err := g.Move(board.Point{X: 2, Y: 6}, board.Point{X: 3, Y: 7}); err != nil {
		t.Fatal("Error taking on D1:", err)
	}

	if err := g.Move("D5", "D6"); !errors.Is(err, board.ErrWhilePromoting) {
		t.Fatalf("Move while promoting = %v, want %v", err, board.ErrWhilePromoting)
	}

	err := g.Promote(board.KindPawn)

	if !errors.Is(err, board.ErrPromotionType) {
		t.Fatalf("Promote(Pawn) = %v, want %v", err, board.ErrPromotionType)
	}

	if got, want := err.Error(), "Unable to move Pawn; Pawn cannot be promoted to Pawn."; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}

	err = g.Promote(board.KindKing)

	if !errors.Is(err, board.ErrPromotionType) {
		t.Fatalf("Promote(King) = %v, want %v", err, board.ErrPromotionType)
	}

	if got, want := err.Error(), "Unable to move Pawn; Pawn cannot be promoted to King."; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}

	if err := g.Promote(board.KindQueen); err != nil {
		t.Fatal("Error promoting:", err)
	}

	wantPiece(t, g, "D1", board.KindQueen, board.Black)

	want := board.AlgebraicLog{
		{"1.", "a4", "b5"},
		{"2.", "a5", "b4"},
		{"3.", "a6", "b3"},
		{"4.", "d4", "bxc2"},
		{"5.", "d5", "cxd1=Q+"},
	}

	if diff := cmp.Diff(want, g.Board().Elog); diff != "" {
		t.Errorf("Elog mismatch (-want +got):\n%s", diff)
	}

	ilog := g.Board().Ilog
	last := ilog[len(ilog)-1]

	if !last.IsEvent() || last.Event != "Q" || last.From != (board.Point{X: 3, Y: 7}) {
		t.Errorf("last log entry = %+v, want promotion event at D1", last)
	}
}

func TestPromoteCheckAnnotation(t *testing.T) {
	g := New()

	playMoves(t, g, [][2]string{
		{"B2", "B3"}, {"B7", "B6"},
		{"C1", "A3"}, {"C8", "A6"},
		{"F2", "F3"}, {"B6", "B5"},
		{"F3", "F4"}, {"B5", "B4"},
		{"C2", "C4"}, {"B4", "C3"},
		{"D2", "D4"}, {"C3", "C2"},
		{"D1", "D2"}, {"C2", "C1"},
	})

	if err := g.Promote(board.KindQueen); err != nil {
		t.Fatal("Error promoting:", err)
	}

	// The fresh queen on C1 checks the king along the first rank.
	want := board.AlgebraicLog{
		{"1.", "b3", "b6"},
		{"2.", "Ba3", "Ba6"},
		{"3.", "f3", "b5"},
		{"4.", "f4", "b4"},
		{"5.", "c4", "bxc3"},
		{"6.", "d4", "c2"},
		{"7.", "Qd2", "c1=Q+"},
	}

	if diff := cmp.Diff(want, g.Board().Elog); diff != "" {
		t.Errorf("Elog mismatch (-want +got):\n%s", diff)
	}

	king, err := g.Board().GetKing(board.White)

	if err != nil {
		t.Fatal("Error getting king:", err)
	}

	if king.IsSafe() {
		t.Error("white king is safe, want check from the promoted queen")
	}
}

func TestPromoteCaptureAnnotation(t *testing.T) {
	s := `
 ──┬───┬───┬───┬───┬───┬───┬───┬───┐
 8 │   │   │   │ ♘ │ ♜ │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 7 │   │   │   │   │ ♟ │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 6 │   │   │   │   │   │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 5 │   │   │   │   │   │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 4 │   │   │   │   │ ♔ │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 3 │   │   │   │   │   │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 2 │   │   │   │   │   │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
 1 │ ♚ │   │   │   │   │   │   │   │
 ──┼───┼───┼───┼───┼───┼───┼───┼───┤
   │ A │ B │ C │ D │ E │ F │ G │ H │
`
	g := New()

	if err := g.LoadSnapshot(s); err != nil {
		t.Fatal("Error loading snapshot:", err)
	}

	// Taking toward D8 opens the rook's file for a discovered check.
	mustMove(t, g, "E7", "D8")

	elog := g.Board().Elog

	if got, want := elog[len(elog)-1][1], "exd8+"; got != want {
		t.Errorf("notation = %q, want %q", got, want)
	}

	if err := g.Promote(board.KindQueen); err != nil {
		t.Fatal("Error promoting:", err)
	}

	if got, want := elog[len(elog)-1][1], "exd8=Q+"; got != want {
		t.Errorf("notation after promoting = %q, want %q", got, want)
	}

	wantPiece(t, g, "D8", board.KindQueen, board.White)
}

func TestPromoteFullGame(t *testing.T) {
	g := New()
	promote := func() {
		t.Helper()

		if err := g.Promote(board.KindQueen); err != nil {
			t.Fatal("Error promoting:", err)
		}
	}

	playMoves(t, g, [][2]string{
		{"A2", "A4"}, {"B7", "B5"},
		{"A4", "B5"}, {"B8", "A6"},
		{"B5", "B6"}, {"A6", "C5"},
		{"B6", "B7"}, {"C5", "B3"},
		{"B7", "B8"},
	})
	promote()

	playMoves(t, g, [][2]string{
		{"A8", "B8"}, {"C2", "C4"},
		{"B8", "B4"}, {"C4", "C5"},
		{"B4", "B5"}, {"C5", "C6"},
		{"B5", "B6"}, {"C6", "D7"},
		{"D8", "D7"}, {"D2", "D4"},
		{"A7", "A5"}, {"A1", "A4"},
		{"D7", "A4"}, {"D4", "D5"},
		{"A4", "D4"}, {"D5", "D6"},
		{"D4", "D1"}, {"E1", "D1"},
		{"A5", "A4"}, {"E2", "E4"},
		{"G7", "G5"}, {"E4", "E5"},
		{"F8", "H6"}, {"E5", "E6"},
		{"G8", "F6"}, {"D6", "D7"},
		{"E8", "G8"}, {"D7", "D8"},
	})
	promote()

	playMoves(t, g, [][2]string{
		{"G8", "G7"}, {"E6", "F7"},
		{"G7", "G6"}, {"F1", "A6"},
		{"F8", "H8"}, {"F7", "F8"},
	})
	promote()

	mustMove(t, g, "A4", "A3")

	want := board.AlgebraicLog{
		{"1.", "a4", "b5"},
		{"2.", "axb5", "Na6"},
		{"3.", "b6", "Nc5"},
		{"4.", "b7", "Nb3"},
		{"5.", "b8=Q", "Rxb8"},
		{"6.", "c4", "Rb4"},
		{"7.", "c5", "Rb5"},
		{"8.", "c6", "Rb6"},
		{"9.", "cxd7+", "Qxd7"},
		{"10.", "d4", "a5"},
		{"11.", "Ra4", "Qxa4"},
		{"12.", "d5", "Qd4"},
		{"13.", "d6", "Qxd1+"},
		{"14.", "Kxd1", "a4"},
		{"15.", "e4", "g5"},
		{"16.", "e5", "Bh6"},
		{"17.", "e6", "Nf6"},
		{"18.", "d7+", "O-O"},
		{"19.", "d8=Q", "Kg7"},
		{"20.", "exf7", "Kg6"},
		{"21.", "Ba6", "Rh8"},
		{"22.", "f8=Q", "a3"},
	}

	if diff := cmp.Diff(want, g.Board().Elog); diff != "" {
		t.Errorf("Elog mismatch (-want +got):\n%s", diff)
	}

	var events []board.CoordinateEntry

	for _, entry := range g.Board().Ilog {
		if entry.IsEvent() {
			events = append(events, entry)
		}
	}

	wantEvents := []board.CoordinateEntry{
		board.NewEventEntry(board.Point{X: 1, Y: 0}, "Q"),
		board.NewEventEntry(board.Point{X: 3, Y: 0}, "Q"),
		board.NewEventEntry(board.Point{X: 5, Y: 0}, "Q"),
	}

	if diff := cmp.Diff(wantEvents, events); diff != "" {
		t.Errorf("promotion events mismatch (-want +got):\n%s", diff)
	}

	wantPiece(t, g, "D8", board.KindQueen, board.White)
	wantPiece(t, g, "F8", board.KindQueen, board.White)
	wantPiece(t, g, "A3", board.KindPawn, board.Black)
}

func TestAddComment(t *testing.T) {
	g := New()

	g.AddComment(" ")

	if got := len(g.Board().Elog); got != 0 {
		t.Fatalf("len(Elog) after blank comment = %d, want 0", got)
	}

	g.AddComment("This is a comment.")

	want := board.AlgebraicEntry{"1.", "{This is a comment.}"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	playMoves(t, g, [][2]string{
		{"E2", "E4"}, {"E7", "E5"},
		{"G1", "F3"}, {"B8", "C6"},
		{"F1", "C4"}, {"G8", "F6"},
		{"A2", "A4"},
	})
	g.AddComment("This is a comment.")

	want = board.AlgebraicEntry{"4.", "a4", "{This is a comment.}"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	// The commented entry is full, so Black opens a new one.
	mustMove(t, g, "B7", "B5")

	want = board.AlgebraicEntry{"4...", "b5"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	g.AddComment("This is a comment.")

	want = board.AlgebraicEntry{"4...", "b5", "{This is a comment.}"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	g.AddComment("This is a comment.")

	want = board.AlgebraicEntry{"4...", "b5", "{This is a comment. This is a comment.}"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	mustMove(t, g, "A4", "A5")
	g.AddComment("This is a comment.")

	want = board.AlgebraicEntry{"5.", "a5", "{This is a comment.}"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}

	g.AddComment("This is a comment.")

	want = board.AlgebraicEntry{"5.", "a5", "{This is a comment. This is a comment.}"}

	if diff := cmp.Diff(want, lastEntry(g)); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func lastEntry(g *Game) board.AlgebraicEntry {
	elog := g.Board().Elog

	if len(elog) == 0 {
		return nil
	}

	return elog[len(elog)-1]
}
