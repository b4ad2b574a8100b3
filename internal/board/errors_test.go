package board

import (
	"errors"
	"testing"
)

func TestMoveErrorMessages(t *testing.T) {
	b := NewEmpty()
	at(t, b, "B2").SetPiece(NewPawn(White))

	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			"empty from cell",
			NewMoveError(ErrIllegalMove, at(t, b, "A3"), at(t, b, "A4"), nil),
			"No piece to move at A3 to A4.",
		},
		{
			"empty from cell without destination",
			NewMoveError(ErrIllegalMove, at(t, b, "A3"), nil, nil),
			"No piece to move at A3.",
		},
		{
			"no cells at all",
			NewMoveError(ErrCannotPromote, nil, nil, nil),
			"cannot promote.",
		},
		{
			"piece without destination",
			NewPromotionTypeError(at(t, b, "B2"), KindKing),
			"Unable to move Pawn; Pawn cannot be promoted to King.",
		},
		{
			"out of turn",
			NewMoveError(ErrOutOfTurn, at(t, b, "B2"), at(t, b, "B4"), nil),
			"Unable to move Pawn B2 to B4; Pawn cannot move out of turn.",
		},
		{
			"while promoting",
			NewMoveError(ErrWhilePromoting, at(t, b, "B2"), at(t, b, "B4"), nil),
			"Unable to move Pawn B2 to B4; Pawn cannot move before promoting.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveErrorIs(t *testing.T) {
	b := NewEmpty()
	at(t, b, "B2").SetPiece(NewPawn(White))

	err := NewMoveError(ErrOutOfTurn, at(t, b, "B2"), at(t, b, "B4"), nil)

	if !errors.Is(err, ErrOutOfTurn) {
		t.Error("error does not match its own reason")
	}

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("error does not match ErrIllegalMove")
	}

	if errors.Is(err, ErrToCheck) {
		t.Error("error matches an unrelated reason")
	}

	if got := errors.Unwrap(err); got != ErrOutOfTurn {
		t.Errorf("Unwrap() = %v, want ErrOutOfTurn", got)
	}

	var moveErr *MoveError

	if !errors.As(err, &moveErr) {
		t.Fatal("errors.As failed to extract the move error")
	}

	if moveErr.From.Name() != "B2" || moveErr.To.Name() != "B4" {
		t.Errorf("cells = %s to %s, want B2 to B4", moveErr.From.Name(), moveErr.To.Name())
	}
}
