package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalMove is the umbrella reason every rejected move matches.
var ErrIllegalMove = errors.New("illegal move")

// Reasons a move or promotion can be rejected. Each one matches both
// itself and ErrIllegalMove under errors.Is.
var (
	ErrThroughPiece      = errors.New("cannot move through")
	ErrThroughCheck      = errors.New("cannot move through check")
	ErrToCheck           = errors.New("cannot move to check")
	ErrTakingOwn         = errors.New("cannot take own")
	ErrOutOfTurn         = errors.New("cannot move out of turn")
	ErrWhilePromoting    = errors.New("cannot move before promoting")
	ErrMoreThanOneSpace  = errors.New("can only move 1 space")
	ErrMoreThanTwoSpaces = errors.New("can only move 2 spaces")
	ErrDiagonalMove      = errors.New("cannot move diagonally")
	ErrHorizontalMove    = errors.New("cannot move horizontally")
	ErrBackwardMove      = errors.New("cannot move backwards")
	ErrBishopMove        = errors.New("can only move diagonally")
	ErrKnightMove        = errors.New("can only move in L shape")
	ErrQueenMove         = errors.New("can only move straight")
	ErrCastlingKing      = errors.New("cannot castle once moved")
	ErrCastlingRook      = errors.New("cannot castle with moved rook")
	ErrTakingKing        = errors.New("cannot take King")
	ErrCannotPromote     = errors.New("cannot promote")
	ErrPromotionType     = errors.New("cannot be promoted")
)

// Errors reported outside the move path.
var (
	ErrStaleBoard      = errors.New("stale board reference")
	ErrKingNotFound    = errors.New("king not found")
	ErrInvalidLogEntry = errors.New("invalid log entry")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// MoveError is a rejected move or promotion. The message is composed
// from the cells as they were when the error was raised, so it stays
// accurate after the board changes.
type MoveError struct {
	Reason error
	From   *Cell
	To     *Cell
	Via    *Cell
	msg    string
}

// NewMoveError creates a move error for the given reason. From is the
// mover's cell, To the destination and Via the blocking or partner
// cell; each may be nil.
func NewMoveError(reason error, from, to, via *Cell) *MoveError {
	message := ""

	switch reason {
	case ErrIllegalMove:
	case ErrCastlingRook:
		if via != nil && via.Piece() == nil {
			message = "cannot castle without Rook"
		} else {
			message = "cannot castle with moved"
		}
	default:
		message = reason.Error()
	}

	return compose(reason, message, from, to, via)
}

// NewPromotionTypeError creates the error for promoting a pawn to a
// kind it cannot become.
func NewPromotionTypeError(from *Cell, kind Kind) *MoveError {
	return compose(ErrPromotionType, fmt.Sprintf("cannot be promoted to %s", kind), from, nil, nil)
}

func compose(reason error, message string, from, to, via *Cell) *MoveError {
	prefix := ""

	switch {
	case from != nil && from.Piece() != nil && to != nil:
		prefix = fmt.Sprintf("Unable to move %s %s to %s", from.Piece().Kind(), from.Name(), to.Name())
	case from != nil && from.Piece() != nil:
		prefix = fmt.Sprintf("Unable to move %s", from.Piece().Kind())
	case from != nil && to != nil:
		prefix = fmt.Sprintf("No piece to move at %s to %s", from.Name(), to.Name())
	case from != nil:
		prefix = fmt.Sprintf("No piece to move at %s", from.Name())
	}

	suffix := "."

	if via != nil {
		if via.Piece() == nil {
			suffix = fmt.Sprintf(" at %s.", via.Name())
		} else {
			suffix = fmt.Sprintf(" %s %s.", via.Piece().Kind(), via.Name())
		}
	}

	if message != "" && from != nil && from.Piece() != nil {
		message = fmt.Sprintf("%s %s", from.Piece().Kind(), message)
	}

	parts := make([]string, 0, 2)

	for _, part := range []string{prefix, message} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return &MoveError{
		Reason: reason,
		From:   from,
		To:     to,
		Via:    via,
		msg:    strings.Join(parts, "; ") + suffix,
	}
}

// Error returns the composed message.
func (e *MoveError) Error() string {
	return e.msg
}

// Unwrap returns the reason behind the rejection.
func (e *MoveError) Unwrap() error {
	return e.Reason
}

// Is reports whether the error matches target. Every move error
// matches ErrIllegalMove in addition to its own reason.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove || target == e.Reason
}
