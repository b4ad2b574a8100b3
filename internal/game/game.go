// Package game orchestrates chess games on top of the board package:
// turn order, move commitment and notation logs, promotion, events,
// save files and PGN replay.
package game

import (
	"errors"
	"time"

	"github.com/hailam/chesskit/internal/board"
)

var (
	// ErrInvalidQuery reports a query that names no cell.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidVersion reports an unknown save file version.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrUnsupportedVersion reports a save file this version cannot read.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrNoPlayableCell reports that no piece can make the wanted move.
	ErrNoPlayableCell = errors.New("no playable cell")
	// ErrInvalidPGNMove reports movetext that cannot be parsed.
	ErrInvalidPGNMove = errors.New("invalid pgn move")
)

// Turn says whose move it is. TurnAuto derives the turn from the game
// history instead of pinning it.
type Turn uint8

const (
	TurnAuto Turn = iota
	TurnWhite
	TurnBlack
)

// TurnOf returns the turn matching a team.
func TurnOf(team board.Team) Turn {
	if team == board.Black {
		return TurnBlack
	}

	return TurnWhite
}

// String returns the turn name.
func (t Turn) String() string {
	switch t {
	case TurnWhite:
		return "White"
	case TurnBlack:
		return "Black"
	default:
		return "Auto"
	}
}

// Game is one chess game. The zero value is not usable; create games
// with New. A game is not safe for concurrent use.
type Game struct {
	created   time.Time
	firstTurn Turn
	nextTurn  Turn
	lastTurn  Turn
	board     *board.Board
	handlers  map[string]map[*EventHandler]struct{}
}

// New creates a game. The board is created lazily on first use.
func New() *Game {
	return &Game{
		created:  time.Now(),
		handlers: make(map[string]map[*EventHandler]struct{}),
	}
}

// Created returns when the game was created.
func (g *Game) Created() time.Time {
	return g.created
}

// Board returns the game board, creating the initial position the
// first time it is needed.
func (g *Game) Board() *board.Board {
	if g.board == nil {
		g.board = board.New()
	}

	return g.board
}

// Turn returns whose move it is: a pinned turn first, then the
// opponent of the last mover, then the pinned first turn, and White
// for a fresh game. A game restored from history derives the first
// turn from the team that made the first logged move.
func (g *Game) Turn() Turn {
	if g.nextTurn != TurnAuto {
		return g.nextTurn
	}

	if g.lastTurn != TurnAuto {
		if g.lastTurn == TurnWhite {
			return TurnBlack
		}

		return TurnWhite
	}

	if g.firstTurn != TurnAuto {
		return g.firstTurn
	}

	if g.board == nil || len(g.board.Ilog) == 0 {
		return TurnWhite
	}

	entry := g.board.Ilog[0]

	if cell := board.New().At(entry.From.X, entry.From.Y); cell != nil && cell.Piece() != nil {
		return TurnOf(cell.Piece().Team())
	}

	return TurnWhite
}

// SetTurn pins whose move it is until set back to TurnAuto.
func (g *Game) SetTurn(turn Turn) {
	g.nextTurn = turn
}

// Reset retires the current board and returns the game to a fresh
// state, dropping the history but keeping the event handlers and the
// created time. Pieces kept from before the reset report a stale
// board.
func (g *Game) Reset() {
	if g.board != nil {
		g.board.Retire()
	}

	g.board = nil
	g.firstTurn = TurnAuto
	g.nextTurn = TurnAuto
	g.lastTurn = TurnAuto
	g.Notify("reset")
}
