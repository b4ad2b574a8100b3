package game

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/mod/semver"

	"github.com/hailam/chesskit/internal/board"
)

// Version is the engine version stamped into every saved record.
const Version = "1.0.0"

// Record is the JSON save file shape. Version 1 files carry the full
// piece grid, version 2 files carry the coordinate log instead.
type Record struct {
	FileVersion string                 `json:"fileVersion"`
	GameVersion string                 `json:"gameVersion"`
	Created     time.Time              `json:"created"`
	Preview     string                 `json:"preview"`
	Board       [][]*board.PieceRecord `json:"board,omitempty"`
	Log         board.CoordinateLog    `json:"log,omitempty"`
}

// Record builds the serializable snapshot of the game for the given
// file version. A game without a board has nothing to record and
// returns nil without error.
func (g *Game) Record(version int) (*Record, error) {
	if g.board == nil {
		return nil, nil
	}

	record := &Record{
		FileVersion: fmt.Sprintf("%d.0.0", version),
		GameVersion: Version,
		Created:     g.created,
		Preview:     "\n" + g.board.String(),
	}

	switch version {
	case 1:
		record.Board = g.board.Records()
	case 2:
		record.Log = g.board.Ilog
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	return record, nil
}

// Save writes the game to filename in the given file version and
// publishes a "save" event. It reports false without error when
// there is no board to save.
func (g *Game) Save(filename string, version int) (bool, error) {
	record, err := g.Record(version)

	if err != nil {
		return false, err
	}

	if record == nil {
		return false, nil
	}

	data, err := json.Marshal(record)

	if err != nil {
		return false, err
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return false, err
	}

	g.Notify("save")

	return true, nil
}

// ParseRecord rebuilds a game from saved record data. Version 1
// records restore the piece grid directly, version 2 records replay
// the coordinate log move by move, restoring the first turn from the
// first replayed piece.
func ParseRecord(data []byte) (*Game, error) {
	var record Record

	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	version := "v" + record.FileVersion

	if !semver.IsValid(version) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, record.FileVersion)
	}

	g := New()
	g.created = record.Created

	switch semver.Major(version) {
	case "v1":
		b := board.NewEmpty()

		for y, cells := range record.Board {
			for x, r := range cells {
				if r == nil {
					continue
				}

				kind, ok := board.KindFromName(r.Kind)

				if !ok {
					return nil, fmt.Errorf("unknown piece kind %q", r.Kind)
				}

				cell := b.At(x, y)

				if cell == nil {
					continue
				}

				piece := board.NewPiece(kind, board.TeamFromBool(r.Team))
				piece.SetHasMoved(r.HasMoved)
				cell.SetPiece(piece)
			}
		}

		g.board = b
	case "v2":
		if len(record.Log) == 0 {
			break
		}

		cell, err := g.Cell(record.Log[0].From)

		if err != nil {
			return nil, err
		}

		if cell.Piece() == nil {
			return nil, board.ErrInvalidLogEntry
		}

		g.firstTurn = TurnOf(cell.Piece().Team())

		for _, entry := range record.Log {
			if entry.IsEvent() {
				if len(entry.Event) != 1 {
					return nil, board.ErrInvalidLogEntry
				}

				kind, ok := board.KindFromLetter(entry.Event[0])

				if !ok {
					return nil, board.ErrInvalidLogEntry
				}

				if err := g.Promote(kind); err != nil {
					return nil, err
				}
			} else if err := g.Move(entry.From, entry.To); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, record.FileVersion)
	}

	return g, nil
}

// Load replaces the game with the one recorded in filename and
// publishes a "load" event. The previous board is retired so stale
// cell references fail loudly; event handlers stay registered.
func (g *Game) Load(filename string) error {
	data, err := os.ReadFile(filename)

	if err != nil {
		return err
	}

	parsed, err := ParseRecord(data)

	if err != nil {
		return err
	}

	if g.board != nil {
		g.board.Retire()
	}

	g.created = parsed.created
	g.firstTurn = parsed.firstTurn
	g.nextTurn = parsed.nextTurn
	g.lastTurn = parsed.lastTurn
	g.board = parsed.board
	g.Notify("load")

	return nil
}

// LoadSnapshot replaces the board with one parsed from a rendered
// board string and publishes a "load" event. Handlers, turn state and
// the creation time are kept.
func (g *Game) LoadSnapshot(s string) error {
	b, err := board.ParseSnapshot(s)

	if err != nil {
		return err
	}

	if g.board != nil {
		g.board.Retire()
	}

	g.board = b
	g.Notify("load")

	return nil
}
