package board

import "encoding/json"

// Point addresses a cell by column and row index. It serializes as a
// two element array.
type Point struct {
	X int
	Y int
}

// MarshalJSON encodes the point as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes a [x, y] array.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v []int

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if len(v) != 2 {
		return ErrInvalidLogEntry
	}

	p.X, p.Y = v[0], v[1]

	return nil
}

// CoordinateEntry is one item of the coordinate log: either a move
// between two points, or an event such as a promotion recorded as a
// point and a piece letter.
type CoordinateEntry struct {
	From  Point
	To    Point
	Event string
}

// NewMoveEntry creates a move log entry.
func NewMoveEntry(from, to Point) CoordinateEntry {
	return CoordinateEntry{From: from, To: to}
}

// NewEventEntry creates an event log entry.
func NewEventEntry(from Point, event string) CoordinateEntry {
	return CoordinateEntry{From: from, Event: event}
}

// IsEvent reports whether the entry records an event rather than a
// move.
func (e CoordinateEntry) IsEvent() bool {
	return e.Event != ""
}

// MarshalJSON encodes the entry as [[x,y],[x,y]] for moves and
// [[x,y],"letter"] for events.
func (e CoordinateEntry) MarshalJSON() ([]byte, error) {
	if e.IsEvent() {
		return json.Marshal([2]any{e.From, e.Event})
	}

	return json.Marshal([2]any{e.From, e.To})
}

// UnmarshalJSON decodes either entry shape. Malformed entries report
// ErrInvalidLogEntry.
func (e *CoordinateEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) < 2 {
		return ErrInvalidLogEntry
	}

	if err := json.Unmarshal(raw[0], &e.From); err != nil {
		return ErrInvalidLogEntry
	}

	if err := json.Unmarshal(raw[1], &e.Event); err == nil {
		return nil
	}

	if err := json.Unmarshal(raw[1], &e.To); err != nil {
		return ErrInvalidLogEntry
	}

	return nil
}

// CoordinateLog records every move and event of a game by cell
// coordinates, in order.
type CoordinateLog []CoordinateEntry

// Last returns the most recent entry.
func (l CoordinateLog) Last() (CoordinateEntry, bool) {
	if len(l) == 0 {
		return CoordinateEntry{}, false
	}

	return l[len(l)-1], true
}

// AlgebraicEntry is one line of the algebraic log: a move number
// label followed by up to two half moves, either of which may be
// followed or replaced by a brace delimited comment.
type AlgebraicEntry []string

// AlgebraicLog records the game history in algebraic notation.
type AlgebraicLog []AlgebraicEntry
