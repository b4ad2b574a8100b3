package board

// Kind identifies a piece type.
type Kind uint8

const (
	KindPawn Kind = iota
	KindRook
	KindKnight
	KindBishop
	KindQueen
	KindKing
)

// String returns the piece name, as stored in version 1 save files.
func (k Kind) String() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindRook:
		return "Rook"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindQueen:
		return "Queen"
	default:
		return "King"
	}
}

// Letter returns the algebraic notation letter for the kind.
func (k Kind) Letter() byte {
	switch k {
	case KindPawn:
		return 'P'
	case KindRook:
		return 'R'
	case KindKnight:
		return 'N'
	case KindBishop:
		return 'B'
	case KindQueen:
		return 'Q'
	default:
		return 'K'
	}
}

// KindFromLetter resolves an algebraic notation letter.
func KindFromLetter(letter byte) (Kind, bool) {
	switch letter {
	case 'P':
		return KindPawn, true
	case 'R':
		return KindRook, true
	case 'N':
		return KindKnight, true
	case 'B':
		return KindBishop, true
	case 'Q':
		return KindQueen, true
	case 'K':
		return KindKing, true
	}

	return 0, false
}

// KindFromName resolves a piece name from a version 1 save file.
func KindFromName(name string) (Kind, bool) {
	for _, k := range []Kind{KindPawn, KindRook, KindKnight, KindBishop, KindQueen, KindKing} {
		if k.String() == name {
			return k, true
		}
	}

	return 0, false
}

// Piece is a chess piece placed on, or removed from, a board cell.
type Piece interface {
	// Kind returns the piece type.
	Kind() Kind
	// Team returns the side the piece plays for.
	Team() Team
	// Cell returns the cell the piece stands on, or nil once the piece
	// is captured or its board retired.
	Cell() *Cell
	// HasMoved reports whether the piece has moved.
	HasMoved() bool
	// SetHasMoved marks the piece as moved or unmoved.
	SetHasMoved(moved bool)
	// Symbol returns the glyph the piece renders as.
	Symbol() string
	// IsSafe reports whether no opposing piece can take this piece's
	// cell. A piece without a cell is safe.
	IsSafe() bool

	checkTake(cell, ignore *Cell) error
	setCell(cell *Cell)
}

// CheckTake reports why the piece cannot reach cell, or nil when the
// piece may move there under its own movement rules. Moving to the
// piece's own cell is allowed.
func CheckTake(p Piece, cell *Cell) error {
	if _, err := cell.Board(); err != nil {
		return err
	}

	if p.Cell() == nil {
		return ErrStaleBoard
	}

	return p.checkTake(cell, nil)
}

// CanTake reports whether the piece can reach cell.
func CanTake(p Piece, cell *Cell) bool {
	return CheckTake(p, cell) == nil
}

// NewPiece creates a piece of the given kind.
func NewPiece(kind Kind, team Team) Piece {
	switch kind {
	case KindPawn:
		return NewPawn(team)
	case KindRook:
		return NewRook(team)
	case KindKnight:
		return NewKnight(team)
	case KindBishop:
		return NewBishop(team)
	case KindQueen:
		return NewQueen(team)
	default:
		return NewKing(team)
	}
}

type piece struct {
	team     Team
	hasMoved bool
	cell     *Cell
}

func (p *piece) Team() Team {
	return p.team
}

func (p *piece) Cell() *Cell {
	return p.cell
}

func (p *piece) HasMoved() bool {
	return p.hasMoved
}

func (p *piece) SetHasMoved(moved bool) {
	p.hasMoved = moved
}

func (p *piece) IsSafe() bool {
	return p.cell == nil || p.cell.IsSafe(p.team)
}

func (p *piece) setCell(cell *Cell) {
	p.cell = cell
}
