package board

// Move captures everything needed to apply one piece move and undo it
// again. From is recorded when the move is created, Captured when it
// is performed. Taken differs from To only for en passant captures.
type Move struct {
	Piece    Piece
	From     *Cell
	To       *Cell
	Taken    *Cell
	Captured Piece

	hasMoved bool
}

func newMove(piece Piece, to, taken *Cell) *Move {
	return &Move{
		Piece:    piece,
		From:     piece.Cell(),
		To:       to,
		Taken:    taken,
		hasMoved: piece.HasMoved(),
	}
}

// Perform applies the move to the board and marks the piece as moved.
func (m *Move) Perform() {
	if m.Taken.Piece() != nil {
		m.Captured = m.Taken.Piece()
	}

	m.Taken.SetPiece(nil)
	m.To.SetPiece(m.Piece)
	m.Piece.SetHasMoved(true)

	if m.From != nil {
		m.From.SetPiece(nil)
	}
}

// Reverse puts the moved piece, any captured piece and the moved flag
// back the way they were.
func (m *Move) Reverse() {
	if m.From != nil {
		m.From.SetPiece(m.Piece)
	}

	m.To.SetPiece(nil)
	m.Taken.SetPiece(m.Captured)
	m.Piece.SetHasMoved(m.hasMoved)
}
