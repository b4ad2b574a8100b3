package board

// Direction identifies one of the eight rays a piece can travel along,
// from White's point of view. Up decreases the row index.
type Direction uint8

const (
	Up Direction = iota
	UpLeft
	UpRight
	Down
	DownLeft
	DownRight
	Left
	Right
)

// Offset returns the per-step grid delta for the direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case UpLeft:
		return -1, -1
	case UpRight:
		return 1, -1
	case Down:
		return 0, 1
	case DownLeft:
		return -1, 1
	case DownRight:
		return 1, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case Down:
		return "down"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	case Left:
		return "left"
	default:
		return "right"
	}
}
