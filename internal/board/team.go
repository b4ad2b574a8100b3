package board

// Team identifies the side a piece plays for.
type Team uint8

const (
	White Team = iota
	Black
)

// TeamFromBool converts the serialized form back to a team. Black is
// stored as true in version 1 save files.
func TeamFromBool(black bool) Team {
	if black {
		return Black
	}

	return White
}

// Bool returns the serialized form of the team.
func (t Team) Bool() bool {
	return t == Black
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == Black {
		return White
	}

	return Black
}

// Home returns the row a pawn of this team promotes on.
func (t Team) Home() int {
	if t == Black {
		return 7
	}

	return 0
}

// Goal returns the row the opposing pawns promote on.
func (t Team) Goal() int {
	if t == Black {
		return 0
	}

	return 7
}

// String returns the team name.
func (t Team) String() string {
	if t == Black {
		return "Black"
	}

	return "White"
}
