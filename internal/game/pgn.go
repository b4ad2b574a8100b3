package game

import (
	"fmt"
	"strings"

	"github.com/hailam/chesskit/internal/board"
)

// PGNGame is one game from a PGN file: its tag pairs and the raw
// movetext tokens. Comments stay single "{...}" tokens, parentheses
// around variations become their own "(" and ")" tokens, and move
// numbers are dropped.
type PGNGame struct {
	Tags  map[string]string
	Moves []string
}

// PGNMove is a movetext token resolved against the current position:
// the origin and destination cell names, plus the promotion piece
// when the token carries one.
type PGNMove struct {
	From      string
	To        string
	Promotion board.Kind
	Promotes  bool
}

// ParsePGN splits PGN text into its games. A tag section following
// movetext starts the next game.
func ParsePGN(s string) []PGNGame {
	var games []PGNGame

	tags := map[string]string{}

	var movetext strings.Builder

	braces := 0

	flush := func() {
		if len(tags) == 0 && movetext.Len() == 0 {
			return
		}

		games = append(games, PGNGame{Tags: tags, Moves: splitMovetext(movetext.String())})
		tags = map[string]string{}
		movetext.Reset()
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if braces == 0 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if movetext.Len() > 0 {
				flush()
			}

			if key, value, ok := parseTag(line); ok {
				tags[key] = value
			}

			continue
		}

		movetext.WriteString(line)
		movetext.WriteByte('\n')
		braces += strings.Count(line, "{") - strings.Count(line, "}")

		if braces < 0 {
			braces = 0
		}
	}

	flush()

	return games
}

func parseTag(line string) (string, string, bool) {
	inner := strings.TrimSpace(line[1 : len(line)-1])
	key, value, ok := strings.Cut(inner, " ")

	if !ok {
		return "", "", false
	}

	value = strings.TrimSpace(value)

	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	return key, value, true
}

func splitMovetext(s string) []string {
	var tokens []string

	var current strings.Builder

	inBrace := false

	flush := func() {
		if current.Len() == 0 {
			return
		}

		token := current.String()
		current.Reset()

		if !isMoveNumber(token) {
			tokens = append(tokens, token)
		}
	}

	for _, r := range s {
		switch {
		case inBrace:
			current.WriteRune(r)

			if r == '}' {
				inBrace = false
				tokens = append(tokens, current.String())
				current.Reset()
			}
		case r == '{':
			flush()
			inBrace = true
			current.WriteRune(r)
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
		}
	}

	flush()

	return tokens
}

func isMoveNumber(token string) bool {
	digit := false

	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r == '.':
		default:
			return false
		}
	}

	return digit
}

// ParsePGNMove resolves one movetext token against the game, picking
// the side from whose turn it is. Comments and game results resolve
// to nil without error.
func (g *Game) ParsePGNMove(token string) (*PGNMove, error) {
	if token == "" || token[0] == '{' {
		return nil, nil
	}

	team := board.White

	if g.Turn() == TurnBlack {
		team = board.Black
	}

	move := strings.NewReplacer("+", "", "x", "").Replace(token)

	switch move {
	case "O-O":
		if team == board.Black {
			return &PGNMove{From: "E8", To: "G8"}, nil
		}

		return &PGNMove{From: "E1", To: "G1"}, nil
	case "O-O-O":
		if team == board.Black {
			return &PGNMove{From: "E8", To: "C8"}, nil
		}

		return &PGNMove{From: "E1", To: "C1"}, nil
	case "0-1", "1-0", "1/2-1/2":
		return nil, nil
	}

	kind := board.KindPawn
	rof := ""
	pgnMove := &PGNMove{}

	if strings.Contains(move, "=") {
		promotion, ok := board.KindFromLetter(move[len(move)-1])

		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPGNMove, token)
		}

		pgnMove.Promotion = promotion
		pgnMove.Promotes = true

		if len(move) > 2 {
			move = move[:len(move)-2]
		} else {
			move = ""
		}
	}

	if move != "" && move[0] >= 'A' && move[0] <= 'Z' {
		k, ok := board.KindFromLetter(move[0])

		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPGNMove, token)
		}

		kind = k
		move = move[1:]
	}

	switch len(move) {
	case 2:
	case 3:
		rof = strings.ToUpper(move[:1])
		move = move[1:]
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPGNMove, token)
	}

	pgnMove.To = strings.ToUpper(move)
	cell, err := g.FindPlayableCell(kind, team, rof, pgnMove.To, nil)

	if err != nil {
		return nil, err
	}

	pgnMove.From = cell.Name()

	return pgnMove, nil
}

// ReplayPGN plays one parsed PGN game into a fresh Game, skipping
// comments, results and parenthesized variations.
func ReplayPGN(pg PGNGame) (*Game, error) {
	g := New()
	level := 0

	for _, token := range pg.Moves {
		switch token {
		case "(":
			level++

			continue
		case ")":
			level--

			continue
		}

		if level > 0 {
			continue
		}

		pgnMove, err := g.ParsePGNMove(token)

		if err != nil {
			return nil, err
		}

		if pgnMove == nil {
			continue
		}

		if err := g.Move(pgnMove.From, pgnMove.To); err != nil {
			return nil, err
		}

		if pgnMove.Promotes {
			if err := g.Promote(pgnMove.Promotion); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
