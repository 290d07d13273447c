package game

import (
	"fmt"
	"strings"
)

// Move is a player's action in a round.
type Move int

const (
	// Cooperate is the cooperative action and the default move.
	Cooperate Move = iota
	// Defect is the defecting action.
	Defect
)

// Moves lists every move in canonical order.
var Moves = []Move{Cooperate, Defect}

// String returns the display name of the move.
func (m Move) String() string {
	switch m {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Valid reports whether m is one of the two defined moves.
func (m Move) Valid() bool {
	return m == Cooperate || m == Defect
}

// ParseMove parses an exact move name, ignoring case and surrounding space.
func ParseMove(value string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "cooperate", "c":
		return Cooperate, nil
	case "defect", "d":
		return Defect, nil
	default:
		return Cooperate, fmt.Errorf("unknown move %q", value)
	}
}

// MarshalText encodes the move by name.
func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid move %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a move name.
func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
