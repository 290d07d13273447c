package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Outcome is the pair of moves played in a round, agent A first.
type Outcome struct {
	A Move
	B Move
}

// Label renders the outcome as "Cooperate vs Defect".
func (o Outcome) Label() string {
	return o.A.String() + " vs " + o.B.String()
}

// Outcomes lists the four outcomes in canonical order.
var Outcomes = pairs(Moves)

func pairs(moves []Move) []Outcome {
	outcomes := make([]Outcome, 0, len(moves)*len(moves))
	for _, a := range moves {
		for _, b := range moves {
			outcomes = append(outcomes, Outcome{A: a, B: b})
		}
	}
	return outcomes
}

// Payoffs holds the scores awarded to agents A and B.
type Payoffs struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// PayoffMatrix maps outcomes to payoffs. The zero value is an empty matrix
// that scores every outcome (0,0).
type PayoffMatrix struct {
	name    string
	entries map[Outcome]Payoffs
}

// NewPayoffMatrix copies entries into a named matrix. Missing outcomes are
// allowed and score (0,0).
func NewPayoffMatrix(name string, entries map[Outcome]Payoffs) PayoffMatrix {
	copied := make(map[Outcome]Payoffs, len(entries))
	for outcome, payoffs := range entries {
		copied[outcome] = payoffs
	}
	return PayoffMatrix{name: name, entries: copied}
}

// Name returns the preset name or "custom".
func (m PayoffMatrix) Name() string {
	return m.name
}

// Payoff returns the payoffs for a pair of moves, or (0,0) when the matrix
// has no entry for it.
func (m PayoffMatrix) Payoff(a, b Move) (int, int) {
	payoffs, ok := m.entries[Outcome{A: a, B: b}]
	if !ok {
		return 0, 0
	}
	return payoffs.A, payoffs.B
}

// Has reports whether the matrix defines the outcome explicitly.
func (m PayoffMatrix) Has(a, b Move) bool {
	_, ok := m.entries[Outcome{A: a, B: b}]
	return ok
}

// Complete reports whether all four outcomes are defined.
func (m PayoffMatrix) Complete() bool {
	for _, outcome := range Outcomes {
		if !m.Has(outcome.A, outcome.B) {
			return false
		}
	}
	return true
}

// IsZero reports whether the matrix defines no outcome at all.
func (m PayoffMatrix) IsZero() bool {
	return len(m.entries) == 0
}

// Equal reports whether both matrices score every outcome identically.
func (m PayoffMatrix) Equal(other PayoffMatrix) bool {
	for _, outcome := range Outcomes {
		a1, b1 := m.Payoff(outcome.A, outcome.B)
		a2, b2 := other.Payoff(outcome.A, outcome.B)
		if a1 != a2 || b1 != b2 {
			return false
		}
	}
	return true
}

// String renders the matrix as "CC=3,3 CD=0,5 DC=5,0 DD=1,1".
func (m PayoffMatrix) String() string {
	parts := make([]string, 0, len(Outcomes))
	for _, outcome := range Outcomes {
		a, b := m.Payoff(outcome.A, outcome.B)
		parts = append(parts, fmt.Sprintf("%s=%d,%d", shortLabel(outcome), a, b))
	}
	return strings.Join(parts, " ")
}

func shortLabel(outcome Outcome) string {
	return outcome.A.String()[:1] + outcome.B.String()[:1]
}

const (
	PresetDefault               = "default"
	PresetHighMutualCooperation = "high_mutual_cooperation"
	PresetPunishingDefection    = "punishing_defection"
	PresetAsymmetrical          = "asymmetrical"
	PresetCustom                = "custom"
)

var presets = map[string]map[Outcome]Payoffs{
	PresetDefault: {
		{Cooperate, Cooperate}: {3, 3},
		{Cooperate, Defect}:    {0, 5},
		{Defect, Cooperate}:    {5, 0},
		{Defect, Defect}:       {1, 1},
	},
	PresetHighMutualCooperation: {
		{Cooperate, Cooperate}: {5, 5},
		{Cooperate, Defect}:    {0, 6},
		{Defect, Cooperate}:    {6, 0},
		{Defect, Defect}:       {1, 1},
	},
	PresetPunishingDefection: {
		{Cooperate, Cooperate}: {3, 3},
		{Cooperate, Defect}:    {0, 5},
		{Defect, Cooperate}:    {5, 0},
		{Defect, Defect}:       {-1, -1},
	},
	PresetAsymmetrical: {
		{Cooperate, Cooperate}: {4, 4},
		{Cooperate, Defect}:    {1, 5},
		{Defect, Cooperate}:    {5, 1},
		{Defect, Defect}:       {2, 2},
	},
}

// DefaultPayoffMatrix returns the classic (3,3)/(0,5)/(5,0)/(1,1) matrix.
func DefaultPayoffMatrix() PayoffMatrix {
	return NewPayoffMatrix(PresetDefault, presets[PresetDefault])
}

// PresetNames lists the named presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetByName resolves a named preset.
func PresetByName(name string) (PayoffMatrix, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = PresetDefault
	}
	entries, ok := presets[normalized]
	if !ok {
		return PayoffMatrix{}, fmt.Errorf("unknown payoff preset %q (expected %s)", name, strings.Join(PresetNames(), "|"))
	}
	return NewPayoffMatrix(normalized, entries), nil
}

// CustomPayoffMatrix builds a matrix from four payoffs. The off-diagonal
// entries mirror each other: (C,D) scores (cd,dc) and (D,C) scores (dc,cd).
func CustomPayoffMatrix(cc, cd, dc, dd int) (PayoffMatrix, error) {
	for _, field := range []struct {
		name  string
		value int
	}{{"cooperate_cooperate", cc}, {"cooperate_defect", cd}, {"defect_cooperate", dc}, {"defect_defect", dd}} {
		if field.value < 0 {
			return PayoffMatrix{}, fmt.Errorf("%s payoff must be >= 0, got %d", field.name, field.value)
		}
	}
	return NewPayoffMatrix(PresetCustom, map[Outcome]Payoffs{
		{Cooperate, Cooperate}: {cc, cc},
		{Cooperate, Defect}:    {cd, dc},
		{Defect, Cooperate}:    {dc, cd},
		{Defect, Defect}:       {dd, dd},
	}), nil
}

// RandomPayoffMatrix draws a custom matrix that keeps the dilemma's shape:
// temptation in [5,10], reward in [1,10], sucker and punishment in [0,5].
func RandomPayoffMatrix(rng *rand.Rand) PayoffMatrix {
	cc := 1 + rng.Intn(10)
	cd := rng.Intn(6)
	dc := 5 + rng.Intn(6)
	dd := rng.Intn(6)
	matrix, _ := CustomPayoffMatrix(cc, cd, dc, dd)
	matrix.name = "random"
	return matrix
}
