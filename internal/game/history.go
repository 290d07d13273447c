package game

// Round count bounds accepted by a run.
const (
	MinRounds = 1
	MaxRounds = 100
)

// RoundRecord is the immutable result of one resolved round.
type RoundRecord struct {
	Round   int  `json:"round"`
	MoveA   Move `json:"agent_a_decision"`
	MoveB   Move `json:"agent_b_decision"`
	PayoffA int  `json:"agent_a_payoff"`
	PayoffB int  `json:"agent_b_payoff"`
}

// Outcome returns the move pair of the record.
func (r RoundRecord) Outcome() Outcome {
	return Outcome{A: r.MoveA, B: r.MoveB}
}

// History is the append-only log of a run: the round records plus each
// agent's own decision log.
type History struct {
	records []RoundRecord
	movesA  []Move
	movesB  []Move
}

// Len returns the number of resolved rounds.
func (h *History) Len() int {
	return len(h.records)
}

// Empty reports whether no round has been resolved.
func (h *History) Empty() bool {
	return len(h.records) == 0
}

// Append resolves payoffs for the move pair and records the next round.
func (h *History) Append(table PayoffMatrix, a, b Move) RoundRecord {
	payoffA, payoffB := table.Payoff(a, b)
	record := RoundRecord{
		Round:   len(h.records) + 1,
		MoveA:   a,
		MoveB:   b,
		PayoffA: payoffA,
		PayoffB: payoffB,
	}
	h.movesA = append(h.movesA, a)
	h.movesB = append(h.movesB, b)
	h.records = append(h.records, record)
	return record
}

// Records returns a copy of the round records in round order.
func (h *History) Records() []RoundRecord {
	return append([]RoundRecord(nil), h.records...)
}

// MovesA returns a copy of agent A's decision log.
func (h *History) MovesA() []Move {
	return append([]Move(nil), h.movesA...)
}

// MovesB returns a copy of agent B's decision log.
func (h *History) MovesB() []Move {
	return append([]Move(nil), h.movesB...)
}

// Clear discards every record.
func (h *History) Clear() {
	h.records = nil
	h.movesA = nil
	h.movesB = nil
}
