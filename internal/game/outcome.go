package game

// Outcome is the result of a single round
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomePlayerWin
	OutcomeDealerWin
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeDraw:
		return "draw"
	case OutcomePlayerWin:
		return "player-win"
	case OutcomeDealerWin:
		return "dealer-win"
	default:
		return "unknown"
	}
}

// RoundResult is returned by the engine when a round reaches Done
type RoundResult struct {
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
}

// SessionState is the process-wide win tally. It is created at session
// start, incremented only by round resolution, and read by the session
// summary at exit. Draws increment neither counter.
type SessionState struct {
	PlayerWins int
	DealerWins int
}

// Record applies a round outcome to the tally
func (s *SessionState) Record(o Outcome) {
	switch o {
	case OutcomePlayerWin:
		s.PlayerWins++
	case OutcomeDealerWin:
		s.DealerWins++
	}
}
