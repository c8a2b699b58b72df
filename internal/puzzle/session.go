package puzzle

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Still running or never started
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Session is the mutable record of one game.
type Session struct {
	Target        int
	TimeRemaining float64
	Active        bool
	Solved        map[int]struct{}
	Outcome       Outcome
}

func newSession(gameTime float64) Session {
	return Session{
		Target:        1,
		TimeRemaining: gameTime,
		Active:        true,
		Solved:        make(map[int]struct{}),
	}
}

// IsSolved reports whether value has been tapped in order.
func (s Session) IsSolved(value int) bool {
	_, ok := s.Solved[value]
	return ok
}

// applyPenalty removes percent% of the remaining time, flooring at zero.
func (s *Session) applyPenalty(percent float64) {
	penalty := s.TimeRemaining * (percent / 100.0)
	s.TimeRemaining = max(0, s.TimeRemaining-penalty)
}
