package domain

const (
	// NemesisHeadStart is the score the nemesis opens with on summon.
	NemesisHeadStart = 15
	// WorkPoints is the score awarded for each logged unit of work.
	WorkPoints = 10
)

type Session struct {
	Goal         string
	Insecurity   string
	NemesisType  PersonaID
	NemesisScore int
	UserScore    int
	Active       bool
}

func NewSession() Session {
	return Session{}
}

// Summon activates the session. It validates all three inputs before
// mutating anything; on a validation error the receiver is left untouched.
func (s *Session) Summon(goal, insecurity string, id PersonaID) error {
	if goal == "" {
		return ErrGoalRequired
	}
	if insecurity == "" {
		return ErrInsecurityRequired
	}
	if id == "" {
		return ErrPersonaRequired
	}
	if _, ok := PersonaByID(id); !ok {
		return ErrUnknownPersona
	}

	s.Goal = goal
	s.Insecurity = insecurity
	s.NemesisType = id
	s.UserScore = 0
	s.NemesisScore = NemesisHeadStart
	s.Active = true

	return nil
}

// LogWork credits the user and returns the new score.
func (s *Session) LogWork() int {
	s.UserScore += WorkPoints
	return s.UserScore
}

// NemesisTick advances the nemesis by one point and returns the new score.
func (s *Session) NemesisTick() int {
	s.NemesisScore++
	return s.NemesisScore
}

func (s *Session) Reset() {
	*s = NewSession()
}

// Lead is the nemesis score minus the user score. Negative means the user
// is ahead.
func (s Session) Lead() int {
	return s.NemesisScore - s.UserScore
}
