package domain

import "errors"

var (
	ErrGoalRequired       = errors.New("goal is required")
	ErrInsecurityRequired = errors.New("insecurity is required")
	ErrPersonaRequired    = errors.New("nemesis persona is required")
	ErrUnknownPersona     = errors.New("unknown nemesis persona")
	ErrNoActiveSession    = errors.New("no active session")
)
