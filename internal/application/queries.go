package application

import "github.com/nemesix/nemesis-cli/internal/domain"

type Status struct {
	Session             domain.Session
	Identity            domain.Identity
	NemesisName         string
	MirrorConfigured    bool
	GeneratorConfigured bool
}
