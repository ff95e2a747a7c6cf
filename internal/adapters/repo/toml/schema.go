package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int            `toml:"version"`
	Identity string         `toml:"identity,omitempty"`
	Session  *sessionSchema `toml:"session,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Goal         string `toml:"goal"`
	Insecurity   string `toml:"insecurity"`
	NemesisType  string `toml:"nemesis_type"`
	NemesisScore int    `toml:"nemesis_score"`
	UserScore    int    `toml:"user_score"`
	IsActive     bool   `toml:"is_active"`
}
