package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nemesix/nemesis-cli/internal/ports"
)

var ErrReadOnly = errors.New("environment secret store is read-only")

// Store resolves secrets from process environment variables. A key such as
// "generator/token" maps to NEMESIS_GENERATOR_TOKEN. Writes are rejected so
// a chain can fall through to a writable backend.
type Store struct {
	prefix string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := s.varName(key)
	if err != nil {
		return "", err
	}

	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("env secret %q not set", name)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, _ string, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrReadOnly
}

func (s *Store) Delete(ctx context.Context, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrReadOnly
}

func (s *Store) varName(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, trimmed)

	return s.prefix + mapped, nil
}
