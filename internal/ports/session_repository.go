package ports

import (
	"context"

	"github.com/nemesix/nemesis-cli/internal/domain"
)

// SessionRepository is the local persisted copy of the session. Load on a
// missing file returns a zero session and no error; a corrupt file returns
// an error the caller may log and ignore.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

// IdentityStore owns the per-installation identity. Current generates and
// persists a fresh identity when none exists yet; Discard forgets it so the
// next Current call mints a new one.
type IdentityStore interface {
	Current(ctx context.Context) (domain.Identity, error)
	Discard(ctx context.Context) error
}
