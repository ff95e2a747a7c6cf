package ports

import (
	"context"

	"github.com/nemesix/nemesis-cli/internal/domain"
)

// Mirror replicates the session to a remote row store keyed by identity.
// It is advisory cache-aside replication: last writer wins at the
// granularity of a full-row upsert, no versioning, no conflict resolution.
type Mirror interface {
	Pull(ctx context.Context, id domain.Identity) (domain.Session, bool, error)
	Push(ctx context.Context, id domain.Identity, session domain.Session) error
	Delete(ctx context.Context, id domain.Identity) error
}
