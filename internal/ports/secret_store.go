package ports

import "context"

// SecretStore holds remote-collaborator credentials (generator token,
// mirror key) outside the config file.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
