package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "credentials.toml"))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "generator/token", "hf-token"))
	require.NoError(t, store.Put(ctx, "mirror/key", "anon-key"))

	value, err := store.Get(ctx, "generator/token")
	require.NoError(t, err)
	assert.Equal(t, "hf-token", value)

	require.NoError(t, store.Delete(ctx, "generator/token"))
	_, err = store.Get(ctx, "generator/token")
	require.ErrorIs(t, err, ErrNotFound)

	// Unrelated keys survive a delete.
	value, err = store.Get(ctx, "mirror/key")
	require.NoError(t, err)
	assert.Equal(t, "anon-key", value)
}

func TestGetMissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "credentials.toml"))
	_, err := store.Get(context.Background(), "generator/token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "credentials.toml"))
	require.NoError(t, store.Delete(context.Background(), "generator/token"))
}

func TestFilePermissionsAreRestrictive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.toml")
	store := NewStore(path)
	require.NoError(t, store.Put(context.Background(), "generator/token", "hf-token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(storeFileMode), info.Mode().Perm())
}
