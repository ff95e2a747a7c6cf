package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMapsKeyToEnvVar(t *testing.T) {
	store := NewStore("NEMESIS_")
	t.Setenv("NEMESIS_GENERATOR_TOKEN", "hf-token")

	value, err := store.Get(context.Background(), "generator/token")
	require.NoError(t, err)
	assert.Equal(t, "hf-token", value)
}

func TestGetUnsetVarIsError(t *testing.T) {
	store := NewStore("NEMESIS_")

	_, err := store.Get(context.Background(), "mirror/key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEMESIS_MIRROR_KEY")
}

func TestWritesAreRejected(t *testing.T) {
	t.Parallel()

	store := NewStore("NEMESIS_")
	ctx := context.Background()

	require.ErrorIs(t, store.Put(ctx, "generator/token", "v"), ErrReadOnly)
	require.ErrorIs(t, store.Delete(ctx, "generator/token"), ErrReadOnly)
}

func TestEmptyKeyIsError(t *testing.T) {
	t.Parallel()

	store := NewStore("NEMESIS_")
	_, err := store.Get(context.Background(), "  ")
	require.Error(t, err)
}
