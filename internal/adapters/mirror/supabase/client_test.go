package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nemesix/nemesis-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(url string) *Adapter {
	return &Adapter{
		BaseURL: url,
		AnonKey: "anon-key",
		Table:   "nemesis",
	}
}

func TestPullFoundRow(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/nemesis", r.URL.Path)
		assert.Equal(t, "eq.nms-abc", r.URL.Query().Get("id"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[{"id":"nms-abc","goal":"finish thesis","insecurity":"procrastination","nemesis_type":"GRINDER","nemesis_score":21,"user_score":40,"is_active":true,"created_at":"2026-01-02T03:04:05Z"}]`))
	}))
	defer server.Close()

	session, found, err := newTestAdapter(server.URL).Pull(context.Background(), "nms-abc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Session{
		Goal:         "finish thesis",
		Insecurity:   "procrastination",
		NemesisType:  domain.PersonaGrinder,
		NemesisScore: 21,
		UserScore:    40,
		Active:       true,
	}, session)
}

func TestPullEmptyResultIsNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, found, err := newTestAdapter(server.URL).Pull(context.Background(), "nms-abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPullServerErrorIsReported(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, _, err := newTestAdapter(server.URL).Pull(context.Background(), "nms-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestPushUpsertsFullRow(t *testing.T) {
	t.Parallel()

	var received []rowSchema
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "resolution=merge-duplicates", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	session := domain.Session{
		Goal:         "ship v1",
		Insecurity:   "doubt",
		NemesisType:  domain.PersonaNatural,
		NemesisScore: 16,
		UserScore:    10,
		Active:       true,
	}

	err := newTestAdapter(server.URL).Push(context.Background(), "nms-abc", session)
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, "nms-abc", received[0].ID)
	assert.Equal(t, "ship v1", received[0].Goal)
	assert.Equal(t, 16, received[0].NemesisScore)
	assert.True(t, received[0].IsActive)
	assert.NotEmpty(t, received[0].CreatedAt)
}

func TestDeleteByIdentity(t *testing.T) {
	t.Parallel()

	var gotFilter string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotFilter = r.URL.Query().Get("id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newTestAdapter(server.URL).Delete(context.Background(), "nms-abc")
	require.NoError(t, err)
	assert.Equal(t, "eq.nms-abc", gotFilter)
}

func TestMisconfiguredBaseURL(t *testing.T) {
	t.Parallel()

	adapter := &Adapter{BaseURL: "ftp://rows.example", AnonKey: "k", Table: "nemesis"}

	_, _, err := adapter.Pull(context.Background(), "nms-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")

	adapter.BaseURL = ""
	err = adapter.Delete(context.Background(), "nms-abc")
	require.Error(t, err)
}
