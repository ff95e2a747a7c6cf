package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nemesix/nemesis-cli/internal/domain"
	"github.com/nemesix/nemesis-cli/internal/ports"
)

const (
	restPathPrefix       = "/rest/v1/"
	maxRowResponseBytes  = 1 << 20
	defaultRequestExpiry = 10 * time.Second
)

// Adapter talks to a Supabase/PostgREST row store. One row per client
// identity, full-row upserts, last writer wins.
type Adapter struct {
	BaseURL        string
	AnonKey        string
	Table          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Clock          ports.Clock
}

var _ ports.Mirror = (*Adapter)(nil)

type rowSchema struct {
	ID           string `json:"id"`
	Goal         string `json:"goal"`
	Insecurity   string `json:"insecurity"`
	NemesisType  string `json:"nemesis_type"`
	NemesisScore int    `json:"nemesis_score"`
	UserScore    int    `json:"user_score"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (a *Adapter) Pull(ctx context.Context, id domain.Identity) (domain.Session, bool, error) {
	endpoint, err := a.tableURL()
	if err != nil {
		return domain.Session{}, false, err
	}
	endpoint += "?id=eq." + url.QueryEscape(string(id)) + "&select=*"

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("create pull request: %w", err)
	}
	a.setHeaders(req)

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("pull session row: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Session{}, false, fmt.Errorf("pull session row: status %d", resp.StatusCode)
	}

	var rows []rowSchema
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRowResponseBytes)).Decode(&rows); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session row: %w", err)
	}
	if len(rows) == 0 {
		return domain.Session{}, false, nil
	}

	return fromRow(rows[0]), true, nil
}

func (a *Adapter) Push(ctx context.Context, id domain.Identity, session domain.Session) error {
	endpoint, err := a.tableURL()
	if err != nil {
		return err
	}

	row := toRow(id, session)
	row.CreatedAt = a.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal([]rowSchema{row})
	if err != nil {
		return fmt.Errorf("encode session row: %w", err)
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	a.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("push session row: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("push session row: status %d", resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxRowResponseBytes))
	return nil
}

func (a *Adapter) Delete(ctx context.Context, id domain.Identity) error {
	endpoint, err := a.tableURL()
	if err != nil {
		return err
	}
	endpoint += "?id=eq." + url.QueryEscape(string(id))

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}
	a.setHeaders(req)

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("delete session row: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("delete session row: status %d", resp.StatusCode)
	}

	return nil
}

func (a *Adapter) tableURL() (string, error) {
	if a.BaseURL == "" {
		return "", errors.New("mirror base url is required")
	}
	if a.Table == "" {
		return "", errors.New("mirror table is required")
	}

	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse mirror base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("mirror base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("mirror base url host is required")
	}

	endpoint, err := parsed.Parse(restPathPrefix + a.Table)
	if err != nil {
		return "", fmt.Errorf("parse mirror table path: %w", err)
	}
	return endpoint.String(), nil
}

func (a *Adapter) setHeaders(req *http.Request) {
	req.Header.Set("apikey", a.AnonKey)
	req.Header.Set("Authorization", "Bearer "+a.AnonKey)
}

func (a *Adapter) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func (a *Adapter) now() time.Time {
	if a.Clock != nil {
		return a.Clock.Now()
	}
	return time.Now()
}

func (a *Adapter) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := a.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestExpiry
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func toRow(id domain.Identity, session domain.Session) rowSchema {
	return rowSchema{
		ID:           string(id),
		Goal:         session.Goal,
		Insecurity:   session.Insecurity,
		NemesisType:  string(session.NemesisType),
		NemesisScore: session.NemesisScore,
		UserScore:    session.UserScore,
		IsActive:     session.Active,
	}
}

func fromRow(row rowSchema) domain.Session {
	return domain.Session{
		Goal:         row.Goal,
		Insecurity:   row.Insecurity,
		NemesisType:  domain.PersonaID(row.NemesisType),
		NemesisScore: row.NemesisScore,
		UserScore:    row.UserScore,
		Active:       row.IsActive,
	}
}
