package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nemesix/nemesis-cli/internal/ports"
)

const (
	maxGenerationResponseBytes = 1 << 20
	defaultRequestExpiry       = 15 * time.Second
)

var ErrEmptyGeneration = errors.New("generation response contained no text")

// Adapter calls a Hugging Face Inference style endpoint. The response shape
// varies by model type; both known shapes are normalized to "first text",
// anything else is a failure.
type Adapter struct {
	Endpoint       string
	Token          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.TauntGenerator = (*Adapter)(nil)

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generatedTextEntry struct {
	GeneratedText string `json:"generated_text"`
}

type choicesResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

func (a *Adapter) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint, err := a.endpointURL()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return "", fmt.Errorf("encode generation request: %w", err)
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("request generation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("request generation: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxGenerationResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}

	text, err := extractText(data)
	if err != nil {
		return "", err
	}

	return text, nil
}

// extractText normalizes the two known response shapes: an array of objects
// carrying generated_text, or a choices array carrying text.
func extractText(data []byte) (string, error) {
	var entries []generatedTextEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		if len(entries) > 0 {
			if text := strings.TrimSpace(entries[0].GeneratedText); text != "" {
				return text, nil
			}
		}
		return "", ErrEmptyGeneration
	}

	var choices choicesResponse
	if err := json.Unmarshal(data, &choices); err == nil {
		if len(choices.Choices) > 0 {
			if text := strings.TrimSpace(choices.Choices[0].Text); text != "" {
				return text, nil
			}
		}
		return "", ErrEmptyGeneration
	}

	return "", fmt.Errorf("decode generation response: %w", ErrEmptyGeneration)
}

func (a *Adapter) endpointURL() (string, error) {
	if a.Endpoint == "" {
		return "", errors.New("generation endpoint is required")
	}

	parsed, err := url.Parse(a.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse generation endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("generation endpoint must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("generation endpoint host is required")
	}

	return parsed.String(), nil
}

func (a *Adapter) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
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
