// Package sink submits the finished match log to the remote spreadsheet
// endpoint. The sink is a dumb append-only collaborator: the call counts as
// successful when the transport completes, and the response body is never
// parsed.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/fieldside/scorekeeper/internal/sink Client

// Client writes a match batch to the remote log sink
type Client interface {
	// Submit sends the batch; failure only means the transport failed
	Submit(ctx context.Context, input *SubmitInput) error
}

// LogEntry is one event row in the batch
type LogEntry struct {
	MatchID   string `json:"matchId"`
	Time      string `json:"time"`
	EventType string `json:"eventTypeLabel"`
	Team      string `json:"team"`
	Score     string `json:"score"`
	Assist    string `json:"assist"`
}

// Batch is the full submission payload
type Batch struct {
	MatchID string     `json:"matchId"`
	Date    string     `json:"date"`
	Logs    []LogEntry `json:"logs"`
}

// SubmitInput contains parameters for a submission
type SubmitInput struct {
	// Batch is the payload to send
	Batch *Batch
}

// Config holds configuration for the HTTP sink client
type Config struct {
	// URL is the sink endpoint
	URL string

	// HTTPClient is the client used for the request; defaults to one with
	// a 15 second timeout
	HTTPClient *http.Client
}

// httpClient implements Client against an HTTP sink
type httpClient struct {
	url    string
	client *http.Client
}

// NewHTTP creates a sink client for the given endpoint
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.URL == "" {
		return nil, errors.New("sink URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &httpClient{
		url:    cfg.URL,
		client: client,
	}, nil
}

// Submit posts the batch. The response is opaque; any completed exchange
// counts as success regardless of status code.
func (c *httpClient) Submit(ctx context.Context, input *SubmitInput) error {
	if input == nil || input.Batch == nil {
		return errors.New("input and batch cannot be nil")
	}

	payload, err := json.Marshal(input.Batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build sink request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sink submission failed: %w", err)
	}
	defer resp.Body.Close()

	// drain without reading so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	return nil
}
