// Package roster fetches the team-to-players mapping from the roster
// provider. The provider answers in one of two wire shapes: a JSON object
// keyed by team name, or delimited tabular text with team names in the
// header row and player names down each column.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fieldside/scorekeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/fieldside/scorekeeper/internal/roster Client

// Client retrieves the roster mapping from the provider
type Client interface {
	// Fetch retrieves and parses the current roster
	Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error)
}

// FetchInput contains parameters for a roster fetch
type FetchInput struct{}

// FetchOutput contains the parsed roster
type FetchOutput struct {
	// Teams is the team to players mapping
	Teams models.Roster
}

// Config holds configuration for the HTTP roster client
type Config struct {
	// URL is the provider endpoint
	URL string

	// HTTPClient is the client used for the request; defaults to one with
	// a 10 second timeout
	HTTPClient *http.Client
}

// httpClient implements Client against an HTTP provider
type httpClient struct {
	url    string
	client *http.Client
}

// NewHTTP creates a roster client for the given provider endpoint
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.URL == "" {
		return nil, errors.New("provider URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &httpClient{
		url:    cfg.URL,
		client: client,
	}, nil
}

// Fetch retrieves the roster, detecting the wire shape by content type
func (c *httpClient) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roster fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roster provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	teams, err := Parse(body, contentType)
	if err != nil {
		return nil, err
	}

	return &FetchOutput{Teams: teams}, nil
}

// isJSONContent reports whether the content type (or the payload itself,
// when the provider declares nothing useful) looks like the JSON shape.
func isJSONContent(contentType string, body []byte) bool {
	if strings.Contains(contentType, "json") {
		return true
	}
	if strings.Contains(contentType, "csv") || strings.Contains(contentType, "tab-separated") || strings.Contains(contentType, "text/plain") {
		return false
	}
	trimmed := strings.TrimSpace(string(body))
	return strings.HasPrefix(trimmed, "{")
}
