package sink

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBatch() *Batch {
	return &Batch{
		MatchID: "Red vs Blue",
		Date:    "2025-06-14",
		Logs: []LogEntry{
			{MatchID: "Red vs Blue", Time: "10:00:00", EventType: "Start"},
			{MatchID: "Red vs Blue", Time: "10:05:12", Team: "Red", Score: "Alice", Assist: "Bob"},
		},
	}
}

func TestSubmitSendsPayload(t *testing.T) {
	var got Batch
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	err = client.Submit(context.Background(), &SubmitInput{Batch: testBatch()})
	require.NoError(t, err)

	assert.Equal(t, "Red vs Blue", got.MatchID)
	require.Len(t, got.Logs, 2)
	assert.Equal(t, "Start", got.Logs[0].EventType)
	assert.Equal(t, "Alice", got.Logs[1].Score)
}

func TestSubmitIgnoresResponseContent(t *testing.T) {
	// the sink's response body and status are opaque; a completed
	// exchange is success
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	err = client.Submit(context.Background(), &SubmitInput{Batch: testBatch()})
	assert.NoError(t, err)
}

func TestSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	err = client.Submit(context.Background(), &SubmitInput{Batch: testBatch()})
	assert.Error(t, err)
}

func TestSubmitNilInput(t *testing.T) {
	client, err := NewHTTP(&Config{URL: "http://localhost:0"})
	require.NoError(t, err)

	assert.Error(t, client.Submit(context.Background(), nil))
	assert.Error(t, client.Submit(context.Background(), &SubmitInput{}))
}
