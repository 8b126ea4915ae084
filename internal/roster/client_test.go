package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPValidatesConfig(t *testing.T) {
	_, err := NewHTTP(nil)
	assert.Error(t, err)

	_, err = NewHTTP(&Config{})
	assert.Error(t, err)
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Red":["Alice"],"Blue":["Bob"]}`))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	out, err := client.Fetch(context.Background(), &FetchInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, out.Teams["Red"])
	assert.Equal(t, []string{"Bob"}, out.Teams["Blue"])
}

func TestFetchTabular(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Red,Blue\nAlice,Bob\n"))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	out, err := client.Fetch(context.Background(), &FetchInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, out.Teams["Red"])
	assert.Equal(t, []string{"Bob"}, out.Teams["Blue"])
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), &FetchInput{})
	assert.Error(t, err)
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewHTTP(&Config{URL: srv.URL})
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), &FetchInput{})
	assert.Error(t, err)
}
