package serp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiencelab/intentforge/core"
)

func newTestFetcher(t *testing.T, client *Client) *Fetcher {
	t.Helper()
	fetcher, err := NewFetcher(client, WithConcurrency(4))
	require.NoError(t, err)
	t.Cleanup(fetcher.Release)
	return fetcher
}

func TestNewFetcher_RequiresClient(t *testing.T) {
	_, err := NewFetcher(nil)
	assert.ErrorIs(t, err, ErrClientRequired)
}

func TestFetchSERPs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "broken query" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"organic_results": [{"title": %q, "link": "https://example.com/%s"}]}`, "Results for "+q, q)
	})
	fetcher := newTestFetcher(t, client)

	queries := []string{"gutter guards", "broken query", "leaf filters"}
	results := fetcher.FetchSERPs(context.Background(), queries, "en-US", 10)

	require.Len(t, results, 3)

	// Results come back in query order
	assert.Equal(t, "gutter guards", results[0].Query)
	require.NoError(t, results[0].Err)
	require.Len(t, results[0].Docs, 1)
	assert.Equal(t, "Results for gutter guards", results[0].Docs[0].Title)

	// A failed query carries its error without failing the batch
	assert.Equal(t, "broken query", results[1].Query)
	assert.ErrorIs(t, results[1].Err, ErrRequestFailed)
	assert.Empty(t, results[1].Docs)

	assert.Equal(t, "leaf filters", results[2].Query)
	require.NoError(t, results[2].Err)
}

func TestFetchMainText(t *testing.T) {
	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good":
			w.Write([]byte("<html><body><p>Guard installation guide.</p></body></html>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer pages.Close()

	client, err := NewClient("key", WithRateLimit(1000))
	require.NoError(t, err)
	fetcher := newTestFetcher(t, client)

	docs := []core.Document{
		{Link: pages.URL + "/good", Title: "Good"},
		{Link: pages.URL + "/missing", Title: "Missing"},
		{Title: "No link"},
	}

	out := fetcher.FetchMainText(context.Background(), docs)
	require.Len(t, out, 3)

	assert.Equal(t, "Guard installation guide.", out[0].MainText)
	assert.Empty(t, out[1].MainText)
	assert.Empty(t, out[2].MainText)

	// Input slice untouched
	assert.Empty(t, docs[0].MainText)
}
