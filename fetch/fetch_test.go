package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "1\n00:00:01,000 --> 00:00:02,000\nHi\n")
	}))
	defer server.Close()

	body, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "00:00:01,000")
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher().Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetchTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this body is longer than the cap")
	}))
	defer server.Close()

	fetcher := &HTTPFetcher{
		client:   &http.Client{Timeout: time.Second},
		maxBytes: 8,
	}
	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.ErrorContains(t, err, "larger than")
}
