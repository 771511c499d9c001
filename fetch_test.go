package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("hello"))
	}))
	defer ts.Close()

	f := NewFetcher(DefaultConfig())

	body, err := f.Fetch(context.Background(), ts.URL+"/ok")
	require.NoError(t, err)
	require.Equal(t, "hello", string(body))

	_, err = f.Fetch(context.Background(), ts.URL+"/missing")
	require.Error(t, err)
}

func TestFetcher_RateLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer ts.Close()

	config := DefaultConfig()
	config.FetchInterval = 50 * time.Millisecond
	f := NewFetcher(config)

	start := time.Now()
	for range 3 {
		_, err := f.FetchWithRateLimit(context.Background(), ts.URL)
		require.NoError(t, err)
	}
	require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestFetcher_RateLimitHonoursContext(t *testing.T) {
	config := DefaultConfig()
	config.FetchInterval = time.Hour
	f := NewFetcher(config)
	f.lastCall = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchWithRateLimit(ctx, "http://127.0.0.1:1/")
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsRemote(t *testing.T) {
	require.True(t, IsRemote("https://example.com/a"))
	require.True(t, IsRemote("http://x"))
	require.False(t, IsRemote(".pdf"))
}
