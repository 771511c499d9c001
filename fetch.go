package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Downloads remote inputs for the benchmark harness
type Fetcher struct {
	client   *http.Client
	config   *Config
	logger   *log.Logger
	mu       sync.Mutex
	lastCall time.Time
}

// Creates a new fetcher
func NewFetcher(config *Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
		config: config,
		logger: log.New(os.Stdout, "[Fetcher] ", log.LstdFlags),
	}
}

// Reports whether name should be fetched over HTTP
func IsRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// Downloads the body of url
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	f.logger.Printf("Fetched %s bytes from %s", FormatCount(int64(len(body))), url)
	return body, nil
}

// Downloads the body of url, keeping at least FetchInterval between requests
func (f *Fetcher) FetchWithRateLimit(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	wait := f.config.FetchInterval - time.Since(f.lastCall)
	if f.lastCall.IsZero() {
		wait = 0
	}
	f.lastCall = time.Now().Add(max(wait, 0))
	f.mu.Unlock()

	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return f.Fetch(ctx, url)
}
