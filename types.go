package main

import (
	"time"

	"github.com/branila/lzwcast/lzw"
)

// Request sent by a listener to ask the server for a file
type StreamRequest struct {
	File string `json:"file"` // File name relative to the served directory
}

// Announces a stream before its frames are sent
type StreamInfo struct {
	Name      string `json:"name"`      // File name as requested
	Size      int64  `json:"size"`      // Original size in bytes
	Chunks    int    `json:"chunks"`    // Number of binary frames that follow
	ChunkSize int    `json:"chunkSize"` // Uncompressed size of every frame but the last
	Format    string `json:"format"`    // Code layout of every frame ("fixed" or "packed")
	Error     string `json:"error,omitempty"`
}

// Per-frame decode statistics reported by the listener
type FrameStats struct {
	Index          int
	CompressedSize int
	DecodedSize    int
	Elapsed        time.Duration
}

// Application configuration
type Config struct {
	URL              string
	Addr             string
	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	HTTPTimeout      time.Duration
	FetchInterval    time.Duration
	ChunkSize        int
	MaxFrameSize     int
	Format           lzw.Format
}

func DefaultConfig() *Config {
	return &Config{
		URL:              "ws://localhost:8080/stream",
		Addr:             ":8080",
		HandshakeTimeout: 10 * time.Second,
		ReadTimeout:      10 * time.Second,
		WriteTimeout:     10 * time.Second,
		HTTPTimeout:      10 * time.Second,
		FetchInterval:    1 * time.Second,
		ChunkSize:        64 * 1024,
		MaxFrameSize:     4 * 1024 * 1024,
		Format:           lzw.FormatFixed16,
	}
}
