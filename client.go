package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Client orchestrates a listening session
type Client struct {
	config  *Config
	ws      *WSClient
	decoder *LZWCodec
	out     io.Writer
	logger  *log.Logger
}

// Creates a new client with all dependencies
func NewClient(config *Config, out io.Writer) *Client {
	decoder := NewLZWCodec(config.Format, config.MaxFrameSize)
	ws := NewWSClient(config, decoder, out)

	return &Client{
		config:  config,
		ws:      ws,
		decoder: decoder,
		out:     out,
		logger:  log.New(os.Stdout, "[Client] ", log.LstdFlags),
	}
}

// Requests file, waits for the whole stream and returns the reassembled data
func (c *Client) Run(ctx context.Context, file string) ([]byte, error) {
	if err := c.ws.Connect(); err != nil {
		return nil, err
	}
	defer c.ws.Close()

	// Send the stream request
	if err := c.ws.SendJSON(StreamRequest{File: file}); err != nil {
		return nil, fmt.Errorf("failed to send stream request: %w", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Channel for interrupt signals
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// Channel for read errors
	readErr := make(chan error, 1)

	// Start reading messages in a goroutine
	go func() {
		readErr <- c.ws.ReadMessages(ctx)
	}()

	PrintWelcomeMessage(c.out)

	// Wait for either an interrupt signal or the end of the stream
	select {
	case err := <-readErr:
		if err != nil {
			return nil, fmt.Errorf("read error: %w", err)
		}
		c.logger.Println("Stream closed by server")
	case <-interrupt:
		c.logger.Println("Interrupt received, shutting down...")
		cancel() // Cancel the context to stop reading

		// Wait a bit for graceful shutdown
		select {
		case <-readErr:
		case <-time.After(5 * time.Second):
			c.logger.Println("Timeout waiting for graceful shutdown")
		}
		return nil, context.Canceled
	}

	DisplayReport(c.out, c.ws.Report())
	return c.ws.Data(), nil
}

// Reports whether err was caused by an interrupt
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
