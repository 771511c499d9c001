package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Read limit applied before the stream info sets the real one
const streamInfoReadLimit = 64 * 1024

var (
	// ErrStreamRejected is returned when the server answers with an error instead of frames.
	ErrStreamRejected = errors.New("stream rejected by server")
	// ErrFrameTooLarge is returned when the announced chunk size exceeds MaxFrameSize.
	ErrFrameTooLarge = errors.New("frame exceeds MaxFrameSize")
	// ErrIncompleteStream is returned when the reassembled data does not match the stream info.
	ErrIncompleteStream = errors.New("incomplete stream")
)

// Handles WebSocket communication
type WSClient struct {
	config  *Config
	conn    *websocket.Conn
	logger  *log.Logger
	decoder *LZWCodec
	out     io.Writer

	info       *StreamInfo
	data       bytes.Buffer
	frames     int
	compressed int64
	decodeTime time.Duration
}

// Creates a new WebSocket client
func NewWSClient(config *Config, decoder *LZWCodec, out io.Writer) *WSClient {
	return &WSClient{
		config:  config,
		logger:  log.New(os.Stdout, "[WSClient] ", log.LstdFlags),
		decoder: decoder,
		out:     out,
	}
}

// Dials the stream endpoint
func (ws *WSClient) Connect() error {
	dialer := &websocket.Dialer{HandshakeTimeout: ws.config.HandshakeTimeout}
	conn, _, err := dialer.Dial(ws.config.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", ws.config.URL, err)
	}

	// Until the stream info arrives only small text messages are expected
	conn.SetReadLimit(streamInfoReadLimit)
	ws.conn = conn
	ws.logger.Printf("Connected to %s", ws.config.URL)
	return nil
}

// Says goodbye to the server and drops the connection
func (ws *WSClient) Close() error {
	if ws.conn == nil {
		return nil
	}

	bye := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := ws.conn.WriteMessage(websocket.CloseMessage, bye); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		ws.logger.Printf("Close handshake failed: %v", err)
	}
	return ws.conn.Close()
}

// Sends v as a JSON text message
func (ws *WSClient) SendJSON(v any) error {
	if ws.conn == nil {
		return fmt.Errorf("not connected")
	}

	ws.conn.SetWriteDeadline(time.Now().Add(ws.config.WriteTimeout))
	if err := ws.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return nil
}

// Reads messages from the WebSocket connection until the server closes
// the stream
func (ws *WSClient) ReadMessages(ctx context.Context) error {
	if ws.conn == nil {
		return fmt.Errorf("connection not established")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			ws.conn.SetReadDeadline(time.Now().Add(ws.config.ReadTimeout))

			// Wait for a message from the WebSocket
			messageType, message, err := ws.conn.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					return ws.verify()
				}

				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure,
				) {
					return fmt.Errorf("unexpected WebSocket error: %w", err)
				}

				return err
			}

			// Frames cannot be skipped: the reassembled data would be wrong
			if err := ws.processMessage(messageType, message); err != nil {
				return err
			}
		}
	}
}

// Processes a received message
func (ws *WSClient) processMessage(messageType int, message []byte) error {
	switch messageType {
	case websocket.TextMessage:
		var info StreamInfo
		if err := json.Unmarshal(message, &info); err != nil {
			return fmt.Errorf("failed to unmarshal stream info: %w", err)
		}
		if info.Error != "" {
			return fmt.Errorf("%w: %s", ErrStreamRejected, info.Error)
		}
		if info.Format != ws.decoder.Format().String() {
			return fmt.Errorf("server sends %q codes, expected %q", info.Format, ws.decoder.Format())
		}

		if info.ChunkSize <= 0 || (ws.config.MaxFrameSize > 0 && info.ChunkSize > ws.config.MaxFrameSize) {
			return fmt.Errorf("%w: server chunks are %d bytes, limit is %d",
				ErrFrameTooLarge, info.ChunkSize, ws.config.MaxFrameSize)
		}
		ws.conn.SetReadLimit(int64(ws.decoder.Format().MaxEncodedSize(info.ChunkSize)))

		ws.info = &info
		DisplayStreamInfo(ws.out, &info)
		return nil

	case websocket.BinaryMessage:
		if ws.info == nil {
			return fmt.Errorf("frame received before stream info")
		}

		var sw Stopwatch
		sw.Start()
		decoded, err := ws.decoder.Decode(message)
		elapsed := sw.Stop()
		if err != nil {
			return fmt.Errorf("failed to decode frame %d: %w", ws.frames, err)
		}

		ws.data.Write(decoded)
		ws.compressed += int64(len(message))
		ws.decodeTime += elapsed

		DisplayFrame(ws.out, ws.info, FrameStats{
			Index:          ws.frames,
			CompressedSize: len(message),
			DecodedSize:    len(decoded),
			Elapsed:        elapsed,
		})
		ws.frames++
		return nil

	default:
		return nil
	}
}

// Checks the reassembled data against the announced stream info
func (ws *WSClient) verify() error {
	if ws.info == nil {
		return fmt.Errorf("%w: no stream info received", ErrIncompleteStream)
	}
	if ws.frames != ws.info.Chunks || int64(ws.data.Len()) != ws.info.Size {
		return fmt.Errorf("%w: got %d frames and %d bytes, expected %d frames and %d bytes",
			ErrIncompleteStream, ws.frames, ws.data.Len(), ws.info.Chunks, ws.info.Size)
	}
	return nil
}

// Reassembled data received so far
func (ws *WSClient) Data() []byte {
	return ws.data.Bytes()
}

// Summary of the received stream
func (ws *WSClient) Report() Report {
	r := Report{
		OriginalSize:   int64(ws.data.Len()),
		CompressedSize: ws.compressed,
		DecompressTime: ws.decodeTime,
	}
	if ws.info != nil {
		r.Name = ws.info.Name
	}
	return r
}
