package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Serves files from a directory as streams of LZW compressed frames
type Server struct {
	config   *Config
	root     *os.Root
	codec    *LZWCodec
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// Creates a new server restricted to dir
func NewServer(config *Config, dir string) (*Server, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open served directory: %w", err)
	}

	return &Server{
		config: config,
		root:   root,
		codec:  NewLZWCodec(config.Format, 0),
		upgrader: websocket.Upgrader{
			HandshakeTimeout: config.HandshakeTimeout,
			ReadBufferSize:   1024,
			WriteBufferSize:  32 * 1024,
		},
		logger: log.New(os.Stdout, "[Server] ", log.LstdFlags),
	}, nil
}

// Releases the served directory
func (s *Server) Close() error {
	return s.root.Close()
}

// Returns the HTTP handler exposing the /stream endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

// Serves until ctx is cancelled or the listener fails
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.config.HandshakeTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Printf("Listening on %s", s.config.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	return group.Wait()
}

// Handles one listener: reads its request, then sends the stream info,
// every frame and a normal close
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

	var req StreamRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Printf("Invalid request from %s: %v", r.RemoteAddr, err)
		s.closeWith(conn, websocket.CloseUnsupportedData, "invalid request")
		return
	}

	if err := s.stream(conn, req); err != nil {
		s.logger.Printf("Streaming %q to %s failed: %v", req.File, r.RemoteAddr, err)
		s.closeWith(conn, websocket.CloseInternalServerErr, "stream failed")
		return
	}

	s.closeWith(conn, websocket.CloseNormalClosure, "")
}

func (s *Server) stream(conn *websocket.Conn, req StreamRequest) error {
	info := StreamInfo{
		Name:      req.File,
		ChunkSize: s.config.ChunkSize,
		Format:    s.codec.Format().String(),
	}

	data, err := s.readFile(req.File)
	if err != nil {
		info.Error = err.Error()
		return errors.Join(err, s.writeJSON(conn, info))
	}

	frames, err := s.codec.EncodeChunks(data, s.config.ChunkSize)
	if err != nil {
		info.Error = err.Error()
		return errors.Join(err, s.writeJSON(conn, info))
	}

	info.Size = int64(len(data))
	info.Chunks = len(frames)
	if err := s.writeJSON(conn, info); err != nil {
		return err
	}

	var compressed int64
	for i, frame := range frames {
		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			return fmt.Errorf("failed to send frame %d: %w", i, err)
		}
		compressed += int64(len(frame))
	}

	s.logger.Printf("Sent %s (%s -> %s bytes, %d frames)",
		req.File, FormatCount(info.Size), FormatCount(compressed), len(frames))
	return nil
}

func (s *Server) readFile(name string) ([]byte, error) {
	f, err := s.root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}

	return data, nil
}

func (s *Server) writeJSON(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := conn.WriteJSON(v); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (s *Server) closeWith(conn *websocket.Conn, code int, text string) {
	err := conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text),
		time.Now().Add(s.config.WriteTimeout),
	)
	if err != nil {
		s.logger.Printf("Error sending close message: %v", err)
	}
}
