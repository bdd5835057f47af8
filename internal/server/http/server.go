package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server is a wrapper around http.Server.
type Server struct {
	server *http.Server
	err    chan error
}

// NewServer creates a new Server instance and starts listening.
func NewServer(h http.Handler, address string) *Server {
	s := &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           h,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		err: make(chan error, 1),
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.err <- err
		}
		close(s.err)
	}()
}

// Err returns a channel with errors from the server.
// The channel is closed once the server stops.
func (s *Server) Err() <-chan error {
	return s.err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
