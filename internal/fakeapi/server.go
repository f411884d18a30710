package fakeapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs the fake API over HTTP. It implements workers.Worker: Run
// returns once the listener is bound and serving continues in the
// background until Stop.
type Server struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
	serving  sync.WaitGroup
	stopOnce sync.Once

	logger *logger.Logger
}

// NewServer builds the seeded store, the handler and the HTTP server for cfg.
func NewServer(cfg config.FakeAPI, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating fake api server...")

	store, err := NewStore(cfg.Email, cfg.Password)
	if err != nil {
		return nil, err
	}

	return &Server{
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           NewHandler(store, cfg, logger).Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Listen binds the configured address. Run calls it when needed; calling it
// first lets the caller learn the bound address (e.g. for ":0").
func (s *Server) Listen() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr(), nil
	}

	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return nil, err
	}
	s.listener = l
	return l.Addr(), nil
}

// Run starts serving in a background goroutine.
func (s *Server) Run() {
	addr, err := s.Listen()
	if err != nil {
		s.logger.Err(err).Str("address", s.server.Addr).Msg("error listening")
		return
	}

	s.logger.Info().Str("address", addr.String()).Msg("launching fake api")

	s.serving.Add(1)
	go func() {
		defer s.serving.Done()
		if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Err(err).Msg("fake api Serve")
		}
	}()
}

// Stop shuts the server down gracefully and waits for serving to end.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Err(err).Msg("fake api Shutdown")
		}
		s.serving.Wait()

		// a listener bound by Listen without Run is not owned by http.Server
		s.mu.Lock()
		if s.listener != nil {
			_ = s.listener.Close()
		}
		s.mu.Unlock()

		s.logger.Info().Msg("fake api shut down gracefully")
	})
}
