// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// onListen, when set, is called with the bound address once the
	// listener is up.
	onListen func(addr net.Addr)

	logger *logger.Logger
}

func NewServer(handler http.Handler, cfg config.RelayServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}

	return &server{
		httpServer:      newHTTPServer(handler, cfg),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("error starting listener: %w", err)
	}
	if s.onListen != nil {
		s.onListen(ln.Addr())
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("launching HTTP server")
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
