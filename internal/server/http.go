// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-jwt-vault/internal/config"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
}

func newHTTPServer(handler http.Handler, cfg config.RelayServer) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
			IdleTimeout:       2 * cfg.RequestTimeout,
		},
	}
}

// listen binds the address up front so that bind errors are reported
// synchronously.
func (h *httpServer) listen() (net.Listener, error) {
	return net.Listen("tcp", h.server.Addr)
}

func (h *httpServer) serve(ln net.Listener) error {
	return h.server.Serve(ln)
}

func (h *httpServer) shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
