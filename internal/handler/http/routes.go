// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getVersion)

	router.Group(func(r chi.Router) {
		if h.cfg.RateLimit > 0 {
			r.Use(httprate.Limit(
				h.cfg.RateLimit,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(h.tooManyRequests),
			))
		}
		r.Use(h.withMaxBody)

		r.Post("/api/upload", h.upload)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
