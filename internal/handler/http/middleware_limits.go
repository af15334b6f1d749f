// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-jwt-vault/internal/app"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
)

// withMaxBody caps the request body at MaxUploadBytes. Multipart parsing
// fails with *http.MaxBytesError once the cap is crossed.
func (h *Handler) withMaxBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.MaxUploadBytes > 0 {
			if r.ContentLength > h.cfg.MaxUploadBytes {
				utils.WriteMessage(w, errBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
}
