// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
	"github.com/MKhiriev/go-jwt-vault/models"
)

// multipartMemory is how much of a multipart body is kept in memory before
// parts spill to temp files.
const multipartMemory = 8 << 20

type uploadResponse struct {
	CID string `json:"cid"`
}

// upload handles POST /api/upload. The token comes from the "jwt" form field
// or, when that is empty, from an "Authorization: Bearer" header. It is
// forwarded to Pinata and never logged.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeUploadError(w, errBodyTooLarge)
			return
		}
		log.Debug().Err(err).Msg("request is not a multipart form")
		writeUploadError(w, service.ErrNoFile)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeUploadError(w, service.ErrNoFile)
		return
	}
	defer file.Close()

	jwt := strings.TrimSpace(r.FormValue("jwt"))
	if jwt == "" {
		if authorization := r.Header.Get("Authorization"); authorization != "" {
			jwt, _ = utils.ParseBearerToken(authorization)
		}
	}
	if jwt == "" {
		writeUploadError(w, adapter.ErrEmptyToken)
		return
	}

	result, err := h.services.PinningService.Pin(r.Context(), jwt, models.UploadFile{
		Name:    header.Filename,
		Content: file,
	})
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Int64("size", header.Size).Msg("upload failed")
		writeUploadError(w, err)
		return
	}

	log.Info().Str("file", header.Filename).Str("cid", result.CID).Msg("upload pinned")
	_, _ = utils.WriteJSON(w, uploadResponse{CID: result.CID}, http.StatusOK)
}
