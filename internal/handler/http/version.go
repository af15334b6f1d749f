// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-jwt-vault/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
