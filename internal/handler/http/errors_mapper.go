// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/app"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
)

// writeUploadError answers the way the browser client expects: a JSON
// {"message", "details"} body with the status of the failure class.
func writeUploadError(w http.ResponseWriter, err error) {
	resp := utils.MessageResponse{Message: app.MsgUnexpectedUploadFail}
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrNoFile):
		resp.Message, status = app.MsgMissingFile, http.StatusBadRequest
	case errors.Is(err, adapter.ErrEmptyToken):
		resp.Message, status = app.MsgMissingJWT, http.StatusBadRequest
	case errors.Is(err, service.ErrValidation):
		resp.Message, status = app.MsgInvalidJWTFormat, http.StatusBadRequest
	case errors.Is(err, errBodyTooLarge):
		resp.Message, status = errBodyTooLarge.Error(), http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUploadUnauthorized):
		resp.Message, status = app.MsgPinataAuthFailed, http.StatusUnauthorized
		resp.Details = textAfter(err, adapter.ErrUnauthorized.Error()+": ")
	case errors.Is(err, adapter.ErrMissingCID):
		resp.Message, status = app.MsgPinataCIDNotFound, http.StatusBadGateway
	case errors.Is(err, service.ErrUploadFailed):
		// "pinata upload failed (502): <body>" -> "Pinata upload failed (502): <body>"
		resp.Message, status = app.MsgPinataUploadFailed+textAfter(err, adapter.ErrUpstream.Error()), http.StatusBadGateway
	}

	_, _ = utils.WriteJSON(w, resp, status)
}

// textAfter extracts what follows marker in the error text, which for
// adapter errors is the upstream status and response body.
func textAfter(err error, marker string) string {
	msg := err.Error()
	if idx := strings.Index(msg, marker); idx != -1 {
		return msg[idx+len(marker):]
	}
	return ""
}
