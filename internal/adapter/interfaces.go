// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the services the vault
// hands its secret to.
//
// The primary abstraction is [PinataAdapter], which pins a file to IPFS
// through the Pinata API using the user's JWT as a bearer token. The JWT is
// attached to exactly one request and never stored by the adapter.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-jwt-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pinata_adapter_mock.go -package=mock

// PinataAdapter uploads files to Pinata.
type PinataAdapter interface {
	// PinFile posts file as multipart field "file" to /pinning/pinFileToIPFS
	// with "Authorization: Bearer <jwt>". On success it returns the CID that
	// Pinata assigned. Returns [ErrUnauthorized] when Pinata rejects the
	// token, [ErrUpstream] for any other non-2xx answer or transport failure,
	// and [ErrMissingCID] when the answer carries no IpfsHash.
	PinFile(ctx context.Context, jwt string, file models.UploadFile) (models.UploadResult, error)
}
