// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// UploadFile is a single file handed to the pinning service.
type UploadFile struct {
	// Name is sent as the multipart file name.
	Name string
	// Content is read exactly once during the upload.
	Content io.Reader
}

// UploadResult is what the pinning service reports for a stored file.
type UploadResult struct {
	// CID is the IPFS content identifier ("IpfsHash" on the wire).
	CID string `json:"cid"`
	// PinSize is the pinned size in bytes.
	PinSize int64 `json:"pin_size,omitempty"`
	// Timestamp is the pin time reported by the service.
	Timestamp time.Time `json:"timestamp,omitempty"`
}
