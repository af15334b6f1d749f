// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyToken   = errors.New("pinata token is empty")
	ErrEmptyFile    = errors.New("upload file is empty")
	ErrUnauthorized = errors.New("pinata authentication failed")
	ErrUpstream     = errors.New("pinata upload failed")
	ErrMissingCID   = errors.New("CID not found in pinata response")
)
