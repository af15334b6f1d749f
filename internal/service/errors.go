// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Vault error kinds. Every error returned by [VaultSession] matches at most
// one of them with errors.Is, and also matches the lower-layer sentinel it
// was translated from.
var (
	ErrValidation = errors.New("secret validation failed")
	ErrDerivation = errors.New("key derivation failed")
	ErrCipher     = errors.New("encryption failed")
	ErrAuth       = errors.New("authentication failed")
	ErrFormat     = errors.New("malformed vault data")
	ErrStore      = errors.New("vault storage failed")
	ErrEmptyVault = errors.New("vault is empty")
)

// Upload error kinds.
var (
	ErrNoFile             = errors.New("no file provided")
	ErrUploadUnauthorized = errors.New("upload rejected the token")
	ErrUploadFailed       = errors.New("upload failed")
)
