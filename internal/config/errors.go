// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the view validators when required
// configuration groups are incomplete or invalid. Each is wrapped with the
// offending field.
var (
	// ErrInvalidVaultConfigs indicates invalid key-derivation or format
	// settings (for example, fewer than 100000 PBKDF2 iterations).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidAdapterConfigs indicates invalid Pinata settings
	// (for example, missing URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or a SQL backend without DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid relay settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker settings
	// (for example, a negative pool size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
