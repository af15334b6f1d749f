// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_store_mock.go -package=mock

// VaultStore persists one opaque token under one fixed slot key.
//
// The store never interprets the token. Implementations must overwrite the
// slot wholesale on Put and must not leave a partially written token behind
// when Put fails.
type VaultStore interface {
	// Put replaces whatever the slot holds with token.
	// Failures wrap [ErrStoreUnavailable] or [ErrStoreQuotaExceeded].
	Put(ctx context.Context, token string) error

	// Get returns the stored token. An empty slot is reported with
	// found == false and a nil error.
	Get(ctx context.Context) (token string, found bool, err error)

	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error

	// Exists reports slot occupancy without reading the token into the
	// caller.
	Exists(ctx context.Context) (bool, error)
}

// ErrorClassificator maps a driver error onto one of the store sentinels.
type ErrorClassificator interface {
	Classify(err error) error
}
