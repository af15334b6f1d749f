// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned (wrapped) by every [VaultStore] implementation.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned when the backend cannot be read or
	// written: missing permissions, a closed connection, a corrupt state file.
	ErrStoreUnavailable = errors.New("vault storage unavailable")

	// ErrStoreQuotaExceeded is returned when the backend refuses the write
	// for lack of space or resources.
	ErrStoreQuotaExceeded = errors.New("vault storage quota exceeded")
)

// Construction errors.
var (
	// ErrEmptySlotKey is returned when a store is built without a slot key.
	ErrEmptySlotKey = errors.New("vault slot key is empty")

	// ErrUnknownBackend is returned by [NewClientStorages] for a backend name
	// it does not recognise.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
