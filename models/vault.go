// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Fixed byte lengths of the vault blob layout.
const (
	// SaltSize is the length of the PBKDF2 salt stored at the head of a blob.
	SaltSize = 16
	// NonceSize is the length of the AES-GCM nonce that follows the salt.
	NonceSize = 12
	// TagSize is the length of the GCM authentication tag appended to the
	// ciphertext.
	TagSize = 16
	// HeaderSize is the minimal decoded length of a blob: salt ‖ nonce.
	HeaderSize = SaltSize + NonceSize
)

// VaultBlob is the decoded form of the single token persisted in the vault
// slot. Ciphertext carries the GCM tag at its tail.
//
// A VaultBlob never holds plaintext, keys or passphrases.
type VaultBlob struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// VaultState is delivered to session listeners after every successful
// save or clear.
type VaultState struct {
	// Configured reports whether the slot holds a blob after the change.
	Configured bool
	// ChangedAt is the moment the change was committed to the store.
	ChangedAt time.Time
}

// StateListener is called synchronously after every successful save or
// clear. It must not call back into the session that notifies it.
type StateListener func(state VaultState)
