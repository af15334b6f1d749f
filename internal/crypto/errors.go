// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by [KeyChainService] matches exactly
// one of them with [errors.Is].
var (
	// ErrDerivation marks malformed key-derivation input.
	ErrDerivation = errors.New("key derivation failed")

	// ErrCipher marks a malformed key or nonce handed to the cipher, or a
	// failure of the random source.
	ErrCipher = errors.New("cipher failed")

	// ErrAuthentication means the ciphertext did not authenticate under the
	// given key. A wrong passphrase and a corrupted blob are reported the same
	// way on purpose.
	ErrAuthentication = errors.New("message authentication failed")
)

// Concrete input errors.
var (
	ErrEmptyPassphrase    = fmt.Errorf("%w: empty passphrase", ErrDerivation)
	ErrInvalidSaltLength  = fmt.Errorf("%w: invalid salt length", ErrDerivation)
	ErrInvalidKeyLength   = fmt.Errorf("%w: invalid key length", ErrCipher)
	ErrInvalidNonceLength = fmt.Errorf("%w: invalid nonce length", ErrCipher)
	ErrRandomSource       = fmt.Errorf("%w: random source unavailable", ErrCipher)
)
