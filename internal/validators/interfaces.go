// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the format predicates a secret must satisfy
// before it is encrypted and after it is decrypted.
//
// Core concepts:
//   - SecretValidator: a cheap structural sanity check on a credential string.
//     It is not a security boundary: passing it says nothing about whether
//     the credential is genuine or still valid.
//
// Usage patterns:
//  1. Pick an implementation with [NewSecretValidator] from configuration.
//  2. Inject it into the vault session, which calls Validate on both sides
//     of the cipher.
//
// Keeping the predicate behind an interface means the vault is not tied to
// one credential format.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_validator_mock.go -package=mock

// SecretValidator decides whether a string looks like the credential the
// vault is meant to hold.
type SecretValidator interface {
	// Validate returns nil when secret has the expected shape, or an error
	// wrapping [ErrInvalidSecretFormat].
	Validate(secret string) error
}
