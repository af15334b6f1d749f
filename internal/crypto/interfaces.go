// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds every cryptographic primitive the vault needs.
// It knows nothing about storage, encoding or what the secret is for.
//
// Flow for one write:
//
//	salt, nonce = GenerateSalt(), GenerateNonce()
//	key         = DeriveKey(passphrase, salt)
//	sealed      = Seal(key, nonce, secret)
//
// and for one read:
//
//	key    = DeriveKey(passphrase, storedSalt)
//	secret = Open(key, storedNonce, sealed)
type KeyChainService interface {
	// GenerateSalt returns 16 fresh random bytes. Salts are not secret and
	// are stored next to the ciphertext.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns 12 fresh random bytes for one AES-GCM seal.
	GenerateNonce() ([]byte, error)

	// DeriveKey stretches passphrase with PBKDF2-HMAC-SHA256 into a 32-byte
	// key. It is deterministic for a given (passphrase, salt) and fails only
	// on an empty passphrase or a salt that is not 16 bytes long.
	DeriveKey(passphrase string, salt []byte) ([]byte, error)

	// Seal encrypts and authenticates plaintext. The result is
	// ciphertext ‖ tag.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open verifies and decrypts ciphertext ‖ tag. Any tampering, truncation
	// or wrong key yields ErrAuthentication and no plaintext.
	Open(key, nonce, sealed []byte) ([]byte, error)
}
