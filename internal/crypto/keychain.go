// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-jwt-vault/models"
)

const (
	// MinIterations is the lowest PBKDF2 work factor the vault accepts.
	MinIterations = 100_000

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int

	// random is crypto/rand.Reader outside of tests.
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] that runs PBKDF2 with the
// given number of iterations. Values below [MinIterations] are raised to it.
func NewKeyChainService(iterations int) KeyChainService {
	if iterations < MinIterations {
		iterations = MinIterations
	}

	return &keyChainService{
		iterations: iterations,
		random:     rand.Reader,
	}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return k.readRandom(models.SaltSize)
}

// GenerateNonce implements [KeyChainService].
func (k *keyChainService) GenerateNonce() ([]byte, error) {
	return k.readRandom(models.NonceSize)
}

// DeriveKey implements [KeyChainService]. The cost is paid on every call and
// is never cached: it is the brute-force deterrent.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) != models.SaltSize {
		return nil, ErrInvalidSaltLength
	}

	return pbkdf2.Key([]byte(passphrase), salt, k.iterations, KeySize, sha256.New), nil
}

// Seal implements [KeyChainService] with AES-256-GCM and no associated data.
func (k *keyChainService) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService]. Input shorter than the tag is treated
// as an authentication failure, not as a malformed argument.
func (k *keyChainService) Open(key, nonce, sealed []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.Overhead() {
		return nil, ErrAuthentication
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

func (k *keyChainService) readRandom(size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(k.random, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return buf, nil
}

// newGCM validates lengths before touching the block cipher so that callers
// get typed errors instead of the stdlib's generic ones.
func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != models.NonceSize {
		return nil, ErrInvalidNonceLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrCipher, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrCipher, err)
	}

	return gcm, nil
}
