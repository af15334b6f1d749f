// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec turns a [models.VaultBlob] into the single text token kept in
// the vault slot and back.
//
// Layout of the decoded token, all lengths fixed by protocol:
//
//	salt (16) ‖ nonce (12) ‖ ciphertext ‖ tag (16)
//
// The bytes are encoded with standard base64 so any text-only store can
// hold them.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-jwt-vault/models"
)

// ErrFormat is returned for any token that cannot be split into a blob.
var ErrFormat = errors.New("malformed vault token")

// Encode concatenates salt, nonce and ciphertext in that order and returns
// the base64 token. Encode does not check field lengths; the session always
// passes values produced by the key chain.
func Encode(blob models.VaultBlob) string {
	raw := make([]byte, 0, len(blob.Salt)+len(blob.Nonce)+len(blob.Ciphertext))
	raw = append(raw, blob.Salt...)
	raw = append(raw, blob.Nonce...)
	raw = append(raw, blob.Ciphertext...)

	return base64.StdEncoding.EncodeToString(raw)
}

// Decode splits token back into its fields. It never panics: empty input,
// invalid base64 and anything shorter than salt+nonce after decoding all
// return an error wrapping [ErrFormat].
//
// The returned slices do not alias each other's backing array beyond the
// decoded buffer, so callers may zero the ciphertext safely.
func Decode(token string) (models.VaultBlob, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.VaultBlob{}, fmt.Errorf("%w: empty token", ErrFormat)
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return models.VaultBlob{}, fmt.Errorf("%w: decode base64: %w", ErrFormat, err)
	}

	if len(raw) < models.HeaderSize {
		return models.VaultBlob{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrFormat, len(raw), models.HeaderSize)
	}

	return models.VaultBlob{
		Salt:       raw[:models.SaltSize:models.SaltSize],
		Nonce:      raw[models.SaltSize:models.HeaderSize:models.HeaderSize],
		Ciphertext: raw[models.HeaderSize:],
	}, nil
}
