// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-jwt-vault/models"
)

// VaultSession is the only entry point to the vault. It owns no secret
// material between calls: passphrases and plaintext secrets are passed in,
// used, wiped where possible and dropped.
type VaultSession interface {
	// SaveSecret validates secret, encrypts it under a key derived from
	// passphrase with a fresh salt and nonce, and replaces whatever the slot
	// held. A secret that fails validation never reaches the store.
	SaveSecret(ctx context.Context, secret, passphrase string) error

	// UseSecret decrypts the stored secret for a single use. A wrong
	// passphrase and a tampered blob both yield ErrAuth.
	UseSecret(ctx context.Context, passphrase string) (string, error)

	// Clear empties the slot. Clearing an empty slot succeeds.
	Clear(ctx context.Context) error

	// IsConfigured reports whether the slot holds a blob. Storage failures
	// are logged and reported as false.
	IsConfigured(ctx context.Context) bool

	// Subscribe registers listener for state changes and returns a function
	// that removes it. The returned function may be called more than once.
	Subscribe(listener models.StateListener) (unsubscribe func())
}

// PinningService sends a file to Pinata with a caller-supplied token.
type PinningService interface {
	// Pin validates jwt with the configured secret format and uploads file.
	Pin(ctx context.Context, jwt string, file models.UploadFile) (models.UploadResult, error)
}

// UploadService uploads files with the secret kept in the vault.
type UploadService interface {
	// Upload unlocks the vault with passphrase and pins file with the
	// recovered secret. The secret lives only for the duration of the call.
	Upload(ctx context.Context, passphrase string, file models.UploadFile) (models.UploadResult, error)
}

// AppInfoService reports the build the process was compiled from.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
