// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/app"
	"github.com/MKhiriev/go-jwt-vault/internal/codec"
	"github.com/MKhiriev/go-jwt-vault/internal/crypto"
	"github.com/MKhiriev/go-jwt-vault/internal/store"
	"github.com/MKhiriev/go-jwt-vault/internal/validators"
)

var serviceErrorKinds = []error{
	ErrValidation, ErrDerivation, ErrCipher, ErrAuth, ErrFormat, ErrStore, ErrEmptyVault,
	ErrNoFile, ErrUploadUnauthorized, ErrUploadFailed,
}

// mapVaultError translates a crypto, codec, store or validator error into a
// service error kind. Errors that already carry a kind, and errors it does
// not know (context, worker pool), are returned unchanged.
func mapVaultError(err error) error {
	if err == nil || isServiceError(err) {
		return err
	}

	switch {
	case errors.Is(err, validators.ErrInvalidSecretFormat):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, codec.ErrFormat):
		return fmt.Errorf("%w: %w", ErrFormat, err)
	case errors.Is(err, crypto.ErrAuthentication):
		return fmt.Errorf("%w: %w", ErrAuth, err)
	case errors.Is(err, crypto.ErrDerivation):
		return fmt.Errorf("%w: %w", ErrDerivation, err)
	case errors.Is(err, crypto.ErrCipher):
		return fmt.Errorf("%w: %w", ErrCipher, err)
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, store.ErrStoreQuotaExceeded):
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	return err
}

// mapAdapterError translates the Pinata adapter's error into a service error.
func mapAdapterError(err error) error {
	if err == nil || isServiceError(err) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUploadUnauthorized, err)
	case errors.Is(err, adapter.ErrEmptyToken):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, adapter.ErrEmptyFile):
		return fmt.Errorf("%w: %w", ErrNoFile, err)
	case errors.Is(err, adapter.ErrUpstream), errors.Is(err, adapter.ErrMissingCID):
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return err
}

func isServiceError(err error) bool {
	for _, kind := range serviceErrorKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// UserMessage returns the text shown to the user for err. It never includes
// secret material: the wording depends only on the error kind.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuth):
		return app.MsgAuthFailed
	case errors.Is(err, ErrValidation):
		return app.MsgInvalidSecret
	case errors.Is(err, crypto.ErrEmptyPassphrase):
		return app.MsgEmptyPassphrase
	case errors.Is(err, ErrDerivation), errors.Is(err, ErrCipher):
		return app.MsgEncryptionFailed
	case errors.Is(err, ErrFormat):
		return app.MsgCorruptedVault
	case errors.Is(err, ErrEmptyVault):
		return app.MsgEmptyVault
	case errors.Is(err, store.ErrStoreQuotaExceeded):
		return app.MsgStorageFull
	case errors.Is(err, ErrStore):
		return app.MsgStorageUnavailable
	case errors.Is(err, ErrNoFile):
		return app.MsgNoFile
	case errors.Is(err, ErrUploadUnauthorized):
		return app.MsgPinataAuthFailed
	case errors.Is(err, adapter.ErrMissingCID):
		return app.MsgPinataCIDNotFound
	case errors.Is(err, ErrUploadFailed):
		return app.MsgPinataUploadFailed
	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgTimeout
	case errors.Is(err, context.Canceled):
		return app.MsgPromptCancelled
	default:
		return app.MsgInternalError
	}
}
