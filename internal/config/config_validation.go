// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-jwt-vault/internal/validators"
)

// MinKDFIterations is the lowest accepted PBKDF2 work factor.
const MinKDFIterations = 100_000

func (cfg *ClientConfig) validate() error {
	if err := cfg.Vault.validate(); err != nil {
		return err
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendFile:
		if cfg.Storage.FilePath == "" {
			return fmt.Errorf("%w: file backend needs a path", ErrInvalidStorageConfigs)
		}
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Workers.PoolSize < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *RelayConfig) validate() error {
	if err := cfg.Vault.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: upload limit must be positive", ErrInvalidServerConfigs)
	}

	return cfg.Adapter.validate()
}

func (v ClientVault) validate() error {
	if v.KDFIterations < MinKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d below minimum %d", ErrInvalidVaultConfigs, v.KDFIterations, MinKDFIterations)
	}
	if v.SlotKey == "" {
		return fmt.Errorf("%w: empty slot key", ErrInvalidVaultConfigs)
	}
	if _, err := validators.NewSecretValidator(v.SecretFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVaultConfigs, err)
	}

	return nil
}

func (a ClientAdapter) validate() error {
	if a.PinataURL == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
