// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
)

// ClientStorages groups the storage the client runs on. The VaultStore is the
// only repository; closer releases whatever the backend holds open.
type ClientStorages struct {
	VaultStore VaultStore

	closer func() error
}

// Close releases backend resources. It is safe to call on storages that
// hold nothing open.
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}

// NewClientStorages builds the [VaultStore] selected by cfg.Backend, bound to
// slotKey. SQL backends are connected and migrated before returning.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, slotKey string, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendMemory:
		return &ClientStorages{VaultStore: NewMemoryVaultStore()}, nil

	case config.BackendFile:
		vs, err := NewFileVaultStore(cfg.FilePath, slotKey)
		if err != nil {
			return nil, err
		}
		return &ClientStorages{VaultStore: vs}, nil

	case config.BackendSQLite, config.BackendPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Backend == config.BackendSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		vs, err := NewSQLVaultStore(db, slotKey, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		return &ClientStorages{VaultStore: vs, closer: db.Close}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
