// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-jwt-vault/internal/logger"
)

type sqlVaultStore struct {
	db      *DB
	slotKey string
	now     func() time.Time
	logger  *logger.Logger
}

// NewSQLVaultStore returns a [VaultStore] that keeps slotKey as one row of
// the vault_slots table. The schema must already be migrated.
func NewSQLVaultStore(db *DB, slotKey string, log *logger.Logger) (VaultStore, error) {
	if slotKey == "" {
		return nil, ErrEmptySlotKey
	}

	return &sqlVaultStore{
		db:      db,
		slotKey: slotKey,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  log,
	}, nil
}

func (s *sqlVaultStore) Put(ctx context.Context, token string) error {
	query, args, err := buildUpsertSlotQuery(s.db.placeholder, s.slotKey, token, s.now())
	if err != nil {
		return fmt.Errorf("%w: build upsert query: %w", ErrStoreUnavailable, err)
	}

	// single statement: the row is either fully replaced or left untouched
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqlVaultStore.Put").Msg("error writing vault slot")
		return s.db.classify("put slot", err)
	}

	return nil
}

func (s *sqlVaultStore) Get(ctx context.Context) (string, bool, error) {
	query, args, err := buildSelectSlotQuery(s.db.placeholder, s.slotKey)
	if err != nil {
		return "", false, fmt.Errorf("%w: build select query: %w", ErrStoreUnavailable, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqlVaultStore.Get").Msg("error reading vault slot")
		return "", false, s.db.classify("get slot", err)
	}

	return token, true, nil
}

func (s *sqlVaultStore) Delete(ctx context.Context) error {
	query, args, err := buildDeleteSlotQuery(s.db.placeholder, s.slotKey)
	if err != nil {
		return fmt.Errorf("%w: build delete query: %w", ErrStoreUnavailable, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqlVaultStore.Delete").Msg("error deleting vault slot")
		return s.db.classify("delete slot", err)
	}

	return nil
}

func (s *sqlVaultStore) Exists(ctx context.Context) (bool, error) {
	query, args, err := buildExistsSlotQuery(s.db.placeholder, s.slotKey)
	if err != nil {
		return false, fmt.Errorf("%w: build exists query: %w", ErrStoreUnavailable, err)
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqlVaultStore.Exists").Msg("error probing vault slot")
		return false, s.db.classify("exists slot", err)
	}

	return true, nil
}
