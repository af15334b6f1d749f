// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/migrations"
)

// SQL dialect names, as understood by goose.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// DB bundles a connection pool with everything dialect-specific: the error
// classifier and the squirrel placeholder format.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations for the DB's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// classify wraps err with the store sentinel chosen by the dialect's
// classifier, keeping the driver error in the chain.
func (db *DB) classify(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", db.errorClassificator.Classify(err), op, err)
}
