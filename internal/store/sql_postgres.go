// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-jwt-vault/internal/logger"
)

// NewConnectPostgres opens a pgx-backed pool for dsn and pings it.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: open postgres: %w", ErrStoreUnavailable, err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: ping postgres: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Quota codes:
//   - Class 53: insufficient resources (disk full, out of memory, too many connections)
//   - Class 54: program limit exceeded (e.g. value too large)
//
// Any other code, and any non-PostgreSQL error, is [ErrStoreUnavailable].
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsInsufficientResources(pgErr.Code) || pgerrcode.IsProgramLimitExceeded(pgErr.Code) {
			return ErrStoreQuotaExceeded
		}
	}

	return ErrStoreUnavailable
}
