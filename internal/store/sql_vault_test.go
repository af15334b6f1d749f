// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-jwt-vault/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a postgres-flavoured DB.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSQLStore(t *testing.T) (VaultStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	vs, err := NewSQLVaultStore(newDBFromSQL(db), "pinata-jwt-encrypted", logger.Nop())
	require.NoError(t, err)
	vs.(*sqlVaultStore).now = func() time.Time { return fixedNow }
	return vs, mock
}

const (
	upsertSQL = `INSERT INTO vault_slots (slot_key,token,updated_at) VALUES ($1,$2,$3) ON CONFLICT (slot_key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`
	selectSQL = `SELECT token FROM vault_slots WHERE slot_key = $1`
	existsSQL = `SELECT 1 FROM vault_slots WHERE slot_key = $1 LIMIT 1`
	deleteSQL = `DELETE FROM vault_slots WHERE slot_key = $1`
)

func TestNewSQLVaultStore_EmptySlotKey(t *testing.T) {
	db, _ := newTestDB(t)
	_, err := NewSQLVaultStore(newDBFromSQL(db), "", logger.Nop())
	assert.ErrorIs(t, err, ErrEmptySlotKey)
}

func TestSQLVaultStore_Put(t *testing.T) {
	vs, mock := newTestSQLStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("pinata-jwt-encrypted", "token", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, vs.Put(context.Background(), "token"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLVaultStore_PutQuotaExceeded(t *testing.T) {
	vs, mock := newTestSQLStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DiskFull})

	err := vs.Put(context.Background(), "token")
	assert.ErrorIs(t, err, ErrStoreQuotaExceeded)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "driver error must stay in the chain")
}

func TestSQLVaultStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantToken string
		wantFound bool
		wantErr   error
	}{
		{
			name: "occupied slot",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
					WithArgs("pinata-jwt-encrypted").
					WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("stored"))
			},
			wantToken: "stored",
			wantFound: true,
		},
		{
			name: "empty slot",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
					WithArgs("pinata-jwt-encrypted").
					WillReturnRows(sqlmock.NewRows([]string{"token"}))
			},
		},
		{
			name: "connection lost",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, mock := newTestSQLStore(t)
			tt.setup(mock)

			token, found, err := vs.Get(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantFound, found)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLVaultStore_Exists(t *testing.T) {
	vs, mock := newTestSQLStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(existsSQL)).
		WithArgs("pinata-jwt-encrypted").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(existsSQL)).
		WithArgs("pinata-jwt-encrypted").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	ok, err := vs.Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = vs.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLVaultStore_Delete(t *testing.T) {
	vs, mock := newTestSQLStore(t)

	// zero rows affected is still success
	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
		WithArgs("pinata-jwt-encrypted").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
		WillReturnError(errors.New("broken pipe"))

	require.NoError(t, vs.Delete(context.Background()))
	assert.ErrorIs(t, vs.Delete(context.Background()), ErrStoreUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildQueries_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildSelectSlotQuery(sq.Question, "slot")
	require.NoError(t, err)
	assert.Equal(t, "SELECT token FROM vault_slots WHERE slot_key = ?", query)
	assert.Equal(t, []any{"slot"}, args)

	query, _, err = buildUpsertSlotQuery(sq.Question, "slot", "tok", fixedNow)
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (slot_key) DO UPDATE")
}
