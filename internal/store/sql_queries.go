// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const vaultSlotsTable = "vault_slots"

// buildUpsertSlotQuery overwrites the token for slotKey in one statement.
// Both SQLite (3.24+) and PostgreSQL understand ON CONFLICT ... DO UPDATE.
func buildUpsertSlotQuery(ph sq.PlaceholderFormat, slotKey, token string, now time.Time) (string, []any, error) {
	return sq.Insert(vaultSlotsTable).
		Columns("slot_key", "token", "updated_at").
		Values(slotKey, token, now).
		Suffix("ON CONFLICT (slot_key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectSlotQuery(ph sq.PlaceholderFormat, slotKey string) (string, []any, error) {
	return sq.Select("token").
		From(vaultSlotsTable).
		Where(sq.Eq{"slot_key": slotKey}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildExistsSlotQuery(ph sq.PlaceholderFormat, slotKey string) (string, []any, error) {
	return sq.Select("1").
		From(vaultSlotsTable).
		Where(sq.Eq{"slot_key": slotKey}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteSlotQuery(ph sq.PlaceholderFormat, slotKey string) (string, []any, error) {
	return sq.Delete(vaultSlotsTable).
		Where(sq.Eq{"slot_key": slotKey}).
		PlaceholderFormat(ph).
		ToSql()
}
