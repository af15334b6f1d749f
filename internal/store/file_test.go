// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileVaultStore_Lifecycle(t *testing.T) {
	vs, err := NewFileVaultStore(filepath.Join(t.TempDir(), "vault.json"), "slot")
	require.NoError(t, err)

	exerciseSlotLifecycle(t, vs)
}

func TestNewFileVaultStore_InvalidArgs(t *testing.T) {
	_, err := NewFileVaultStore("vault.json", "")
	assert.ErrorIs(t, err, ErrEmptySlotKey)

	_, err = NewFileVaultStore("", "slot")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFileVaultStore_CreatesDirAndRestrictsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vault.json")
	vs, err := NewFileVaultStore(path, "slot")
	require.NoError(t, err)

	require.NoError(t, vs.Put(context.Background(), "token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileVaultStore_KeepsOtherSlots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	seed := `{"slots":{"other":"keep-me"}}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	vs, err := NewFileVaultStore(path, "slot")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, vs.Put(ctx, "mine"))
	require.NoError(t, vs.Delete(ctx))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var state filePersistedState
	require.NoError(t, json.Unmarshal(raw, &state))
	assert.Equal(t, map[string]string{"other": "keep-me"}, state.Slots)
}

func TestFileVaultStore_ObservesExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	vs, err := NewFileVaultStore(path, "slot")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, vs.Put(ctx, "token"))
	require.NoError(t, os.Remove(path))

	ok, err := vs.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileVaultStore_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	vs, err := NewFileVaultStore(path, "slot")
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = vs.Get(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = vs.Put(ctx, "token")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw), "failed put must not touch the file")
}

func TestFileVaultStore_EmptyFileIsEmptySlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	vs, err := NewFileVaultStore(path, "slot")
	require.NoError(t, err)

	ok, err := vs.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
