// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// fileVaultStore keeps slots in a small JSON document on disk:
//
//	{ "slots": { "pinata-jwt-encrypted": "<base64 token>" } }
//
// The document is re-read on every call so that edits made by another
// process (or a manual delete) are observed. Writes go to a temp file in the
// same directory and are renamed over the original.
type fileVaultStore struct {
	path    string
	slotKey string

	mu sync.Mutex
}

type filePersistedState struct {
	Slots map[string]string `json:"slots"`
}

// NewFileVaultStore returns a [VaultStore] bound to slotKey inside the JSON
// document at path. The file and its directory are created on first Put.
func NewFileVaultStore(path, slotKey string) (VaultStore, error) {
	if slotKey == "" {
		return nil, ErrEmptySlotKey
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrStoreUnavailable)
	}

	return &fileVaultStore{path: path, slotKey: slotKey}, nil
}

func (f *fileVaultStore) Put(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return err
	}

	state.Slots[f.slotKey] = token
	return f.persist(state)
}

func (f *fileVaultStore) Get(_ context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return "", false, err
	}

	token, ok := state.Slots[f.slotKey]
	return token, ok, nil
}

func (f *fileVaultStore) Delete(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := state.Slots[f.slotKey]; !ok {
		return nil
	}

	delete(state.Slots, f.slotKey)
	return f.persist(state)
}

func (f *fileVaultStore) Exists(ctx context.Context) (bool, error) {
	_, ok, err := f.Get(ctx)
	return ok, err
}

func (f *fileVaultStore) load() (filePersistedState, error) {
	state := filePersistedState{Slots: make(map[string]string)}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return state, fmt.Errorf("%w: read vault file: %w", ErrStoreUnavailable, err)
	}

	if len(data) == 0 {
		return state, nil
	}

	if err = json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("%w: decode vault file: %w", ErrStoreUnavailable, err)
	}
	if state.Slots == nil {
		state.Slots = make(map[string]string)
	}

	return state, nil
}

func (f *fileVaultStore) persist(state filePersistedState) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return classifyFileError("create vault dir", err)
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode vault file: %w", ErrStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".vault-*.tmp")
	if err != nil {
		return classifyFileError("create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return classifyFileError("write temp file", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return classifyFileError("sync temp file", err)
	}
	if err = tmp.Close(); err != nil {
		return classifyFileError("close temp file", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return classifyFileError("chmod temp file", err)
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return classifyFileError("replace vault file", err)
	}

	return nil
}

func classifyFileError(op string, err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w: %s: %w", ErrStoreQuotaExceeded, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
