// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memoryVaultStore keeps the slot in process memory. It is what tests inject
// and what the `memory` backend runs on.
type memoryVaultStore struct {
	mu       sync.RWMutex
	token    string
	occupied bool
}

// NewMemoryVaultStore returns an empty in-memory [VaultStore].
func NewMemoryVaultStore() VaultStore {
	return &memoryVaultStore{}
}

func (m *memoryVaultStore) Put(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.occupied = true
	return nil
}

func (m *memoryVaultStore) Get(_ context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, m.occupied, nil
}

func (m *memoryVaultStore) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.occupied = false
	return nil
}

func (m *memoryVaultStore) Exists(_ context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.occupied, nil
}
