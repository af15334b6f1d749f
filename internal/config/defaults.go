// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/MKhiriev/go-jwt-vault/internal/validators"
)

// Backend names accepted in Storage.Backend.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

const (
	DefaultKDFIterations   = 100_000
	DefaultSlotKey         = "pinata-jwt-encrypted"
	DefaultBackend         = BackendFile
	DefaultVaultFileName   = "vault.json"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateLimit       = 30
	DefaultMaxUploadBytes  = 100 << 20
	DefaultPinataURL       = "https://api.pinata.cloud"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			KDFIterations: DefaultKDFIterations,
			SlotKey:       DefaultSlotKey,
			SecretFormat:  validators.FormatPrefix,
		},
		Storage: Storage{
			Backend: DefaultBackend,
			File:    File{Path: defaultVaultFilePath()},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			RateLimit:       DefaultRateLimit,
			MaxUploadBytes:  DefaultMaxUploadBytes,
		},
		Adapter: Adapter{
			PinataURL:      DefaultPinataURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PoolSize: runtime.NumCPU(),
		},
	}
}

// defaultVaultFilePath is <user config dir>/jwtvault/vault.json, or
// vault.json in the working directory when no config dir is known.
func defaultVaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultVaultFileName
	}
	return filepath.Join(dir, "jwtvault", DefaultVaultFileName)
}
