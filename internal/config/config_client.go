// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
	// NoTUI switches prompts to plain stdin lines.
	NoTUI bool
}

// ClientVault holds the vault settings shared by the CLI and the relay.
type ClientVault struct {
	KDFIterations int
	SlotKey       string
	SecretFormat  string
}

// ClientAdapter holds network settings used by the Pinata adapter.
type ClientAdapter struct {
	// PinataURL is the Pinata API base URL.
	PinataURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// UserAgent is sent with every outbound request when non-empty.
	UserAgent string
}

// ClientDB contains SQL backend connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend is one of BackendMemory, BackendFile, BackendSQLite,
	// BackendPostgres.
	Backend string
	// FilePath is the JSON document used by BackendFile.
	FilePath string
	// DB holds SQL backend settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PoolSize is the derivation worker count.
	PoolSize int
}

// ClientConfig is the top-level CLI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Vault   ClientVault
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers

	// Args are the positional arguments: command name first.
	Args []string
}

// GetClientConfig builds and validates the CLI config view from args
// (without the program name) merged with env, JSON and defaults.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
			NoTUI:   cfg.App.NoTUI,
		},
		Vault: newClientVault(cfg.Vault),
		Adapter: ClientAdapter{
			PinataURL:      cfg.Adapter.PinataURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend:  cfg.Storage.Backend,
			FilePath: cfg.Storage.File.Path,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{PoolSize: cfg.Workers.PoolSize},
		Args:    cfg.Args,
	}
}

func newClientVault(v Vault) ClientVault {
	return ClientVault{
		KDFIterations: v.KDFIterations,
		SlotKey:       v.SlotKey,
		SecretFormat:  v.SecretFormat,
	}
}
