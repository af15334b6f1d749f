// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// RelayServer holds the relay's listener settings.
type RelayServer struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	RateLimit       int
	MaxUploadBytes  int64
}

// RelayConfig is the upload relay view of [StructuredConfig]. The relay only
// needs the secret format to pre-check incoming tokens.
type RelayConfig struct {
	Server  RelayServer
	Vault   ClientVault
	Adapter ClientAdapter
}

// GetRelayConfig builds and validates the relay config view.
func GetRelayConfig(args []string) (*RelayConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := newRelayConfig(cfg)
	return relayCfg, relayCfg.validate()
}

func newRelayConfig(cfg *StructuredConfig) *RelayConfig {
	return &RelayConfig{
		Server: RelayServer{
			HTTPAddress:     cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
			RateLimit:       cfg.Server.RateLimit,
			MaxUploadBytes:  cfg.Server.MaxUploadBytes,
		},
		Vault: newClientVault(cfg.Vault),
		Adapter: ClientAdapter{
			PinataURL:      cfg.Adapter.PinataURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
