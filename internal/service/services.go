// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/crypto"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/store"
	"github.com/MKhiriev/go-jwt-vault/internal/validators"
	"github.com/MKhiriev/go-jwt-vault/internal/workers"
	"github.com/MKhiriev/go-jwt-vault/models"
)

// ClientServices groups the services used by the CLI.
type ClientServices struct {
	VaultSession   VaultSession
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewClientServices(
	cfg config.ClientVault,
	vaultStore store.VaultStore,
	pinata adapter.PinataAdapter,
	pool *workers.Pool,
	info models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	validator, err := validators.NewSecretValidator(cfg.SecretFormat)
	if err != nil {
		return nil, fmt.Errorf("error creating secret validator: %w", err)
	}

	session := NewVaultSession(crypto.NewKeyChainService(cfg.KDFIterations), vaultStore, validator, pool, logger)
	pinning := NewPinningService(pinata, validator, logger)

	return &ClientServices{
		VaultSession:   session,
		UploadService:  NewUploadService(session, pinning),
		AppInfoService: NewAppInfoService(info),
	}, nil
}

// RelayServices groups the services used by the upload relay.
type RelayServices struct {
	PinningService PinningService
	AppInfoService AppInfoService
}

func NewRelayServices(cfg config.ClientVault, pinata adapter.PinataAdapter, info models.AppBuildInfo, logger *logger.Logger) (*RelayServices, error) {
	validator, err := validators.NewSecretValidator(cfg.SecretFormat)
	if err != nil {
		return nil, fmt.Errorf("error creating secret validator: %w", err)
	}

	return &RelayServices{
		PinningService: NewPinningService(pinata, validator, logger),
		AppInfoService: NewAppInfoService(info),
	}, nil
}
