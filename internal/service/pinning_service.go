// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/validators"
	"github.com/MKhiriev/go-jwt-vault/models"
)

type pinningService struct {
	adapter   adapter.PinataAdapter
	validator validators.SecretValidator

	logger *logger.Logger
}

func NewPinningService(pinata adapter.PinataAdapter, validator validators.SecretValidator, logger *logger.Logger) PinningService {
	return &pinningService{adapter: pinata, validator: validator, logger: logger}
}

func (p *pinningService) Pin(ctx context.Context, jwt string, file models.UploadFile) (models.UploadResult, error) {
	if file.Content == nil {
		return models.UploadResult{}, ErrNoFile
	}
	if err := p.validator.Validate(jwt); err != nil {
		return models.UploadResult{}, mapVaultError(err)
	}

	result, err := p.adapter.PinFile(ctx, jwt, file)
	if err != nil {
		p.logger.Error().Err(err).Str("file", file.Name).Msg("pinning failed")
		return models.UploadResult{}, mapAdapterError(err)
	}

	p.logger.Info().Str("file", file.Name).Str("cid", result.CID).Msg("file pinned")
	return result, nil
}
