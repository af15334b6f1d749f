// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-jwt-vault/models"
)

type uploadService struct {
	session VaultSession
	pinning PinningService
}

func NewUploadService(session VaultSession, pinning PinningService) UploadService {
	return &uploadService{session: session, pinning: pinning}
}

func (u *uploadService) Upload(ctx context.Context, passphrase string, file models.UploadFile) (models.UploadResult, error) {
	if file.Content == nil {
		return models.UploadResult{}, ErrNoFile
	}

	jwt, err := u.session.UseSecret(ctx, passphrase)
	if err != nil {
		return models.UploadResult{}, err
	}

	return u.pinning.Pin(ctx, jwt, file)
}
