// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-jwt-vault/models"
)

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
