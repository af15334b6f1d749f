// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
)

type Handler struct {
	services *service.RelayServices
	cfg      config.RelayServer
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.RelayServices, cfg config.RelayServer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
