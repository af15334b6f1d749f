// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/handler/http"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/server"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info.String())

	log := logger.NewLogger("jwtvault-relay")
	cfg, err := config.GetRelayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	cfg.Adapter.UserAgent = "jwtvault-relay/" + info.Version
	pinata, err := adapter.NewPinataAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating pinata adapter")
	}

	services, err := service.NewRelayServices(cfg.Vault, pinata, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := http.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
