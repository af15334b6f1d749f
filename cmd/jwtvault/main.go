// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/client"
	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/internal/store"
	"github.com/MKhiriev/go-jwt-vault/internal/tui"
	"github.com/MKhiriev/go-jwt-vault/internal/workers"
	"github.com/MKhiriev/go-jwt-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log, closeLog := logger.NewClientLogger("jwtvault", cfg.App.LogFile)
	defer closeLog()

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.Vault.SlotKey, log)
	if err != nil {
		log.Error().Err(err).Msg("create client storage")
		fmt.Fprintln(os.Stderr, tui.RenderError(service.UserMessage(fmt.Errorf("%w: %w", service.ErrStore, err))))
		return 1
	}
	defer storages.Close()

	cfg.Adapter.UserAgent = "jwtvault/" + info.Version
	pinata, err := adapter.NewPinataAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create pinata adapter")
		return 1
	}

	pool := workers.NewPool(cfg.Workers.PoolSize)
	background := workers.NewWorkers(pool)
	background.Run()
	defer background.Stop()

	services, err := service.NewClientServices(cfg.Vault, storages.VaultStore, pinata, pool, info, log)
	if err != nil {
		log.Error().Err(err).Msg("create client services")
		return 1
	}

	var prompter client.Prompter = tui.New()
	if cfg.App.NoTUI {
		prompter = client.NewLinePrompter(os.Stdin, os.Stderr)
	}

	app, err := client.NewApp(services, prompter, os.Stdout, os.Stderr, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Info().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
