// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file layer.
// Durations are written as strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
		NoTUI   bool   `json:"no_tui"`
	} `json:"app,omitempty"`

	Vault struct {
		KDFIterations int    `json:"kdf_iterations"`
		SlotKey       string `json:"slot_key"`
		SecretFormat  string `json:"secret_format"`
	} `json:"vault,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		File    struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RateLimit       int      `json:"rate_limit"`
		MaxUploadBytes  int64    `json:"max_upload_bytes"`
	} `json:"server,omitempty"`

	Adapter struct {
		PinataURL      string   `json:"pinata_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PoolSize int `json:"pool_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
			NoTUI:   jsonCfg.App.NoTUI,
		},
		Vault: Vault{
			KDFIterations: jsonCfg.Vault.KDFIterations,
			SlotKey:       jsonCfg.Vault.SlotKey,
			SecretFormat:  jsonCfg.Vault.SecretFormat,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			File:    File{Path: jsonCfg.Storage.File.Path},
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
			MaxUploadBytes:  jsonCfg.Server.MaxUploadBytes,
		},
		Adapter: Adapter{
			PinataURL:      jsonCfg.Adapter.PinataURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{PoolSize: jsonCfg.Workers.PoolSize},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
