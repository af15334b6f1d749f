// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:9000", want: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-c", "/etc/jwtvault.json",
		"-iterations", "300000",
		"-slot", "my-slot",
		"-format", "jwt",
		"-backend", "postgres",
		"-f", "/tmp/v.json",
		"-d", "postgres://localhost/vault",
		"-workers", "2",
		"-pinata-url", "https://pinata.test",
		"-adapter-timeout", "15s",
		"-a", "127.0.0.1:8081",
		"-request-timeout", "40s",
		"-shutdown-timeout", "3s",
		"-rate-limit", "7",
		"-max-upload", "2048",
		"-log-file", "/tmp/jwtvault.log",
		"-no-tui",
		"upload", "photo.png",
	}

	cfg, rest, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, []string{"upload", "photo.png"}, rest)
	assert.Equal(t, "/etc/jwtvault.json", cfg.JSONFilePath)
	assert.Equal(t, Vault{KDFIterations: 300000, SlotKey: "my-slot", SecretFormat: "jwt"}, cfg.Vault)
	assert.Equal(t, Storage{Backend: "postgres", File: File{Path: "/tmp/v.json"}, DB: DB{DSN: "postgres://localhost/vault"}}, cfg.Storage)
	assert.Equal(t, 2, cfg.Workers.PoolSize)
	assert.Equal(t, Adapter{PinataURL: "https://pinata.test", RequestTimeout: 15 * time.Second}, cfg.Adapter)
	assert.Equal(t, Server{
		HTTPAddress:     "127.0.0.1:8081",
		RequestTimeout:  40 * time.Second,
		ShutdownTimeout: 3 * time.Second,
		RateLimit:       7,
		MaxUploadBytes:  2048,
	}, cfg.Server)
	assert.Equal(t, App{LogFile: "/tmp/jwtvault.log", NoTUI: true}, cfg.App)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, rest, err := parseFlags([]string{"-config", "/a.json", "status"})
	require.NoError(t, err)
	assert.Equal(t, "/a.json", cfg.JSONFilePath)
	assert.Equal(t, []string{"status"}, rest)
}

func TestParseFlags_Errors(t *testing.T) {
	_, _, err := parseFlags([]string{"-unknown"})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"-a", "nonsense"})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"-iterations", "many"})
	assert.Error(t, err)
}
