// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args (without the program name) into a config layer and
// returns the remaining positional arguments.
//
// Flags:
//
//	-c/-config json file path with configs
//	-iterations PBKDF2 iterations
//	-slot vault slot key
//	-format secret format (prefix, jwt)
//	-backend storage backend (memory, file, sqlite, postgres)
//	-f vault JSON file path
//	-d database DSN
//	-workers derivation worker pool size
//	-pinata-url Pinata API base URL
//	-adapter-timeout Pinata request timeout (e.g., "30s", "1m")
//	-a relay address in format [host]:[port]
//	-request-timeout relay request timeout
//	-shutdown-timeout relay graceful shutdown timeout
//	-rate-limit relay uploads per IP per minute
//	-max-upload relay upload size limit in bytes
//	-log-file client log file
//	-no-tui read prompts from stdin lines instead of the TUI
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("jwtvault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var jsonConfigPath string
	var iterations int
	var slotKey string
	var secretFormat string
	var backend string
	var filePath string
	var databaseDSN string
	var poolSize int
	var pinataURL string
	var adapterTimeout time.Duration
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var rateLimit int
	var maxUpload int64
	var logFile string
	var noTUI bool

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 iterations (>= 100000)")
	fs.StringVar(&slotKey, "slot", "", "Vault slot key")
	fs.StringVar(&secretFormat, "format", "", "Secret format: prefix or jwt")
	fs.StringVar(&backend, "backend", "", "Storage backend: memory, file, sqlite, postgres")
	fs.StringVar(&filePath, "f", "", "Vault JSON file path")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&poolSize, "workers", 0, "Key derivation worker pool size")
	fs.StringVar(&pinataURL, "pinata-url", "", "Pinata API base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Pinata request timeout (e.g., 30s, 1m)")
	fs.Var(&serverAddress, "a", "Relay net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Relay request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Relay graceful shutdown timeout")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Relay uploads per client IP per minute")
	fs.Int64Var(&maxUpload, "max-upload", 0, "Relay upload size limit in bytes")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.BoolVar(&noTUI, "no-tui", false, "Read prompts from stdin lines")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
			NoTUI:   noTUI,
		},
		Vault: Vault{
			KDFIterations: iterations,
			SlotKey:       slotKey,
			SecretFormat:  secretFormat,
		},
		Storage: Storage{
			Backend: backend,
			File:    File{Path: filePath},
			DB:      DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			RateLimit:       rateLimit,
			MaxUploadBytes:  maxUpload,
		},
		Adapter: Adapter{
			PinataURL:      pinataURL,
			RequestTimeout: adapterTimeout,
		},
		Workers:      Workers{PoolSize: poolSize},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
