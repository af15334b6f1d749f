// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the vault
// client and the upload relay.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Passphrases, decrypted secrets and derived keys are never passed to a
// logger; only operation names, ids, sizes and error classes are.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the log file name used next to the executable when
// the client is not given an explicit path.
const DefaultClientLogFile = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func setup() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label (e.g. "relay")
// writing JSON to os.Stdout. Every entry carries "role", a timestamp and a
// "func" caller field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	setup()
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but writes to a file, since the
// terminal belongs to the prompts. An empty path means a "logs" file next to
// the executable. If the file cannot be opened the logger falls back to
// os.Stderr.
//
// The returned close function releases the file and is always non-nil.
func NewClientLogger(role, path string) (*Logger, func() error) {
	setup()

	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(os.Stderr, role), func() error { return nil }
	}

	return newLogger(logFile, role), logFile.Close
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithOperation returns a child logger tagged with the vault operation name
// and its correlation id.
func (l *Logger) WithOperation(op, opID string) *Logger {
	return &Logger{l.With().Str("op", op).Str("op_id", opID).Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger. If no logger has been attached to ctx,
// zerolog returns its default logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
