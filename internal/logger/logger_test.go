// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("relay")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "relay", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l, closeFn := NewClientLogger("client", path)
	require.NotNil(t, l)
	require.NotNil(t, closeFn)

	l.Info().Msg("vault opened")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "vault opened", entry["message"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewClientLogger_FallsBackWhenUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l, closeFn := NewClientLogger("client", path)
	require.NotNil(t, l)
	assert.NoError(t, closeFn())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, buf.Bytes())["role"])
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.WithOperation("save", "0190-abc").Info().Msg("done")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "save", entry["op"])
	assert.Equal(t, "0190-abc", entry["op_id"])
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, buf.Bytes())["ctx-key"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, buf.Bytes())["req-key"])
}
