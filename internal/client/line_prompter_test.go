// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-jwt-vault/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_PromptSecret(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("eyJfirst\r\nsecond\nlast"), &out)

	got, err := p.PromptSecret(ctx, "Pinata JWT")
	require.NoError(t, err)
	assert.Equal(t, "eyJfirst", got)

	got, err = p.PromptSecret(ctx, "Passphrase")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	got, err = p.PromptSecret(ctx, "Repeat passphrase")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.PromptSecret(ctx, "Again")
	assert.ErrorIs(t, err, tui.ErrPromptCancelled)

	assert.Equal(t, "Pinata JWT: Passphrase: Repeat passphrase: Again: ", out.String())
}

func TestLinePrompter_EmptyLineCancels(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("\n"), &bytes.Buffer{})

	_, err := p.PromptSecret(context.Background(), "Passphrase")
	assert.ErrorIs(t, err, tui.ErrPromptCancelled)
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Replace?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Replace? [y/N]: ", out.String())
		})
	}
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewLinePrompter(strings.NewReader("value\n"), &bytes.Buffer{})
	_, err := p.PromptSecret(ctx, "Passphrase")
	assert.ErrorIs(t, err, context.Canceled)
}
