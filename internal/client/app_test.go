// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/MKhiriev/go-jwt-vault/internal/adapter"
	"github.com/MKhiriev/go-jwt-vault/internal/app"
	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/crypto"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/mock"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/internal/store"
	"github.com/MKhiriev/go-jwt-vault/internal/tui"
	"github.com/MKhiriev/go-jwt-vault/internal/workers"
	"github.com/MKhiriev/go-jwt-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSecret     = "eyJhbGciOiJIUzI1NiJ9.test.sig"
	testPassphrase = "correct horse battery staple"
)

type fakePrompter struct {
	answers  []string
	confirms []bool
	err      error
	titles   []string
}

func (p *fakePrompter) PromptSecret(_ context.Context, title string) (string, error) {
	p.titles = append(p.titles, title)
	if p.err != nil {
		return "", p.err
	}
	if len(p.answers) == 0 {
		return "", tui.ErrPromptCancelled
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v, nil
}

func (p *fakePrompter) Confirm(_ context.Context, question string) (bool, error) {
	p.titles = append(p.titles, question)
	if len(p.confirms) == 0 {
		return false, tui.ErrPromptCancelled
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

type testEnv struct {
	app      *App
	prompter *fakePrompter
	pinata   *mock.MockPinataAdapter
	services *service.ClientServices
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := workers.NewPool(2)
	pool.Run()
	t.Cleanup(pool.Stop)

	ctrl := gomock.NewController(t)
	pinata := mock.NewMockPinataAdapter(ctrl)

	cfg := config.ClientVault{KDFIterations: crypto.MinIterations, SlotKey: "pinata-jwt-encrypted"}
	svcs, err := service.NewClientServices(cfg, store.NewMemoryVaultStore(), pinata, pool,
		models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	prompter := &fakePrompter{}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	a, err := NewApp(svcs, prompter, out, errOut, logger.Nop())
	require.NoError(t, err)
	a.openFile = func(name string) (io.ReadCloser, error) {
		if name == "missing.txt" {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader("file body")), nil
	}
	a.copyText = func(string) error { return errors.New("no clipboard") }

	return &testEnv{app: a, prompter: prompter, pinata: pinata, services: svcs, out: out, errOut: errOut}
}

func (e *testEnv) saveSecret(t *testing.T) {
	t.Helper()
	require.NoError(t, e.services.VaultSession.SaveSecret(context.Background(), testSecret, testPassphrase))
}

func TestNewApp_NilDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakePrompter{}, io.Discard, io.Discard, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, io.Discard, io.Discard, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Status(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.app.Run(ctx, []string{"status"}))
	assert.Contains(t, env.out.String(), app.NoticeNotConfigured)

	env.saveSecret(t)
	env.out.Reset()

	require.NoError(t, env.app.Run(ctx, []string{"status"}))
	assert.Contains(t, env.out.String(), app.NoticeConfigured)
}

func TestApp_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("saves on an empty vault", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.answers = []string{testSecret, testPassphrase, testPassphrase}

		require.NoError(t, env.app.Run(ctx, []string{"save"}))
		assert.Contains(t, env.out.String(), app.NoticeSecretSaved)
		assert.Equal(t, []string{"Pinata JWT", "Passphrase", "Repeat passphrase"}, env.prompter.titles)

		got, err := env.services.VaultSession.UseSecret(ctx, testPassphrase)
		require.NoError(t, err)
		assert.Equal(t, testSecret, got)
	})

	t.Run("passphrase mismatch", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.answers = []string{testSecret, testPassphrase, "other"}

		err := env.app.Run(ctx, []string{"save"})
		assert.ErrorIs(t, err, ErrPassphraseMismatch)
		assert.Contains(t, env.errOut.String(), app.MsgPassphraseMismatch)
		assert.False(t, env.services.VaultSession.IsConfigured(ctx))
	})

	t.Run("invalid secret", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.answers = []string{"not-a-jwt", testPassphrase, testPassphrase}

		err := env.app.Run(ctx, []string{"save"})
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Contains(t, env.errOut.String(), app.MsgInvalidSecret)
		assert.NotContains(t, env.errOut.String(), "not-a-jwt")
	})

	t.Run("overwrite declined keeps the old secret", func(t *testing.T) {
		env := newTestEnv(t)
		env.saveSecret(t)
		env.prompter.confirms = []bool{false}

		err := env.app.Run(ctx, []string{"save"})
		assert.ErrorIs(t, err, tui.ErrPromptCancelled)
		assert.Contains(t, env.errOut.String(), app.MsgPromptCancelled)

		got, err := env.services.VaultSession.UseSecret(ctx, testPassphrase)
		require.NoError(t, err)
		assert.Equal(t, testSecret, got)
	})

	t.Run("overwrite accepted", func(t *testing.T) {
		env := newTestEnv(t)
		env.saveSecret(t)
		env.prompter.confirms = []bool{true}
		env.prompter.answers = []string{"eyJnew", "new pass", "new pass"}

		require.NoError(t, env.app.Run(ctx, []string{"save"}))

		got, err := env.services.VaultSession.UseSecret(ctx, "new pass")
		require.NoError(t, err)
		assert.Equal(t, "eyJnew", got)
	})

	t.Run("cancelled prompt", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.err = tui.ErrPromptCancelled

		err := env.app.Run(ctx, []string{"save"})
		assert.ErrorIs(t, err, tui.ErrPromptCancelled)
		assert.False(t, env.services.VaultSession.IsConfigured(ctx))
	})
}

func TestApp_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads with the saved secret", func(t *testing.T) {
		env := newTestEnv(t)
		env.saveSecret(t)
		env.prompter.answers = []string{testPassphrase}

		env.pinata.EXPECT().
			PinFile(gomock.Any(), testSecret, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, file models.UploadFile) (models.UploadResult, error) {
				assert.Equal(t, "doc.txt", file.Name)
				body, err := io.ReadAll(file.Content)
				require.NoError(t, err)
				assert.Equal(t, "file body", string(body))
				return models.UploadResult{CID: "bafybeigdyr"}, nil
			})

		var copied string
		env.app.copyText = func(text string) error {
			copied = text
			return nil
		}

		require.NoError(t, env.app.Run(ctx, []string{"upload", "/tmp/dir/doc.txt"}))
		assert.Contains(t, env.out.String(), app.NoticeUploaded)
		assert.Contains(t, env.out.String(), "CID: bafybeigdyr")
		assert.Contains(t, env.out.String(), app.NoticeCIDCopied)
		assert.Equal(t, "bafybeigdyr", copied)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		env := newTestEnv(t)
		env.saveSecret(t)
		env.prompter.answers = []string{"wrong"}

		err := env.app.Run(ctx, []string{"upload", "doc.txt"})
		assert.ErrorIs(t, err, service.ErrAuth)
		assert.Contains(t, env.errOut.String(), app.MsgAuthFailed)
	})

	t.Run("empty vault", func(t *testing.T) {
		env := newTestEnv(t)
		env.prompter.answers = []string{testPassphrase}

		err := env.app.Run(ctx, []string{"upload", "doc.txt"})
		assert.ErrorIs(t, err, service.ErrEmptyVault)
		assert.Contains(t, env.errOut.String(), app.MsgEmptyVault)
	})

	t.Run("no file argument", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.app.Run(ctx, []string{"upload"})
		assert.ErrorIs(t, err, service.ErrNoFile)
		assert.Contains(t, env.errOut.String(), app.MsgNoFile)
		assert.Empty(t, env.prompter.titles)
	})

	t.Run("file cannot be opened", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.app.Run(ctx, []string{"upload", "missing.txt"})
		assert.ErrorIs(t, err, service.ErrNoFile)
		assert.Empty(t, env.prompter.titles)
	})

	t.Run("pinata rejects the token", func(t *testing.T) {
		env := newTestEnv(t)
		env.saveSecret(t)
		env.prompter.answers = []string{testPassphrase}

		env.pinata.EXPECT().
			PinFile(gomock.Any(), testSecret, gomock.Any()).
			Return(models.UploadResult{}, adapter.ErrUnauthorized)

		err := env.app.Run(ctx, []string{"upload", "doc.txt"})
		assert.ErrorIs(t, err, service.ErrUploadUnauthorized)
		assert.Contains(t, env.errOut.String(), app.MsgPinataAuthFailed)
		assert.NotContains(t, env.errOut.String(), testSecret)
	})

	t.Run("clipboard failure is not an error", func(t *testing.T) {
		env := newTestEnv(t)
		env.saveSecret(t)
		env.prompter.answers = []string{testPassphrase}

		env.pinata.EXPECT().
			PinFile(gomock.Any(), testSecret, gomock.Any()).
			Return(models.UploadResult{CID: "bafy"}, nil)

		require.NoError(t, env.app.Run(ctx, []string{"upload", "doc.txt"}))
		assert.Contains(t, env.out.String(), "CID: bafy")
		assert.NotContains(t, env.out.String(), app.NoticeCIDCopied)
	})
}

func TestApp_Clear(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.saveSecret(t)

	require.NoError(t, env.app.Run(ctx, []string{"clear"}))
	assert.Contains(t, env.out.String(), app.NoticeSecretCleared)
	assert.False(t, env.services.VaultSession.IsConfigured(ctx))

	require.NoError(t, env.app.Run(ctx, []string{"clear"}))
}

func TestApp_Version(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, env.out.String(), "v1.0.0")
	assert.Contains(t, env.out.String(), "abc123")
}

func TestApp_UnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown", args: []string{"rotate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			err := env.app.Run(context.Background(), tt.args)
			assert.ErrorIs(t, err, ErrUnknownCommand)
			assert.Contains(t, env.errOut.String(), "usage: jwtvault")
			assert.Contains(t, env.errOut.String(), app.MsgUnknownCommand)
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, app.MsgPromptCancelled, userMessage(tui.ErrPromptCancelled))
	assert.Equal(t, app.MsgPassphraseMismatch, userMessage(ErrPassphraseMismatch))
	assert.Equal(t, app.MsgAuthFailed, userMessage(service.ErrAuth))
	assert.Equal(t, app.MsgInternalError, userMessage(errors.New("boom")))
}
