// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-jwt-vault/internal/app"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/service"
	"github.com/MKhiriev/go-jwt-vault/internal/tui"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
	"github.com/MKhiriev/go-jwt-vault/models"
	"github.com/atotto/clipboard"
)

const (
	cmdStatus  = "status"
	cmdSave    = "save"
	cmdUpload  = "upload"
	cmdClear   = "clear"
	cmdVersion = "version"
)

const usage = `usage: jwtvault [flags] <command>

commands:
  status         report whether a secret is saved
  save           encrypt and save a Pinata JWT
  upload <file>  upload a file to IPFS with the saved JWT
  clear          remove the saved secret
  version        print build information`

// App is the jwtvault command runner.
type App struct {
	services *service.ClientServices
	prompter Prompter
	out      io.Writer
	errOut   io.Writer
	openFile func(name string) (io.ReadCloser, error)
	copyText func(text string) error
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewApp returns an [App] writing outcomes to out and failures to errOut.
func NewApp(services *service.ClientServices, prompter Prompter, out, errOut io.Writer, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}
	if prompter == nil {
		return nil, errors.New("nil prompter")
	}

	return &App{
		services: services,
		prompter: prompter,
		out:      out,
		errOut:   errOut,
		openFile: func(name string) (io.ReadCloser, error) { return os.Open(name) },
		copyText: clipboard.WriteAll,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}, nil
}

// Run executes the command named by args[0]. Any failure is printed as a
// user-facing message before being returned.
func (a *App) Run(ctx context.Context, args []string) error {
	unsubscribe := a.services.VaultSession.Subscribe(func(state models.VaultState) {
		a.logger.Debug().Bool("configured", state.Configured).Msg("vault state changed")
	})
	defer unsubscribe()

	err := a.dispatch(ctx, args)
	if err != nil {
		fmt.Fprintln(a.errOut, tui.RenderError(userMessage(err)))
	}
	return err
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, usage)
		return ErrUnknownCommand
	}

	log := a.logger.WithOperation(args[0], a.ids.Generate())
	log.Debug().Strs("args", args[1:]).Msg("running command")

	switch args[0] {
	case cmdStatus:
		return a.status(ctx)
	case cmdSave:
		return a.save(ctx)
	case cmdUpload:
		return a.upload(ctx, args[1:])
	case cmdClear:
		return a.clear(ctx)
	case cmdVersion:
		fmt.Fprintln(a.out, tui.RenderBuildInfo(a.services.AppInfoService.GetAppInfo(ctx)))
		return nil
	default:
		fmt.Fprintln(a.errOut, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) status(ctx context.Context) error {
	if a.services.VaultSession.IsConfigured(ctx) {
		fmt.Fprintln(a.out, app.NoticeConfigured)
	} else {
		fmt.Fprintln(a.out, app.NoticeNotConfigured)
	}
	return nil
}

func (a *App) save(ctx context.Context) error {
	if a.services.VaultSession.IsConfigured(ctx) {
		ok, err := a.prompter.Confirm(ctx, app.NoticeSecretOverride+". Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return tui.ErrPromptCancelled
		}
	}

	secret, err := a.prompter.PromptSecret(ctx, "Pinata JWT")
	if err != nil {
		return err
	}
	passphrase, err := a.prompter.PromptSecret(ctx, "Passphrase")
	if err != nil {
		return err
	}
	repeated, err := a.prompter.PromptSecret(ctx, "Repeat passphrase")
	if err != nil {
		return err
	}
	if passphrase != repeated {
		return ErrPassphraseMismatch
	}

	if err = a.services.VaultSession.SaveSecret(ctx, secret, passphrase); err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderNotice(app.NoticeSecretSaved))
	return nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return service.ErrNoFile
	}

	f, err := a.openFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrNoFile, err)
	}
	defer f.Close()

	passphrase, err := a.prompter.PromptSecret(ctx, "Passphrase")
	if err != nil {
		return err
	}

	result, err := a.services.UploadService.Upload(ctx, passphrase, models.UploadFile{
		Name:    filepath.Base(args[0]),
		Content: f,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderNotice(app.NoticeUploaded))
	fmt.Fprintf(a.out, "CID: %s\n", result.CID)

	// Best effort: headless sessions have no clipboard.
	if err = a.copyText(result.CID); err != nil {
		a.logger.Debug().Err(err).Msg("copy CID to clipboard")
	} else {
		fmt.Fprintln(a.out, app.NoticeCIDCopied)
	}
	return nil
}

func (a *App) clear(ctx context.Context) error {
	if err := a.services.VaultSession.Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderNotice(app.NoticeSecretCleared))
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, tui.ErrPromptCancelled):
		return app.MsgPromptCancelled
	case errors.Is(err, ErrPassphraseMismatch):
		return app.MsgPassphraseMismatch
	case errors.Is(err, ErrUnknownCommand):
		return app.MsgUnknownCommand
	default:
		return service.UserMessage(err)
	}
}
