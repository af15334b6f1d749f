// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs short-lived bubbletea programs for the CLI's interactive prompts.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// Option configures a [TUI].
type Option func(*TUI)

// WithIO replaces the terminal with the given reader and writer.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TUI) {
		t.input = in
		t.output = out
	}
}

// New returns a [TUI] bound to the process terminal unless overridden.
func New(opts ...Option) *TUI {
	t := &TUI{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PromptSecret asks for a masked value under title. It returns
// [ErrPromptCancelled] when the user presses Esc or Ctrl+C.
func (t *TUI) PromptSecret(ctx context.Context, title string) (string, error) {
	final, err := t.run(ctx, newPromptModel(title))
	if err != nil {
		return "", err
	}

	result, ok := final.(*promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	return result.value()
}

// Confirm asks a yes/no question.
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(question))
	if err != nil {
		return false, err
	}

	result, ok := final.(*confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.result()
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrPromptCancelled
		}
		return nil, err
	}
	return final, nil
}
