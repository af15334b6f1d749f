// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-jwt-vault/internal/tui"
)

// linePrompter reads one line per prompt. It is used with -no-tui, where
// stdin is usually a pipe and there is nothing to echo to.
type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter returns a [Prompter] reading newline-terminated answers
// from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *linePrompter) PromptSecret(ctx context.Context, title string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", title)

	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", tui.ErrPromptCancelled
	}
	return line, nil
}

func (p *linePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *linePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", tui.ErrPromptCancelled
		}
		return "", fmt.Errorf("read prompt answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
