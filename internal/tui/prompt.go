// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const promptCharLimit = 4096

// promptModel is a single masked input. The value never reaches View: the
// input echoes '*' for every character.
type promptModel struct {
	title string
	input textinput.Model

	submitted bool
	cancelled bool
	errMsg    string
}

func newPromptModel(title string) *promptModel {
	input := textinput.New()
	input.Placeholder = "paste or type, enter to confirm"
	input.CharLimit = promptCharLimit
	input.Width = 48
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &promptModel{title: title, input: input}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - enter        submits a non-empty value and quits the program.
//   - esc, ctrl+c  cancel the prompt.
//
// All other messages are forwarded to the input widget.
func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.input.Value() == "" {
				m.errMsg = "value is required"
				return m, nil
			}
			m.errMsg = ""
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	data := "[" + m.input.View() + "]"
	if m.errMsg != "" {
		data += "\n\n" + errorStyle.Render(m.errMsg)
	}

	return renderPage(m.title, data, "enter: confirm │ esc: cancel")
}

// value returns the entered text once the prompt was submitted.
func (m *promptModel) value() (string, error) {
	if !m.submitted {
		return "", ErrPromptCancelled
	}
	return m.input.Value(), nil
}
