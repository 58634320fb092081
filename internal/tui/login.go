// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login screen. It takes a username or email and a
// password; on success it returns to the main view, which picks up the new
// session.
type LoginModel struct {
	d    deps
	form form

	submitting bool
	errMsg     string
}

func NewLoginModel(d deps) *LoginModel {
	return &LoginModel{
		d: d,
		form: newForm(
			newInput("username or email", 100, false),
			newInput("password", 256, true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) typing() bool {
	return true
}

// Update implements [tea.Model]. Handled messages:
//   - authDoneMsg  clears the submitting state and either shows the error
//     or navigates to the main view.
//   - esc          goes back to the main view.
//   - tab          moves focus to the next input.
//   - shift+tab    moves focus to the previous input.
//   - enter        checks the inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		return m, navigate(PathMain, Params{"status": result.status})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(PathMain, nil)
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			identifier := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if identifier == "" || password == "" {
				m.errMsg = app.MsgFieldsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{UsernameOrEmail: identifier, Password: password})
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Login     │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	b.WriteString(renderFeedback("", m.errMsg))

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	d := m.d
	return func() tea.Msg {
		_, err := d.services.AuthService.Login(d.ctx, creds)
		return authDoneMsg{status: app.MsgLoggedIn, err: err}
	}
}
