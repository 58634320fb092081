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

// RegisterModel is the sign-up screen. The backend answers a registration
// with a session token, so a successful sign-up also logs the user in.
type RegisterModel struct {
	d    deps
	form form

	submitting bool
	errMsg     string
}

func NewRegisterModel(d deps) *RegisterModel {
	return &RegisterModel{
		d: d,
		form: newForm(
			newInput("username", 20, false),
			newInput("email", 100, false),
			newInput("password", 256, true),
			newInput("repeat password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) typing() bool {
	return true
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

			req := models.RegisterRequest{
				Username: strings.TrimSpace(m.form.value(0)),
				Email:    strings.TrimSpace(m.form.value(1)),
				Password: m.form.value(2),
			}
			if req.Username == "" || req.Email == "" || req.Password == "" {
				m.errMsg = app.MsgFieldsRequired
				return m, nil
			}
			if req.Password != m.form.value(3) {
				m.errMsg = app.MsgPasswordsDiffer
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Username", "Email", "Password", "Repeat"}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	b.WriteString(renderFeedback("", m.errMsg))

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	d := m.d
	return func() tea.Msg {
		_, err := d.services.AuthService.Register(d.ctx, req)
		return authDoneMsg{status: app.MsgRegistered, err: err}
	}
}
