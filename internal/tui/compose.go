// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	composeTitle = iota
	composeCategory
	composeCover
	composeBody
	composeFields
)

// ComposeModel writes a new post, or edits the one named by the "id"
// parameter.
type ComposeModel struct {
	d  deps
	id int64

	form      form
	body      textarea.Model
	focus     int
	published bool

	loading    bool
	submitting bool
	errMsg     string
}

func NewComposeModel(d deps, params Params) *ComposeModel {
	body := textarea.New()
	body.Placeholder = "markdown"
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.SetHeight(10)
	body.SetWidth(60)

	id := params.Int64("id")
	return &ComposeModel{
		d:  d,
		id: id,
		form: newForm(
			newInput("title", 255, false),
			newInput("category", 50, false),
			newInput("cover url (optional)", 500, false),
		),
		body:      body,
		published: true,
		loading:   id > 0,
	}
}

func (m *ComposeModel) Init() tea.Cmd {
	if m.id > 0 {
		return tea.Batch(textinput.Blink, m.cmdLoadPost())
	}
	return textinput.Blink
}

func (m *ComposeModel) typing() bool {
	return true
}

func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.body.SetWidth(max(msg.Width-8, 20))
		m.body.SetHeight(max(msg.Height-20, 5))
		return m, nil

	case postLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fill(msg.post)
		return m, nil

	case actionDoneMsg:
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, m.leave(nil)
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % composeFields)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + composeFields) % composeFields)
			return m, nil
		case key.Matches(msg, keys.publish):
			m.published = !m.published
			return m, nil
		case key.Matches(msg, keys.submit):
			if m.submitting || m.loading {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(m.draft())
		}
	}

	var cmd tea.Cmd
	if m.focus == composeBody {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.form.inputs[m.focus], cmd = m.form.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *ComposeModel) View() string {
	labels := []string{"Title", "Category", "Cover"}

	var b strings.Builder
	if m.loading {
		b.WriteString("Loading...\n")
	}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}
	if m.published {
		b.WriteString("Status    │ published\n\n")
	} else {
		b.WriteString("Status    │ draft\n\n")
	}
	b.WriteString(m.body.View())

	if m.submitting {
		b.WriteString("\n\n[Saving...]")
	}
	b.WriteString(renderFeedback("", m.errMsg))

	title := "NEW POST"
	if m.id > 0 {
		title = "EDIT POST #" + strconv.FormatInt(m.id, 10)
	}
	return renderPage(title, b.String(), "tab: next field │ ctrl+p: publish/draft │ ctrl+s: save │ esc: cancel")
}

func (m *ComposeModel) setFocus(i int) {
	if m.focus == composeBody {
		m.body.Blur()
	} else {
		m.form.inputs[m.focus].Blur()
	}

	m.focus = i
	if m.focus == composeBody {
		m.body.Focus()
	} else {
		m.form.inputs[m.focus].Focus()
	}
}

func (m *ComposeModel) fill(post models.Post) {
	m.form.inputs[composeTitle].SetValue(post.Title)
	m.form.inputs[composeCategory].SetValue(post.Category)
	if post.CoverURL != nil {
		m.form.inputs[composeCover].SetValue(*post.CoverURL)
	}
	m.body.SetValue(post.ContentMarkdown)
	m.published = post.IsPublished
}

func (m *ComposeModel) draft() models.PostDraft {
	published := m.published
	draft := models.PostDraft{
		Title:       strings.TrimSpace(m.form.value(composeTitle)),
		Category:    strings.TrimSpace(m.form.value(composeCategory)),
		Content:     m.body.Value(),
		IsPublished: &published,
	}
	if cover := strings.TrimSpace(m.form.value(composeCover)); cover != "" {
		draft.CoverURL = &cover
	}
	return draft
}

// leave goes to the edited post, or to the main view for a new one.
func (m *ComposeModel) leave(params Params) tea.Cmd {
	if m.id > 0 {
		if params == nil {
			params = Params{}
		}
		params["id"] = strconv.FormatInt(m.id, 10)
		return navigate(PathPost, params)
	}
	return navigate(PathMain, params)
}

func (m *ComposeModel) cmdLoadPost() tea.Cmd {
	d, id := m.d, m.id
	return func() tea.Msg {
		post, err := d.services.PostService.Get(d.ctx, id)
		return postLoadedMsg{post: post, err: err}
	}
}

func (m *ComposeModel) cmdSave(draft models.PostDraft) tea.Cmd {
	d, id := m.d, m.id
	return func() tea.Msg {
		if id > 0 {
			if _, err := d.services.PostService.Update(d.ctx, id, draft); err != nil {
				return actionDoneMsg{err: err}
			}
		} else {
			resp, err := d.services.PostService.Create(d.ctx, draft)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			id = resp.ID
		}
		return NavigateTo{Path: PathPost, Params: Params{
			"id":     strconv.FormatInt(id, 10),
			"status": app.MsgPostSaved,
		}}
	}
}
