// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/internal/render"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type postMode int

const (
	postModeRead postMode = iota
	postModeComment
	postModeConfirmDelete
)

const (
	defaultViewWidth  = 80
	defaultViewHeight = 20
	// chrome is the number of lines taken by the page frame around the body.
	chrome = 12
)

// PostModel shows one post with its comments. The body is markdown rendered
// for the terminal.
type PostModel struct {
	d    deps
	id   int64
	back string

	post     *models.Post
	rendered string
	comments []models.Comment

	mode     postMode
	viewport viewport.Model
	editor   textarea.Model
	width    int

	status string
	errMsg string
}

// NewPostModel opens the post named by the "id" parameter. "back" names the
// path esc returns to and "status" seeds the status line.
func NewPostModel(d deps, params Params) *PostModel {
	back := params["back"]
	if back == "" {
		back = PathMain
	}

	editor := textarea.New()
	editor.Placeholder = "write a comment"
	editor.CharLimit = 1000
	editor.ShowLineNumbers = false
	editor.SetHeight(4)

	return &PostModel{
		d:        d,
		id:       params.Int64("id"),
		back:     back,
		viewport: viewport.New(defaultViewWidth, defaultViewHeight),
		editor:   editor,
		width:    defaultViewWidth,
		status:   params["status"],
	}
}

func (m *PostModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPost(), m.cmdLoadComments())
}

func (m *PostModel) typing() bool {
	return m.mode == postModeComment
}

func (m *PostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, 20)
		m.viewport.Width = m.width
		m.viewport.Height = max(msg.Height-chrome, 5)
		m.editor.SetWidth(m.width)
		if m.post != nil {
			return m, m.cmdRender(*m.post)
		}
		return m, nil

	case postLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.post = &msg.post
		return m, m.cmdRender(msg.post)

	case renderedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.rendered = m.post.ContentMarkdown
		} else {
			m.rendered = msg.out
		}
		m.refreshContent()
		return m, nil

	case commentsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.comments = msg.resp.Comments
		m.refreshContent()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		if msg.reload {
			return m, tea.Batch(m.cmdLoadComments(), cmdClearStatus())
		}
		return m, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = app.MsgLinkCopied
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case postModeComment:
			return m.updateComment(msg)
		case postModeConfirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateRead(msg)
	}

	return m, nil
}

func (m *PostModel) updateRead(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m, navigate(m.back, nil)
	case key.Matches(msg, keys.refresh):
		m.errMsg = ""
		return m, m.Init()
	case key.Matches(msg, keys.favorite):
		return m, cmdToggleFavorite(m.d, m.id)
	case key.Matches(msg, keys.copyLink):
		return m, cmdCopyToClipboard(postLink(m.d.frontendURL, m.id))
	case key.Matches(msg, keys.comment):
		m.mode = postModeComment
		m.editor.Reset()
		return m, m.editor.Focus()
	case key.Matches(msg, keys.edit):
		return m, navigate(PathCompose, Params{"id": strconv.FormatInt(m.id, 10)})
	case key.Matches(msg, keys.delete):
		m.mode = postModeConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PostModel) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = postModeRead
		m.editor.Blur()
		return m, nil
	case key.Matches(msg, keys.submit):
		content := strings.TrimSpace(m.editor.Value())
		if content == "" {
			m.errMsg = app.MsgFieldsRequired
			return m, nil
		}
		m.mode = postModeRead
		m.editor.Blur()
		return m, m.cmdComment(content)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *PostModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = postModeRead
		return m, m.cmdDelete()
	case key.Matches(msg, keys.no):
		m.mode = postModeRead
	}
	return m, nil
}

func (m *PostModel) View() string {
	title := "POST"
	if m.post != nil {
		title = strings.ToUpper(fitText(m.post.Title, 60))
	}

	var b strings.Builder
	if m.post == nil && m.errMsg == "" {
		b.WriteString("Loading...")
	} else {
		b.WriteString(m.viewport.View())
	}

	switch m.mode {
	case postModeComment:
		b.WriteString("\n\n")
		b.WriteString(m.editor.View())
	case postModeConfirmDelete:
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render("Delete this post?\n\ny: yes │ n: no"))
	}

	b.WriteString(renderFeedback(m.status, m.errMsg))

	return renderPage(title, b.String(), m.hotKeys())
}

func (m *PostModel) hotKeys() string {
	switch m.mode {
	case postModeComment:
		return "ctrl+s: send │ esc: cancel"
	case postModeConfirmDelete:
		return "y: delete │ n: keep"
	}
	return "↑/↓: scroll │ a: comment │ f: favorite │ y: copy link │ e: edit │ d: delete │ esc: back"
}

// refreshContent puts the post body, its metadata and the comments into the
// viewport.
func (m *PostModel) refreshContent() {
	if m.post == nil {
		return
	}

	var b strings.Builder
	b.WriteString(metaStyle.Render(fmt.Sprintf("#%d │ %s │ author %d │ %d views │ %s",
		m.post.ID, m.post.Category, m.post.AuthorID, m.post.ViewCount, formatTime(m.post.CreatedAt))))
	if m.post.CoverURL != nil {
		b.WriteString("\n")
		b.WriteString(metaStyle.Render("cover: " + valueOrDash(m.post.CoverURL)))
	}
	b.WriteString("\n")
	b.WriteString(m.rendered)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Comments (%d)", len(m.comments))))
	b.WriteString("\n")
	for _, c := range m.comments {
		b.WriteString(metaStyle.Render(fmt.Sprintf("user %d · %s", c.UserID, formatTime(c.CreatedAt))))
		b.WriteString("\n")
		b.WriteString(c.Content)
		b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
}

func (m *PostModel) cmdLoadPost() tea.Cmd {
	d, id := m.d, m.id
	return func() tea.Msg {
		post, err := d.services.PostService.Get(d.ctx, id)
		return postLoadedMsg{post: post, err: err}
	}
}

func (m *PostModel) cmdLoadComments() tea.Cmd {
	d, id := m.d, m.id
	return func() tea.Msg {
		resp, err := d.services.CommentService.ListByPost(d.ctx, id)
		return commentsLoadedMsg{resp: resp, err: err}
	}
}

func (m *PostModel) cmdRender(post models.Post) tea.Cmd {
	r := render.New(render.WithStyle(m.d.renderStyle), render.WithWidth(m.width))
	return func() tea.Msg {
		out, err := r.Render(post.ContentMarkdown)
		return renderedMsg{out: out, err: err}
	}
}

func (m *PostModel) cmdComment(content string) tea.Cmd {
	d := m.d
	req := models.CreateCommentRequest{PostID: m.id, Content: content}
	return func() tea.Msg {
		_, err := d.services.CommentService.Create(d.ctx, req)
		return actionDoneMsg{status: app.MsgCommentSent, err: err, reload: true}
	}
}

func (m *PostModel) cmdDelete() tea.Cmd {
	d, id, back := m.d, m.id, m.back
	return func() tea.Msg {
		if _, err := d.services.PostService.Delete(d.ctx, id); err != nil {
			return actionDoneMsg{err: err}
		}
		return NavigateTo{Path: back, Params: Params{"status": app.MsgPostDeleted}}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
