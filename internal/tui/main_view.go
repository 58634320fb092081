// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/internal/service"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the landing view: a paged list of published posts with search,
// favorite toggling and the login/logout entry points.
type MainModel struct {
	d deps

	session *models.Session

	posts      []models.Post
	idx        int
	page       int
	totalPages uint64
	query      string

	searching bool
	search    textinput.Model

	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

// NewMainModel builds the view. A "status" parameter is shown as the initial
// status line.
func NewMainModel(d deps, params Params) *MainModel {
	search := textinput.New()
	search.Placeholder = "search posts"
	search.CharLimit = 100
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &MainModel{
		d:       d,
		page:    models.DefaultPage,
		search:  search,
		spinner: s,
		loading: true,
		status:  params["status"],
	}
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadSession(), m.cmdLoadPosts(), m.spinner.Tick)
}

func (m *MainModel) typing() bool {
	return m.searching
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		m.session = msg.session
		return m, nil

	case SessionExpiredMsg:
		m.session = nil
		m.status = ""
		m.errMsg = app.MsgSessionExpired
		return m, nil

	case postsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.posts = msg.resp.Posts
		m.totalPages = msg.resp.TotalPages
		if m.idx >= len(m.posts) {
			m.idx = max(len(m.posts)-1, 0)
		}
		return m, nil

	case actionDoneMsg:
		m.applyAction(msg)
		if msg.reload {
			m.loading = true
			return m, tea.Batch(m.cmdLoadSession(), m.cmdLoadPosts(), cmdClearStatus())
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *MainModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		m.page = models.DefaultPage
		m.idx = 0
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoadPosts()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *MainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.posts)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if m.query == "" && uint64(m.page) < m.totalPages {
			m.page++
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadPosts()
		}
	case key.Matches(msg, keys.prevPage):
		if m.query == "" && m.page > 1 {
			m.page--
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadPosts()
		}
	case key.Matches(msg, keys.enter):
		if post, ok := m.selected(); ok {
			return m, navigate(PathPost, Params{"id": strconv.FormatInt(post.ID, 10)})
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.SetValue(m.query)
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.query != "" {
			m.query = ""
			m.search.SetValue("")
			m.loading = true
			return m, m.cmdLoadPosts()
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdLoadSession(), m.cmdLoadPosts())
	case key.Matches(msg, keys.favorite):
		post, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.session == nil {
			m.errMsg = app.MsgLoginRequired
			return m, nil
		}
		return m, cmdToggleFavorite(m.d, post.ID)
	case key.Matches(msg, keys.compose):
		if m.session == nil {
			m.errMsg = app.MsgLoginRequired
			return m, nil
		}
		return m, navigate(PathCompose, nil)
	case key.Matches(msg, keys.starred):
		if m.session == nil {
			m.errMsg = app.MsgLoginRequired
			return m, nil
		}
		return m, navigate(PathFavorites, nil)
	case key.Matches(msg, keys.login):
		if m.session == nil {
			return m, navigate(PathLogin, nil)
		}
	case key.Matches(msg, keys.register):
		if m.session == nil {
			return m, navigate(PathRegister, nil)
		}
	case key.Matches(msg, keys.logout):
		if m.session != nil {
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *MainModel) View() string {
	var b strings.Builder

	if m.session != nil {
		b.WriteString(fmt.Sprintf("Logged in as %s", m.session.Username))
		if m.session.Role != "" {
			b.WriteString(metaStyle.Render(" (" + m.session.Role + ")"))
		}
	} else {
		b.WriteString(metaStyle.Render("Not logged in"))
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: [")
		b.WriteString(m.search.View())
		b.WriteString("]\n")
	} else if m.query != "" {
		b.WriteString(fmt.Sprintf("Results for %q (esc: clear)\n", m.query))
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(m.posts) == 0:
		b.WriteString("No posts")
	default:
		for i, post := range m.posts {
			cursor := "  "
			line := postLine(post)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor)
			b.WriteString(line)
			b.WriteString("\n")
		}
		if m.query == "" && m.totalPages > 0 {
			b.WriteString(metaStyle.Render(fmt.Sprintf("\npage %d of %d", m.page, m.totalPages)))
		}
	}

	b.WriteString(renderFeedback(m.status, m.errMsg))

	return renderPage("BLOG", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *MainModel) hotKeys() string {
	if m.searching {
		return "enter: search │ esc: cancel"
	}
	common := "enter: open │ ↑/↓: move │ ←/→: page │ /: search │ v: version │ q: quit"
	if m.session == nil {
		return common + "\nl: login │ r: register"
	}
	return common + "\nc: new post │ f: favorite │ s: favorites │ o: logout"
}

func (m *MainModel) selected() (models.Post, bool) {
	if m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

func (m *MainModel) applyAction(msg actionDoneMsg) {
	if msg.err != nil {
		m.status = ""
		m.errMsg = humanizeError(msg.err)
		return
	}
	m.errMsg = ""
	m.status = msg.status
}

func (m *MainModel) cmdLoadSession() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		session, err := d.services.AuthService.Session(d.ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNotAuthenticated) {
				d.logger.Debug().Err(err).Msg("no usable session")
			}
			return sessionLoadedMsg{}
		}
		return sessionLoadedMsg{session: &session}
	}
}

func (m *MainModel) cmdLoadPosts() tea.Cmd {
	d := m.d
	query := m.query
	opts := models.PostListOptions{Page: m.page, Limit: models.DefaultLimit}

	return func() tea.Msg {
		var (
			resp models.PostListResponse
			err  error
		)
		if query != "" {
			resp, err = d.services.PostService.Search(d.ctx, query)
		} else {
			resp, err = d.services.PostService.List(d.ctx, opts)
		}
		return postsLoadedMsg{resp: resp, err: err}
	}
}

func (m *MainModel) cmdLogout() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		err := d.services.AuthService.Logout(d.ctx)
		return actionDoneMsg{status: app.MsgLoggedOut, err: err, reload: true}
	}
}

func cmdToggleFavorite(d deps, postID int64) tea.Cmd {
	return func() tea.Msg {
		resp, err := d.services.FavoriteService.Toggle(d.ctx, postID)
		return actionDoneMsg{status: resp.Message, err: err}
	}
}
