// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FavoritesModel lists the posts the user marked as favorite.
type FavoritesModel struct {
	d deps

	posts   []models.Post
	total   uint64
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewFavoritesModel(d deps) *FavoritesModel {
	return &FavoritesModel{d: d, loading: true}
}

func (m *FavoritesModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.posts = msg.resp.Favorites
		m.total = msg.resp.TotalFavorites
		if m.idx >= len(m.posts) {
			m.idx = max(len(m.posts)-1, 0)
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			return m, navigate(PathMain, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.posts)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if post, ok := m.selected(); ok {
				return m, navigate(PathPost, Params{"id": strconv.FormatInt(post.ID, 10), "back": PathFavorites})
			}
		case key.Matches(msg, keys.favorite):
			if post, ok := m.selected(); ok {
				return m, cmdToggleFavorite(m.d, post.ID)
			}
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdLoad()
		}
	}

	return m, nil
}

func (m *FavoritesModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.posts) == 0:
		b.WriteString("No favorites yet")
	default:
		b.WriteString(metaStyle.Render(fmt.Sprintf("%d favorite(s)", m.total)))
		b.WriteString("\n\n")
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
	}

	b.WriteString(renderFeedback(m.status, m.errMsg))

	return renderPage("FAVORITES", strings.TrimRight(b.String(), "\n"), "enter: open │ f: remove │ ↑/↓: move │ esc: back")
}

func (m *FavoritesModel) selected() (models.Post, bool) {
	if m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

func (m *FavoritesModel) cmdLoad() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		resp, err := d.services.FavoriteService.List(d.ctx)
		return favoritesLoadedMsg{resp: resp, err: err}
	}
}
