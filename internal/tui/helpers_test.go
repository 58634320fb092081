// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/mock"
	"github.com/MKhiriev/go-blog-client/internal/render"
	"github.com/MKhiriev/go-blog-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	auth      *mock.MockAuthService
	posts     *mock.MockPostService
	comments  *mock.MockCommentService
	favorites *mock.MockFavoriteService
}

func newTestDeps(t *testing.T) (deps, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := testServices{
		auth:      mock.NewMockAuthService(ctrl),
		posts:     mock.NewMockPostService(ctrl),
		comments:  mock.NewMockCommentService(ctrl),
		favorites: mock.NewMockFavoriteService(ctrl),
	}

	d := deps{
		ctx: context.Background(),
		services: &service.ClientServices{
			AuthService:     ts.auth,
			PostService:     ts.posts,
			CommentService:  ts.comments,
			FavoriteService: ts.favorites,
		},
		frontendURL: "http://localhost:5173",
		renderStyle: render.StyleNoTTY,
		logger:      logger.Nop(),
	}
	return d, ts
}

// runCmd executes cmd and any batch it expands to, returning the messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// typeText feeds s to m one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}
