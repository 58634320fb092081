// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loadedPost(t *testing.T) (*PostModel, testServices) {
	t.Helper()
	d, ts := newTestDeps(t)
	m := NewPostModel(d, Params{"id": "3"})

	ts.posts.EXPECT().Get(gomock.Any(), int64(3)).
		Return(models.Post{ID: 3, Title: "Hello", ContentMarkdown: "# Heading\n\nbody <script>x()</script>", Category: "go"}, nil)
	ts.comments.EXPECT().ListByPost(gomock.Any(), int64(3)).
		Return(models.CommentListResponse{Success: true, Comments: []models.Comment{{ID: 1, Content: "nice post", UserID: 2}}}, nil)

	for _, msg := range runCmd(m.Init()) {
		_, cmd := m.Update(msg)
		for _, follow := range runCmd(cmd) {
			m.Update(follow)
		}
	}
	return m, ts
}

func TestPostModel_Loads(t *testing.T) {
	m, _ := loadedPost(t)

	require.NotNil(t, m.post)
	view := m.View()
	assert.Contains(t, view, "HELLO")
	assert.Contains(t, view, "Heading")
	assert.Contains(t, view, "nice post")
	assert.NotContains(t, view, "x()")
}

func TestPostModel_LoadError(t *testing.T) {
	d, _ := newTestDeps(t)
	m := NewPostModel(d, Params{"id": "3"})

	m.Update(postLoadedMsg{err: &apiErrorNotFound})

	assert.Nil(t, m.post)
	assert.Contains(t, m.View(), "帖子不存在")
}

func TestPostModel_Back(t *testing.T) {
	d, _ := newTestDeps(t)

	m := NewPostModel(d, Params{"id": "3"})
	_, cmd := m.Update(keyEsc)
	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathMain}}, runCmd(cmd))

	m = NewPostModel(d, Params{"id": "3", "back": PathFavorites})
	_, cmd = m.Update(keyEsc)
	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathFavorites}}, runCmd(cmd))
}

func TestPostModel_Comment(t *testing.T) {
	m, ts := loadedPost(t)

	m.Update(keyRunes("a"))
	assert.True(t, m.typing())
	typeText(m, "great")

	ts.comments.EXPECT().Create(gomock.Any(), models.CreateCommentRequest{PostID: 3, Content: "great"}).
		Return(models.IDResponse{Success: true, ID: 5}, nil)

	_, cmd := m.Update(keyCtrlS)
	assert.False(t, m.typing())

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, actionDoneMsg{status: app.MsgCommentSent, reload: true}, msgs[0])
}

func TestPostModel_EmptyComment(t *testing.T) {
	m, _ := loadedPost(t)

	m.Update(keyRunes("a"))
	_, cmd := m.Update(keyCtrlS)

	assert.Nil(t, cmd)
	assert.True(t, m.typing())
	assert.Equal(t, app.MsgFieldsRequired, m.errMsg)
}

func TestPostModel_DeleteConfirm(t *testing.T) {
	m, ts := loadedPost(t)

	m.Update(keyRunes("d"))
	assert.Equal(t, postModeConfirmDelete, m.mode)
	m.Update(keyRunes("n"))
	assert.Equal(t, postModeRead, m.mode)

	ts.posts.EXPECT().Delete(gomock.Any(), int64(3)).Return(models.BaseResponse{Success: true}, nil)

	m.Update(keyRunes("d"))
	_, cmd := m.Update(keyRunes("y"))

	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathMain, Params: Params{"status": app.MsgPostDeleted}}}, runCmd(cmd))
}

func TestPostModel_Edit(t *testing.T) {
	m, _ := loadedPost(t)

	_, cmd := m.Update(keyRunes("e"))
	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathCompose, Params: Params{"id": "3"}}}, runCmd(cmd))
}

func TestPostModel_CopyFailureIsShown(t *testing.T) {
	m, _ := loadedPost(t)

	m.Update(copiedMsg{err: assert.AnError})
	assert.NotEmpty(t, m.errMsg)

	m.errMsg = ""
	m.Update(copiedMsg{})
	assert.Equal(t, app.MsgLinkCopied, m.status)
}
