// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-blog-client/internal/adapter"
	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_RequiresFields(t *testing.T) {
	d, _ := newTestDeps(t)
	m := NewLoginModel(d)

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgFieldsRequired, m.errMsg)
	assert.Contains(t, m.View(), app.MsgFieldsRequired)
}

func TestLoginModel_Success(t *testing.T) {
	d, ts := newTestDeps(t)
	var model tea.Model = NewLoginModel(d)

	model = typeText(model, "alice")
	model, _ = model.Update(keyTab)
	model = typeText(model, "secret1")

	ts.auth.EXPECT().
		Login(gomock.Any(), models.Credentials{UsernameOrEmail: "alice", Password: "secret1"}).
		Return(models.LoginResponse{Success: true, Token: "tok"}, nil)

	model, cmd := model.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, model.(*LoginModel).submitting)

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	_, cmd = model.Update(msgs[0])
	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathMain, Params: Params{"status": app.MsgLoggedIn}}}, runCmd(cmd))
}

func TestLoginModel_BackendError(t *testing.T) {
	d, ts := newTestDeps(t)
	m := NewLoginModel(d)

	typeText(m, "alice")
	m.Update(keyTab)
	typeText(m, "wrong")

	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, &adapter.APIError{StatusCode: 401, Message: "用户名或密码错误"})

	_, cmd := m.Update(keyEnter)
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	_, cmd = m.Update(msgs[0])
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "用户名或密码错误", m.errMsg)
}

func TestLoginModel_EscGoesBack(t *testing.T) {
	d, _ := newTestDeps(t)
	m := NewLoginModel(d)

	_, cmd := m.Update(keyEsc)
	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathMain}}, runCmd(cmd))
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	d, _ := newTestDeps(t)
	m := NewRegisterModel(d)

	for _, v := range []string{"alice", "alice@example.com", "secret1", "secret2"} {
		typeText(m, v)
		m.Update(keyTab)
	}

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPasswordsDiffer, m.errMsg)
}

func TestRegisterModel_Success(t *testing.T) {
	d, ts := newTestDeps(t)
	m := NewRegisterModel(d)

	for _, v := range []string{"alice", "alice@example.com", "secret1", "secret1"} {
		typeText(m, v)
		m.Update(keyTab)
	}

	ts.auth.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}).
		Return(models.RegisterResponse{Success: true, Token: "tok"}, nil)

	_, cmd := m.Update(keyEnter)
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	_, cmd = m.Update(msgs[0])
	assert.Equal(t, []tea.Msg{NavigateTo{Path: PathMain, Params: Params{"status": app.MsgRegistered}}}, runCmd(cmd))
}
