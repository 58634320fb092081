// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal client. A [Router] swaps views in
// response to [NavigateTo] messages the way a browser router swaps pages.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/render"
	"github.com/MKhiriev/go-blog-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// deps is what every view needs to do its work.
type deps struct {
	ctx         context.Context
	services    *service.ClientServices
	frontendURL string
	renderStyle string
	logger      *logger.Logger
}

func routes(d deps) []Route {
	return []Route{
		{Path: PathMain, Name: "Main", New: func(p Params) tea.Model { return NewMainModel(d, p) }},
		{Path: PathLogin, Name: "Login", New: func(Params) tea.Model { return NewLoginModel(d) }},
		{Path: PathRegister, Name: "Register", New: func(Params) tea.Model { return NewRegisterModel(d) }},
		{Path: PathPost, Name: "Post", New: func(p Params) tea.Model { return NewPostModel(d, p) }},
		{Path: PathCompose, Name: "Compose", New: func(p Params) tea.Model { return NewComposeModel(d, p) }},
		{Path: PathFavorites, Name: "Favorites", New: func(Params) tea.Model { return NewFavoritesModel(d) }},
	}
}

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	d := deps{
		ctx:         ctx,
		services:    t.services,
		frontendURL: t.services.AppInfoService.Profile().FrontendURL,
		renderStyle: render.StyleAuto,
		logger:      t.logger,
	}
	root := NewRouter(routes(d), PathMain, t.services.AppInfoService.BuildInfo())

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// SessionExpired tells the running program that the stored token is gone.
// It does nothing when no program is running.
func (t *TUI) SessionExpired() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(SessionExpiredMsg{})
	}
}
