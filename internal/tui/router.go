// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-blog-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Route paths.
const (
	PathMain      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathPost      = "/post"
	PathCompose   = "/compose"
	PathFavorites = "/favorites"
)

// Route binds a path to the view it opens. New builds a fresh view on every
// visit.
type Route struct {
	Path string
	Name string
	New  func(params Params) tea.Model
}

// textEntry is implemented by views that are currently capturing typed
// characters, so single-letter global keys must not fire.
type textEntry interface {
	typing() bool
}

// Router is the root model:
// 1) keeps the active view and its route
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages
// 4) returns to Main when the session expires elsewhere
// 5) delegates all other messages to the active view
type Router struct {
	routes  map[string]Route
	route   Route
	current tea.Model

	size      *tea.WindowSizeMsg
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRouter registers routes and opens start. An unknown start path leaves
// the router without a view.
func NewRouter(routes []Route, start string, buildInfo models.AppBuildInfo) Router {
	r := Router{
		routes:    make(map[string]Route, len(routes)),
		buildInfo: buildInfo,
	}
	for _, route := range routes {
		r.routes[route.Path] = route
	}
	if route, ok := r.routes[start]; ok {
		r.route = route
		r.current = route.New(nil)
	}
	return r
}

// Route returns the route of the active view.
func (r Router) Route() Route {
	return r.route
}

func (r Router) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.route.Path == PathMain && !r.isTyping() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}

	case tea.WindowSizeMsg:
		r.size = &msg

	case NavigateTo:
		route, ok := r.routes[msg.Path]
		if !ok {
			return r, nil
		}
		return r, r.open(route, msg.Params)

	case SessionExpiredMsg:
		// logged-in actions live on every view, so fall back to Main
		route, ok := r.routes[PathMain]
		if !ok || r.route.Path == PathMain {
			break
		}
		cmd := r.open(route, nil)
		updated, expiredCmd := r.current.Update(msg)
		r.current = updated
		return r, tea.Batch(cmd, expiredCmd)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r Router) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("BLOG", "", "")
	}
	return r.current.View()
}

// open makes a fresh view of route the active one and replays the last
// window size to it.
func (r *Router) open(route Route, params Params) tea.Cmd {
	r.showBuildInfo = false
	r.route = route
	r.current = route.New(params)

	cmds := []tea.Cmd{r.current.Init()}
	if r.size != nil {
		size := *r.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

func (r Router) isTyping() bool {
	t, ok := r.current.(textEntry)
	return ok && t.typing()
}
