// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/MKhiriev/go-blog-client/models"
)

// Params carries route arguments such as a post id.
type Params map[string]string

// Int64 returns the named parameter as a number, or 0.
func (p Params) Int64(key string) int64 {
	v, err := strconv.ParseInt(p[key], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// NavigateTo asks the [Router] to swap the current view. Unknown paths are
// ignored.
type NavigateTo struct {
	Path   string
	Params Params
}

// SessionExpiredMsg is sent from outside the program when the stored token
// was dropped.
type SessionExpiredMsg struct{}

type sessionLoadedMsg struct {
	session *models.Session
}

type postsLoadedMsg struct {
	resp models.PostListResponse
	err  error
}

type postLoadedMsg struct {
	post models.Post
	err  error
}

type commentsLoadedMsg struct {
	resp models.CommentListResponse
	err  error
}

type favoritesLoadedMsg struct {
	resp models.FavoriteListResponse
	err  error
}

type renderedMsg struct {
	out string
	err error
}

// actionDoneMsg reports the outcome of a mutating call. reload asks the view
// to fetch its data again.
type actionDoneMsg struct {
	status string
	err    error
	reload bool
}

type authDoneMsg struct {
	status string
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
