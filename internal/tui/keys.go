// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	login    key.Binding
	logout   key.Binding
	register key.Binding
	search   key.Binding
	compose  key.Binding
	favorite key.Binding
	starred  key.Binding
	comment  key.Binding
	copyLink key.Binding
	edit     key.Binding
	delete   key.Binding
	refresh  key.Binding
	submit   key.Binding
	publish  key.Binding
	version  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	prevPage: key.NewBinding(key.WithKeys("left", "h")),
	nextPage: key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	login:    key.NewBinding(key.WithKeys("l")),
	logout:   key.NewBinding(key.WithKeys("o")),
	register: key.NewBinding(key.WithKeys("r")),
	search:   key.NewBinding(key.WithKeys("/")),
	compose:  key.NewBinding(key.WithKeys("c")),
	favorite: key.NewBinding(key.WithKeys("f")),
	starred:  key.NewBinding(key.WithKeys("s")),
	comment:  key.NewBinding(key.WithKeys("a")),
	copyLink: key.NewBinding(key.WithKeys("y")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	publish:  key.NewBinding(key.WithKeys("ctrl+p")),
	version:  key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
