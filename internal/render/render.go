// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns post markdown into styled terminal text.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
)

// Styles accepted by [WithStyle]. StyleAuto picks dark or light from the
// terminal background; StyleNoTTY emits plain text.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

const defaultWidth = 80

type Renderer struct {
	policy *bluemonday.Policy
	style  string
	width  int
}

type Option func(*Renderer)

func WithStyle(style string) Option {
	return func(r *Renderer) {
		if style != "" {
			r.style = style
		}
	}
}

// WithWidth sets the word-wrap column. Non-positive values keep the default.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		policy: bluemonday.StrictPolicy(),
		style:  StyleAuto,
		width:  defaultWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render strips embedded HTML from markdown and renders the rest.
func (r *Renderer) Render(markdown string) (string, error) {
	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}

	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(r.width))
	if err != nil {
		return "", fmt.Errorf("error creating markdown renderer: %w", err)
	}

	out, err := tr.Render(r.StripHTML(markdown))
	if err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	return out, nil
}

// StripHTML removes HTML tags from markdown text. Fenced code blocks are
// kept verbatim.
func (r *Renderer) StripHTML(markdown string) string {
	var (
		out    strings.Builder
		prose  strings.Builder
		fenced bool
	)

	flush := func() {
		if prose.Len() == 0 {
			return
		}
		out.WriteString(html.UnescapeString(r.policy.Sanitize(prose.String())))
		prose.Reset()
	}

	for _, line := range strings.SplitAfter(markdown, "\n") {
		isFence := strings.HasPrefix(strings.TrimSpace(line), "```")
		switch {
		case fenced:
			out.WriteString(line)
			if isFence {
				fenced = false
			}
		case isFence:
			flush()
			out.WriteString(line)
			fenced = true
		default:
			prose.WriteString(line)
		}
	}
	flush()

	return out.String()
}
