// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "he", fitText("hello", 2))
	assert.Equal(t, "hello w...", fitText("hello world!", 10))
	assert.Equal(t, "при...", fitText("привет мир", 6))
}

func TestValueOrDash(t *testing.T) {
	empty := ""
	v := "x"
	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(&empty))
	assert.Equal(t, "x", valueOrDash(&v))
}

func TestPostLink(t *testing.T) {
	assert.Equal(t, "http://localhost:5173/#/post/12", postLink("http://localhost:5173", 12))
	assert.Equal(t, "https://blog.example.com/#/post/3", postLink("https://blog.example.com/", 3))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "-", formatTime(models.Timestamp{}))

	ts := models.Timestamp{Time: time.Date(2026, 5, 4, 10, 30, 0, 0, time.Local)}
	assert.Equal(t, "2026-05-04 10:30", formatTime(ts))
}

func TestPostLine(t *testing.T) {
	line := postLine(models.Post{ID: 5, Title: "Hello", Category: "go", IsPublished: false})

	assert.Contains(t, line, "#5")
	assert.Contains(t, line, "Hello")
	assert.Contains(t, line, "[go]")
	assert.Contains(t, line, "(draft)")
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "", "esc: back")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "esc: back")
	assert.Contains(t, page, "ctrl+c: quit")
}

func TestRenderFeedback(t *testing.T) {
	assert.Empty(t, renderFeedback("", ""))
	assert.Contains(t, renderFeedback("saved", ""), "OK: saved")
	assert.Contains(t, renderFeedback("", "boom"), "Error: boom")
}
