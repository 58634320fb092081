// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Post is a blog article as returned by the backend.
type Post struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ContentMarkdown string    `json:"content_markdown"`
	Category        string    `json:"category"`
	AuthorID        int64     `json:"author_id"`
	IsPublished     bool      `json:"is_published"`
	ViewCount       int64     `json:"view_count"`
	CoverURL        *string   `json:"cover_url,omitempty"`
	CreatedAt       Timestamp `json:"created_at"`
	UpdatedAt       Timestamp `json:"updated_at"`
}

// PostDraft is the caller-side input for creating or updating a post.
// Content and ContentMarkdown are interchangeable; Content wins when both are
// set.
type PostDraft struct {
	Title           string
	Content         string
	ContentMarkdown string
	Category        string
	IsPublished     *bool
	CoverURL        *string
}

// Markdown returns the body that is sent as content_markdown.
func (d PostDraft) Markdown() string {
	if d.Content != "" {
		return d.Content
	}
	return d.ContentMarkdown
}

// Payload maps the draft onto the backend's field names.
func (d PostDraft) Payload() PostPayload {
	return PostPayload{
		Title:           d.Title,
		ContentMarkdown: d.Markdown(),
		Category:        d.Category,
		IsPublished:     d.IsPublished,
		CoverURL:        d.CoverURL,
	}
}

// PostPayload is the body of POST /post and PUT /post/{id}. Empty fields are
// omitted so that partial updates leave the stored values alone.
type PostPayload struct {
	Title           string  `json:"title,omitempty" validate:"omitempty,max=255"`
	ContentMarkdown string  `json:"content_markdown,omitempty"`
	Category        string  `json:"category,omitempty" validate:"omitempty,max=50"`
	IsPublished     *bool   `json:"is_published,omitempty"`
	CoverURL        *string `json:"cover_url,omitempty"`
}

// Default paging applied by [PostListOptions.Normalize].
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PostListOptions controls GET /post. Zero Page and Limit fall back to the
// defaults; a nil PublishedOnly means true.
type PostListOptions struct {
	Page          int
	Limit         int
	Category      string
	Query         string
	PublishedOnly *bool
	AuthorID      int64
}

// Normalize returns a copy with defaults filled in.
func (o PostListOptions) Normalize() PostListOptions {
	if o.Page <= 0 {
		o.Page = DefaultPage
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.PublishedOnly == nil {
		published := true
		o.PublishedOnly = &published
	}
	return o
}

// PostListResponse is returned by GET /post and GET /post/search.
type PostListResponse struct {
	Success     bool   `json:"success"`
	Posts       []Post `json:"posts"`
	TotalPages  uint64 `json:"total_pages"`
	CurrentPage uint64 `json:"current_page"`
	TotalPosts  uint64 `json:"total_posts"`
	Message     string `json:"message,omitempty"`
}
