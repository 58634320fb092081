// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a reply attached to a post. ParentID is set for nested replies.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

// CreateCommentRequest is the body of POST /comment.
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	PostID   int64  `json:"post_id" validate:"gte=1"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// UpdateCommentRequest is the body of PUT /comment/{id}.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// CommentListResponse is returned by GET /post/{id}/comments.
type CommentListResponse struct {
	Success       bool      `json:"success"`
	Comments      []Comment `json:"comments"`
	TotalPages    uint64    `json:"total_pages"`
	CurrentPage   uint64    `json:"current_page"`
	TotalComments uint64    `json:"total_comments"`
	Message       string    `json:"message,omitempty"`
}
