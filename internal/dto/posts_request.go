package dto

import "github.com/google/uuid"

type CreatePostRequest struct {
	Title        string     `json:"title" binding:"required"`
	Content      string     `json:"content" binding:"required"`
	Slug         string     `json:"slug" binding:"required"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Published    *bool      `json:"published"`
	ThumbnailURL *string    `json:"thumbnail_url"`
}

// UpdatePostRequest is a partial update: nil fields are left untouched.
type UpdatePostRequest struct {
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	Slug         *string    `json:"slug"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Published    *bool      `json:"published"`
	ThumbnailURL *string    `json:"thumbnail_url"`
}
