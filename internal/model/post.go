package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Slug         string     `json:"slug"`
	AuthorID     uuid.UUID  `json:"author_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Published    bool       `json:"published"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
