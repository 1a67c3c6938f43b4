package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentAuthor is the projection of the commenting user's profile that list
// responses embed alongside each comment.
type CommentAuthor struct {
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

type FullComment struct {
	Comment
	Author CommentAuthor `json:"profiles"`
}
