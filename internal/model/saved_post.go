package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedPost links a user to a bookmarked post. Uniqueness of the
// (post_id, user_id) pair is left to the remote store.
type SavedPost struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
