package model

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteContent holds the free-form key/value content of a static page,
// looked up by page name.
type WebsiteContent struct {
	ID        uuid.UUID      `json:"id"`
	PageName  string         `json:"page_name"`
	Content   map[string]any `json:"content"`
	UpdatedBy uuid.UUID      `json:"updated_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
