package dto

type CreateWebsiteContentRequest struct {
	PageName string         `json:"page_name" binding:"required"`
	Content  map[string]any `json:"content" binding:"required"`
}
