package postgrest

import (
	"context"
	"time"

	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type websiteContentRepo struct {
	db *store.Client
}

func newWebsiteContentRepo(db *store.Client) WebsiteContent {
	return &websiteContentRepo{
		db: db,
	}
}

func (r *websiteContentRepo) Create(ctx context.Context, content model.WebsiteContent) (*model.WebsiteContent, error) {
	now := time.Now().UTC()
	row := map[string]any{
		"page_name":  content.PageName,
		"content":    content.Content,
		"updated_by": content.UpdatedBy,
		"created_at": now,
		"updated_at": now,
	}

	var created []model.WebsiteContent
	if err := r.db.From("website_content").Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errEmptyResult
	}

	return &created[0], nil
}

func (r *websiteContentRepo) FindByPage(ctx context.Context, pageName string) (*model.WebsiteContent, error) {
	var content model.WebsiteContent
	if err := r.db.From("website_content").Select("*").Eq("page_name", pageName).Single().Execute(ctx, &content); err != nil {
		return nil, err
	}

	return &content, nil
}
