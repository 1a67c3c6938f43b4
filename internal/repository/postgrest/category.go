package postgrest

import (
	"context"
	"time"

	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type categoryRepo struct {
	db *store.Client
}

func newCategoryRepo(db *store.Client) Category {
	return &categoryRepo{
		db: db,
	}
}

func (r *categoryRepo) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	now := time.Now().UTC()
	row := map[string]any{
		"name":       category.Name,
		"slug":       category.Slug,
		"created_at": now,
		"updated_at": now,
	}
	if category.Description != nil {
		row["description"] = *category.Description
	}

	var created []model.Category
	if err := r.db.From("categories").Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errEmptyResult
	}

	return &created[0], nil
}

func (r *categoryRepo) FindAll(ctx context.Context, limit int, offset int) ([]model.Category, error) {
	maxLimit(&limit)

	categories := []model.Category{}
	err := r.db.From("categories").
		Select("*").
		Order("created_at", true).
		Limit(limit).
		Offset(offset).
		Execute(ctx, &categories)
	if err != nil {
		return nil, err
	}

	return categories, nil
}
