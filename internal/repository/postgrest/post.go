package postgrest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type postRepo struct {
	db *store.Client
}

func newPostRepo(db *store.Client) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now().UTC()
	row := map[string]any{
		"title":      post.Title,
		"content":    post.Content,
		"slug":       post.Slug,
		"author_id":  post.AuthorID,
		"published":  post.Published,
		"created_at": now,
		"updated_at": now,
	}
	if post.CategoryID != nil {
		row["category_id"] = *post.CategoryID
	}
	if post.ThumbnailURL != nil {
		row["thumbnail_url"] = *post.ThumbnailURL
	}

	var created []model.Post
	if err := r.db.From("posts").Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errEmptyResult
	}

	return &created[0], nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.From("posts").Select("*").Eq("id", id.String()).Single().Execute(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Find(ctx context.Context, filter PostFilter, limit int, offset int) ([]model.Post, error) {
	maxLimit(&limit)

	q := r.db.From("posts").Select("*")
	if filter.PublishedOnly {
		q = q.Eq("published", "true")
	}
	if filter.CategoryID != nil {
		q = q.Eq("category_id", filter.CategoryID.String())
	}
	if filter.AuthorID != nil {
		q = q.Eq("author_id", filter.AuthorID.String())
	}
	q = q.Order("created_at", true).Limit(limit).Offset(offset)

	posts := []model.Post{}
	if err := q.Execute(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) FindAuthorID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var row struct {
		AuthorID uuid.UUID `json:"author_id"`
	}
	if err := r.db.From("posts").Select("author_id").Eq("id", id.String()).Single().Execute(ctx, &row); err != nil {
		return uuid.Nil, err
	}

	return row.AuthorID, nil
}

func (r *postRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Post, error) {
	fields["updated_at"] = time.Now().UTC()

	var updated []model.Post
	if err := r.db.From("posts").Eq("id", id.String()).Update(ctx, fields, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, store.ErrNotFound
	}

	return &updated[0], nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.From("posts").Eq("id", id.String()).Delete(ctx)
}
