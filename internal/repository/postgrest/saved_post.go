package postgrest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type savedPostRepo struct {
	db *store.Client
}

func newSavedPostRepo(db *store.Client) SavedPost {
	return &savedPostRepo{
		db: db,
	}
}

func (r *savedPostRepo) Save(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	row := map[string]any{
		"post_id":    postID,
		"user_id":    userID,
		"created_at": time.Now().UTC(),
	}

	return r.db.From("saved_posts").Insert(ctx, row, nil)
}

func (r *savedPostRepo) Unsave(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	return r.db.From("saved_posts").
		Eq("post_id", postID.String()).
		Eq("user_id", userID.String()).
		Delete(ctx)
}

func (r *savedPostRepo) FindUserSavedPosts(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	var rows []struct {
		Post *model.Post `json:"posts"`
	}
	err := r.db.From("saved_posts").
		Select("posts(*)").
		Eq("user_id", userID.String()).
		Execute(ctx, &rows)
	if err != nil {
		return nil, err
	}

	// Flatten the join wrapper; a nil embedded post means it was deleted
	// after being saved, and such rows are skipped.
	posts := []model.Post{}
	for _, row := range rows {
		if row.Post == nil {
			continue
		}
		posts = append(posts, *row.Post)
	}

	return posts, nil
}
