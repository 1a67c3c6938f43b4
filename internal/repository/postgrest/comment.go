package postgrest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type commentRepo struct {
	db *store.Client
}

func newCommentRepo(db *store.Client) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()
	row := map[string]any{
		"content":    comment.Content,
		"post_id":    comment.PostID,
		"user_id":    comment.UserID,
		"created_at": now,
		"updated_at": now,
	}

	var created []model.Comment
	if err := r.db.From("comments").Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errEmptyResult
	}

	return &created[0], nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID uuid.UUID, limit int, offset int) ([]model.FullComment, error) {
	maxLimit(&limit)

	comments := []model.FullComment{}
	err := r.db.From("comments").
		Select("*,profiles(username,avatar_url)").
		Eq("post_id", postID.String()).
		Order("created_at", true).
		Limit(limit).
		Offset(offset).
		Execute(ctx, &comments)
	if err != nil {
		return nil, err
	}

	return comments, nil
}
