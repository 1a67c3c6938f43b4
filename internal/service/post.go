package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/repository/postgrest"
	"github.com/labhacknexus/content-gateway/internal/store"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	post := model.Post{
		Title:        input.Title,
		Content:      input.Content,
		Slug:         input.Slug,
		AuthorID:     authorID,
		CategoryID:   input.CategoryID,
		ThumbnailURL: input.ThumbnailURL,
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	createdPost, err := s.repo.Store.Post.Create(ctx, post)
	if err != nil {
		if store.IsRejectedWrite(err) {
			return nil, invalid("post was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.repo.Store.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("post not found")
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) Find(ctx context.Context, filter postgrest.PostFilter, limit int, offset int) ([]model.Post, error) {
	posts, err := s.repo.Store.Post.Find(ctx, filter, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) Update(ctx context.Context, principalID uuid.UUID, id uuid.UUID, input dto.UpdatePostRequest) (*model.Post, error) {
	// Ownership read is sequenced before the write; the two are separate
	// remote calls, not a transaction.
	authorID, err := s.repo.Store.Post.FindAuthorID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("post not found")
		}
		s.logger.Sugar().Errorf("failed to find post(%s) author: %s", id.String(), err.Error())
		return nil, ErrInternal
	}
	if authorID != principalID {
		return nil, forbidden("not allowed to update this post")
	}

	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.Slug != nil {
		fields["slug"] = *input.Slug
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Published != nil {
		fields["published"] = *input.Published
	}
	if input.ThumbnailURL != nil {
		fields["thumbnail_url"] = *input.ThumbnailURL
	}

	updatedPost, err := s.repo.Store.Post.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("post not found")
		}
		if store.IsRejectedWrite(err) {
			return nil, invalid("post update was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, principalID uuid.UUID, id uuid.UUID) error {
	authorID, err := s.repo.Store.Post.FindAuthorID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("post not found")
		}
		s.logger.Sugar().Errorf("failed to find post(%s) author: %s", id.String(), err.Error())
		return ErrInternal
	}
	if authorID != principalID {
		return forbidden("not allowed to delete this post")
	}

	if err := s.repo.Store.Post.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	return nil
}
