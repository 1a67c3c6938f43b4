package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/store"
	"go.uber.org/zap"
)

type savedPostService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newSavedPostService(logger *zap.Logger, repo *repository.Repository) SavedPost {
	return &savedPostService{
		logger: logger,
		repo:   repo,
	}
}

func (s *savedPostService) Save(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	if err := s.repo.Store.SavedPost.Save(ctx, postID, userID); err != nil {
		// A conflict means the pair already exists; saving twice is a no-op.
		var reqErr *store.RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusConflict {
			return nil
		}
		if store.IsRejectedWrite(err) {
			return invalid("save was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to save post(%s) for user(%s): %s", postID.String(), userID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *savedPostService) Unsave(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	if err := s.repo.Store.SavedPost.Unsave(ctx, postID, userID); err != nil {
		s.logger.Sugar().Errorf("failed to unsave post(%s) for user(%s): %s", postID.String(), userID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *savedPostService) FindUserSavedPosts(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	posts, err := s.repo.Store.SavedPost.FindUserSavedPosts(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) saved posts: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}
