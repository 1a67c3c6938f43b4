package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/store"
	"go.uber.org/zap"
)

type categoryService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCategoryService(logger *zap.Logger, repo *repository.Repository) Category {
	return &categoryService{
		logger: logger,
		repo:   repo,
	}
}

// Create is admin-gated. The admin flag is read fresh from the profiles
// table rather than taken from the principal resolved at the start of the
// request.
func (s *categoryService) Create(ctx context.Context, principalID uuid.UUID, input dto.CreateCategoryRequest) (*model.Category, error) {
	profile, err := s.repo.Store.Profile.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, forbidden("only admins can create categories")
		}
		s.logger.Sugar().Errorf("failed to find profile(%s): %s", principalID.String(), err.Error())
		return nil, ErrInternal
	}
	if !profile.IsAdmin {
		return nil, forbidden("only admins can create categories")
	}

	category := model.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}

	createdCategory, err := s.repo.Store.Category.Create(ctx, category)
	if err != nil {
		if store.IsRejectedWrite(err) {
			return nil, invalid("category was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to create category: %s", err.Error())
		return nil, ErrInternal
	}

	return createdCategory, nil
}

func (s *categoryService) FindAll(ctx context.Context, limit int, offset int) ([]model.Category, error) {
	categories, err := s.repo.Store.Category.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find categories: %s", err.Error())
		return nil, ErrInternal
	}

	return categories, nil
}
