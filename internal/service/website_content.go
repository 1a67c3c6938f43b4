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

type websiteContentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newWebsiteContentService(logger *zap.Logger, repo *repository.Repository) WebsiteContent {
	return &websiteContentService{
		logger: logger,
		repo:   repo,
	}
}

// Create is admin-gated, same fresh-lookup rule as categories. The principal
// becomes the content's updated_by.
func (s *websiteContentService) Create(ctx context.Context, principalID uuid.UUID, input dto.CreateWebsiteContentRequest) (*model.WebsiteContent, error) {
	profile, err := s.repo.Store.Profile.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, forbidden("only admins can create website content")
		}
		s.logger.Sugar().Errorf("failed to find profile(%s): %s", principalID.String(), err.Error())
		return nil, ErrInternal
	}
	if !profile.IsAdmin {
		return nil, forbidden("only admins can create website content")
	}

	content := model.WebsiteContent{
		PageName:  input.PageName,
		Content:   input.Content,
		UpdatedBy: principalID,
	}

	createdContent, err := s.repo.Store.WebsiteContent.Create(ctx, content)
	if err != nil {
		if store.IsRejectedWrite(err) {
			return nil, invalid("website content was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to create website content: %s", err.Error())
		return nil, ErrInternal
	}

	return createdContent, nil
}

func (s *websiteContentService) FindByPage(ctx context.Context, pageName string) (*model.WebsiteContent, error) {
	content, err := s.repo.Store.WebsiteContent.FindByPage(ctx, pageName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("content not found")
		}
		s.logger.Sugar().Errorf("failed to find website content for page(%s): %s", pageName, err.Error())
		return nil, ErrInternal
	}

	return content, nil
}
