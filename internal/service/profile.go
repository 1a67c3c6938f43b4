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

type profileService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newProfileService(logger *zap.Logger, repo *repository.Repository) Profile {
	return &profileService{
		logger: logger,
		repo:   repo,
	}
}

func (s *profileService) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	profile, err := s.repo.Store.Profile.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("profile not found")
		}
		s.logger.Sugar().Errorf("failed to find profile(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return profile, nil
}

// Update is self-only: the target id must equal the principal id.
func (s *profileService) Update(ctx context.Context, principalID uuid.UUID, id uuid.UUID, input dto.UpdateProfileRequest) (*model.Profile, error) {
	if id != principalID {
		return nil, forbidden("not allowed to update this profile")
	}

	fields := map[string]any{}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.AvatarURL != nil {
		fields["avatar_url"] = *input.AvatarURL
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}

	updatedProfile, err := s.repo.Store.Profile.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("profile not found")
		}
		if store.IsRejectedWrite(err) {
			return nil, invalid("profile update was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to update profile(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return updatedProfile, nil
}
