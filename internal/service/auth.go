package service

import (
	"context"
	"errors"
	"strings"

	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/identity"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/store"
	"go.uber.org/zap"
)

type authService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	provider identity.Provider
}

func newAuthService(logger *zap.Logger, repo *repository.Repository, provider identity.Provider) Auth {
	return &authService{
		logger:   logger,
		repo:     repo,
		provider: provider,
	}
}

// Authenticate resolves a bearer token to the principal: remote token
// verification first, then the profile row keyed by the resolved user id.
// Every failure surfaces as an authentication failure to the caller.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.Profile, error) {
	user, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if !errors.Is(err, identity.ErrRejected) {
			s.logger.Sugar().Errorf("failed to resolve user from token: %s", err.Error())
		}
		return nil, ErrUnauthorized
	}

	profile, err := s.repo.Store.Profile.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, unauthorized("profile not found")
		}
		s.logger.Sugar().Errorf("failed to find profile(%s): %s", user.ID.String(), err.Error())
		return nil, ErrUnauthorized
	}

	return profile, nil
}

func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (*dto.RegisterResponse, error) {
	user, err := s.provider.SignUp(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return nil, invalid("registration was rejected")
		}
		s.logger.Sugar().Errorf("failed to sign up user: %s", err.Error())
		return nil, ErrInternal
	}

	username := input.Username
	if username == "" {
		username = strings.Split(input.Email, "@")[0]
	}

	profile, err := s.repo.Store.Profile.Create(ctx, model.Profile{
		ID:       user.ID,
		Username: username,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create profile for user(%s): %s", user.ID.String(), err.Error())
		// Compensate: without a profile the identity is unusable, so delete
		// it rather than leave the two systems inconsistent.
		if delErr := s.provider.DeleteUser(ctx, user.ID); delErr != nil {
			s.logger.Sugar().Errorf("failed to delete orphaned identity(%s): %s", user.ID.String(), delErr.Error())
		}
		if store.IsRejectedWrite(err) {
			return nil, invalid("profile creation was rejected")
		}
		return nil, ErrInternal
	}

	return &dto.RegisterResponse{
		Message: "User registered successfully",
		User:    *user,
		Profile: *profile,
	}, nil
}

func (s *authService) Login(ctx context.Context, email string, password string) (*dto.LoginResponse, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return nil, invalid("invalid email or password")
		}
		s.logger.Sugar().Errorf("failed to sign in user: %s", err.Error())
		return nil, ErrInternal
	}

	return &dto.LoginResponse{
		AccessToken: session.AccessToken,
		User:        session.User,
	}, nil
}
