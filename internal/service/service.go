package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/identity"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/repository/postgrest"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Find(ctx context.Context, filter postgrest.PostFilter, limit int, offset int) ([]model.Post, error)
	Update(ctx context.Context, principalID uuid.UUID, id uuid.UUID, input dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, principalID uuid.UUID, id uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, userID uuid.UUID, postID uuid.UUID, input dto.CreateCommentRequest) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID uuid.UUID, limit int, offset int) ([]model.FullComment, error)
}

type Category interface {
	Create(ctx context.Context, principalID uuid.UUID, input dto.CreateCategoryRequest) (*model.Category, error)
	FindAll(ctx context.Context, limit int, offset int) ([]model.Category, error)
}

type Profile interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, principalID uuid.UUID, id uuid.UUID, input dto.UpdateProfileRequest) (*model.Profile, error)
}

type SavedPost interface {
	Save(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	Unsave(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	FindUserSavedPosts(ctx context.Context, userID uuid.UUID) ([]model.Post, error)
}

type WebsiteContent interface {
	Create(ctx context.Context, principalID uuid.UUID, input dto.CreateWebsiteContentRequest) (*model.WebsiteContent, error)
	FindByPage(ctx context.Context, pageName string) (*model.WebsiteContent, error)
}

type Auth interface {
	Authenticate(ctx context.Context, accessToken string) (*model.Profile, error)
	Register(ctx context.Context, input dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, email string, password string) (*dto.LoginResponse, error)
}

type Service struct {
	Post
	Comment
	Category
	Profile
	SavedPost
	WebsiteContent
	Auth
}

func New(logger *zap.Logger, repo *repository.Repository, provider identity.Provider) *Service {
	return &Service{
		Post:           newPostService(logger, repo),
		Comment:        newCommentService(logger, repo),
		Category:       newCategoryService(logger, repo),
		Profile:        newProfileService(logger, repo),
		SavedPost:      newSavedPostService(logger, repo),
		WebsiteContent: newWebsiteContentService(logger, repo),
		Auth:           newAuthService(logger, repo, provider),
	}
}
