package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/store"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

// Create has no ownership check: any authenticated user may comment. The
// post_id reference is validated by the store.
func (s *commentService) Create(ctx context.Context, userID uuid.UUID, postID uuid.UUID, input dto.CreateCommentRequest) (*model.Comment, error) {
	comment := model.Comment{
		Content: input.Content,
		PostID:  postID,
		UserID:  userID,
	}

	createdComment, err := s.repo.Store.Comment.Create(ctx, comment)
	if err != nil {
		if store.IsRejectedWrite(err) {
			return nil, invalid("comment was rejected by the store")
		}
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%s): %s", userID.String(), postID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID uuid.UUID, limit int, offset int) ([]model.FullComment, error) {
	comments, err := s.repo.Store.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%s) comments: %s", postID.String(), err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}
