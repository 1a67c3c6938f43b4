package postgrest

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

const MAX_LIMIT = 50
const DEFAULT_LIMIT = 10

func maxLimit(limit *int) {
	if *limit <= 0 {
		*limit = DEFAULT_LIMIT
	}
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

// errEmptyResult covers a write the store accepted but returned no
// representation for, which means the filtered row no longer exists.
var errEmptyResult = errors.New("store returned no rows")

// PostFilter is the conjunctive filter set of the post list operation.
type PostFilter struct {
	CategoryID    *uuid.UUID
	AuthorID      *uuid.UUID
	PublishedOnly bool
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Find(ctx context.Context, filter PostFilter, limit int, offset int) ([]model.Post, error)
	FindAuthorID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID uuid.UUID, limit int, offset int) ([]model.FullComment, error)
}

type Category interface {
	Create(ctx context.Context, category model.Category) (*model.Category, error)
	FindAll(ctx context.Context, limit int, offset int) ([]model.Category, error)
}

type Profile interface {
	Create(ctx context.Context, profile model.Profile) (*model.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Profile, error)
}

type SavedPost interface {
	Save(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	Unsave(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	FindUserSavedPosts(ctx context.Context, userID uuid.UUID) ([]model.Post, error)
}

type WebsiteContent interface {
	Create(ctx context.Context, content model.WebsiteContent) (*model.WebsiteContent, error)
	FindByPage(ctx context.Context, pageName string) (*model.WebsiteContent, error)
}

type PostgrestRepository struct {
	Post
	Comment
	Category
	Profile
	SavedPost
	WebsiteContent
}

func New(db *store.Client, admin *store.Client) *PostgrestRepository {
	return &PostgrestRepository{
		Post:           newPostRepo(db),
		Comment:        newCommentRepo(db),
		Category:       newCategoryRepo(db),
		Profile:        newProfileRepo(db, admin),
		SavedPost:      newSavedPostRepo(db),
		WebsiteContent: newWebsiteContentRepo(db),
	}
}
