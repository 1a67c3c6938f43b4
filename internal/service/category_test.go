package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/repository/postgrest"
	"go.uber.org/zap"
)

type fakeCategoryRepo struct {
	createFn  func(ctx context.Context, category model.Category) (*model.Category, error)
	findAllFn func(ctx context.Context, limit int, offset int) ([]model.Category, error)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	return f.createFn(ctx, category)
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context, limit int, offset int) ([]model.Category, error) {
	return f.findAllFn(ctx, limit, offset)
}

// adminLookup returns a profile repo whose FindByID answers with the given
// admin flag, so the fresh-lookup gate can be exercised both ways.
func adminLookup(isAdmin bool) postgrest.Profile {
	return &fakeProfileRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Profile, error) {
			return &model.Profile{ID: id, Username: "caller", IsAdmin: isAdmin}, nil
		},
	}
}

func TestCategoryCreateRequiresAdmin(t *testing.T) {
	createCalled := false
	repo := newTestRepository(postgrest.PostgrestRepository{
		Profile: adminLookup(false),
		Category: &fakeCategoryRepo{
			createFn: func(_ context.Context, category model.Category) (*model.Category, error) {
				createCalled = true
				return &category, nil
			},
		},
	})
	svc := newCategoryService(zap.NewNop(), repo)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCategoryRequest{Name: "n", Slug: "s"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	if createCalled {
		t.Error("create reached the store despite failed admin check")
	}
}

func TestCategoryCreateAsAdmin(t *testing.T) {
	repo := newTestRepository(postgrest.PostgrestRepository{
		Profile: adminLookup(true),
		Category: &fakeCategoryRepo{
			createFn: func(_ context.Context, category model.Category) (*model.Category, error) {
				category.ID = uuid.New()
				return &category, nil
			},
		},
	})
	svc := newCategoryService(zap.NewNop(), repo)

	created, err := svc.Create(context.Background(), uuid.New(), dto.CreateCategoryRequest{Name: "news", Slug: "news"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Name != "news" {
		t.Errorf("category name = %q, want %q", created.Name, "news")
	}
}

type fakeWebsiteContentRepo struct {
	createFn     func(ctx context.Context, content model.WebsiteContent) (*model.WebsiteContent, error)
	findByPageFn func(ctx context.Context, pageName string) (*model.WebsiteContent, error)
}

func (f *fakeWebsiteContentRepo) Create(ctx context.Context, content model.WebsiteContent) (*model.WebsiteContent, error) {
	return f.createFn(ctx, content)
}

func (f *fakeWebsiteContentRepo) FindByPage(ctx context.Context, pageName string) (*model.WebsiteContent, error) {
	return f.findByPageFn(ctx, pageName)
}

func TestWebsiteContentCreateRequiresAdmin(t *testing.T) {
	repo := newTestRepository(postgrest.PostgrestRepository{
		Profile: adminLookup(false),
	})
	svc := newWebsiteContentService(zap.NewNop(), repo)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateWebsiteContentRequest{
		PageName: "about",
		Content:  map[string]any{"heading": "About"},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestWebsiteContentCreateStampsUpdatedBy(t *testing.T) {
	principalID := uuid.New()
	var captured model.WebsiteContent
	repo := newTestRepository(postgrest.PostgrestRepository{
		Profile: adminLookup(true),
		WebsiteContent: &fakeWebsiteContentRepo{
			createFn: func(_ context.Context, content model.WebsiteContent) (*model.WebsiteContent, error) {
				captured = content
				return &content, nil
			},
		},
	})
	svc := newWebsiteContentService(zap.NewNop(), repo)

	_, err := svc.Create(context.Background(), principalID, dto.CreateWebsiteContentRequest{
		PageName: "about",
		Content:  map[string]any{"heading": "About"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if captured.UpdatedBy != principalID {
		t.Errorf("updated_by = %s, want the principal's %s", captured.UpdatedBy, principalID)
	}
}
