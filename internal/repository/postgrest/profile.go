package postgrest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type profileRepo struct {
	db *store.Client
	// admin bypasses row-level policy; only Create goes through it, because
	// the profile row is inserted before its owner has a session.
	admin *store.Client
}

func newProfileRepo(db *store.Client, admin *store.Client) Profile {
	return &profileRepo{
		db:    db,
		admin: admin,
	}
}

func (r *profileRepo) Create(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	now := time.Now().UTC()
	row := map[string]any{
		"id":         profile.ID,
		"username":   profile.Username,
		"avatar_url": nil,
		"bio":        nil,
		"is_admin":   false,
		"created_at": now,
		"updated_at": now,
	}

	var created []model.Profile
	if err := r.admin.From("profiles").Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errEmptyResult
	}

	return &created[0], nil
}

func (r *profileRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.From("profiles").Select("*").Eq("id", id.String()).Single().Execute(ctx, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Profile, error) {
	fields["updated_at"] = time.Now().UTC()

	var updated []model.Profile
	if err := r.db.From("profiles").Eq("id", id.String()).Update(ctx, fields, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, store.ErrNotFound
	}

	return &updated[0], nil
}
