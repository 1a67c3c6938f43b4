package repository

import (
	"github.com/labhacknexus/content-gateway/internal/repository/postgrest"
	"github.com/labhacknexus/content-gateway/internal/store"
)

type Repository struct {
	Store *postgrest.PostgrestRepository
}

// New wires the per-table repositories. admin is the service-role handle and
// reaches only the registration profile write.
func New(db *store.Client, admin *store.Client) *Repository {
	return &Repository{
		Store: postgrest.New(db, admin),
	}
}
