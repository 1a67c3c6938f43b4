// Package identity delegates credential verification and session issuance to
// the external identity provider. Nothing in this gateway hashes a password
// or checks a token signature; every operation here is a remote call.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// User is the provider's view of an account. Its ID is also the primary key
// of the matching profile row.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the provider-issued token bundle returned by a password login.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// ErrRejected is returned when the provider refuses the request itself
// (bad credentials, invalid token, duplicate email) as opposed to failing.
var ErrRejected = errors.New("identity provider rejected the request")

// Provider is the narrow surface this gateway needs from the identity
// backend, kept small so the backend stays swappable.
type Provider interface {
	// SignUp creates a new identity. username travels as signup metadata.
	SignUp(ctx context.Context, email string, password string, username string) (*User, error)
	// SignIn exchanges email/password for a session.
	SignIn(ctx context.Context, email string, password string) (*Session, error)
	// GetUser resolves an access token to the user it was issued to.
	GetUser(ctx context.Context, accessToken string) (*User, error)
	// DeleteUser removes an identity using the elevated credential. Used only
	// to compensate a failed registration.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
