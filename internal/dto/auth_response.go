package dto

import (
	"github.com/labhacknexus/content-gateway/internal/identity"
	"github.com/labhacknexus/content-gateway/internal/model"
)

type RegisterResponse struct {
	Message string        `json:"message"`
	User    identity.User `json:"user"`
	Profile model.Profile `json:"profile"`
}

// LoginResponse forwards the provider-issued session token and user object
// verbatim.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        identity.User `json:"user"`
}
