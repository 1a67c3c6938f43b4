package dto

// UpdateProfileRequest is a partial update of the caller's own profile.
// is_admin is deliberately absent: the admin flag is not self-service.
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
}
