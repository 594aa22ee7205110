package auth

import (
	"strings"

	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
)

// LoginRequest is the credentials payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Trim normalizes the submitted email before validation.
func (r *LoginRequest) Trim() {
	r.Email = strings.TrimSpace(r.Email)
}

// UserSummary is the public projection of a user returned after login.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse carries the signed token plus the caller's identity.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func summarize(user *models.User) UserSummary {
	return UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role.String(),
	}
}
