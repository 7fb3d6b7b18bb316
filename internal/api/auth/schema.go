package auth

import "github.com/SkylineKAI/platform-api/internal/types"

// SignupRequest mirrors the dashboard signup form.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the session token plus the public user fields.
type TokenResponse struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}
