package auth

import (
	"github.com/angelmondragon/zencrm-backend/internal/users"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
)

// RegisterRequest contains the payload required for creating an account.
// Role is optional and defaults to the regular user role.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	FullName string          `json:"full_name" validate:"required"`
	Role     *enums.UserRole `json:"role,omitempty"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the bearer token produced by a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	User        *users.UserDTO `json:"user"`
}
