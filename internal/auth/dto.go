package auth

import (
	"time"

	"github.com/riwi/jobboard-backend/internal/users"
)

// RegisterRequest is the public sign-up body. There is no role field; every
// self-registered account is a coder.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Result is what register and login hand to the controller. The token only
// travels in the cookie.
type Result struct {
	User        *users.UserDTO `json:"user"`
	AccessToken string         `json:"-"`
	ExpiresAt   time.Time      `json:"-"`
}
