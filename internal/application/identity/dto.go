package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/identity"
)

// RegisterRequest represents a request to create a new account
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=200"`
	DisplayName string `json:"display_name" binding:"max=200"`
	Password    string `json:"password" binding:"required,min=8,max=100"`
}

// LoginRequest represents an email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse returns the new account plus its API key.
// The key is shown exactly once; only its hash is stored.
type RegisterResponse struct {
	User   UserResponse `json:"user"`
	APIKey string       `json:"api_key"`
}

// LoginResponse returns the bearer token for the session
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// RotateAPIKeyResponse returns the replacement API key
type RotateAPIKeyResponse struct {
	APIKey string `json:"api_key"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserResponse maps a user entity to its API representation
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt,
	}
}
