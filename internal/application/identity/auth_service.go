// Package identity implements account registration, login and API key
// management on top of the identity domain.
package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/identity"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/auth"
)

// AuthService handles registration, login and API key rotation
type AuthService struct {
	users identity.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, jwt *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates an account and returns the one-time API key
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	apiKey, err := auth.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Email, req.DisplayName, req.Password, apiKey)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterResponse{
		User:   ToUserResponse(user),
		APIKey: apiKey,
	}, nil
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, shared.ErrUnauthorized
	}
	if !user.IsActive() || !user.CheckPassword(req.Password) {
		return nil, shared.ErrUnauthorized
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:        ToUserResponse(user),
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// RotateAPIKey replaces the caller's API key and returns the new one
func (s *AuthService) RotateAPIKey(ctx context.Context, userID uuid.UUID) (*RotateAPIKeyResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	apiKey, err := auth.GenerateAPIKey()
	if err != nil {
		return nil, err
	}
	if err := user.RotateAPIKey(apiKey); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return &RotateAPIKeyResponse{APIKey: apiKey}, nil
}

// Me returns the caller's account
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}
