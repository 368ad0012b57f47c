package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bizos/backend/internal/domain/identity"
	"github.com/bizos/backend/internal/domain/shared"
)

// APIKeyPrefix marks keys issued by this service so leaked keys are easy to
// recognize in logs and secret scanners
const APIKeyPrefix = "bos_"

// GenerateAPIKey creates a new random API key. Only its digest is ever stored.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return APIKeyPrefix + hex.EncodeToString(buf), nil
}

// APIKeyAuthenticator resolves API keys to users
type APIKeyAuthenticator struct {
	users identity.UserRepository
}

// NewAPIKeyAuthenticator creates a new authenticator
func NewAPIKeyAuthenticator(users identity.UserRepository) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{users: users}
}

// Authenticate resolves a raw API key to the user it belongs to. Returns
// ErrUnauthorized for unknown or inactive users so callers cannot distinguish
// a wrong key from a disabled account.
func (a *APIKeyAuthenticator) Authenticate(ctx context.Context, rawKey string) (*identity.User, error) {
	if rawKey == "" {
		return nil, shared.ErrUnauthorized
	}

	user, err := a.users.FindByAPIKeyHash(ctx, identity.HashAPIKey(rawKey))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, shared.ErrUnauthorized
	}
	return user, nil
}
