package business

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for business profile persistence
type ProfileRepository interface {
	// FindByID finds a profile by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByOwner finds the profile belonging to a user
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)

	// Save creates or updates a profile
	Save(ctx context.Context, profile *Profile) error

	// ExistsForOwner checks whether the user has completed onboarding
	ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)
}
