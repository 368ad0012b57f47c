package persistence

import (
	"context"
	"errors"

	"github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a profile by its ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Profile, error) {
	var profile business.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindByOwner finds the profile belonging to a user. Each user has at most one.
func (r *GormProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*business.Profile, error) {
	var profile business.Profile
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates a profile
func (r *GormProfileRepository) Save(ctx context.Context, profile *business.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// ExistsForOwner checks whether the user has completed onboarding
func (r *GormProfileRepository) ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&business.Profile{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
