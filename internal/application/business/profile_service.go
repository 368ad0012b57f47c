// Package business handles onboarding and business profile management.
package business

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/storage"
)

const logoURLExpiry = 15 * time.Minute

// ProfileService handles business profile operations
type ProfileService struct {
	profiles business.ProfileRepository
	objects  storage.ObjectStorage
	logger   *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles business.ProfileRepository, objects storage.ObjectStorage, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{profiles: profiles, objects: objects, logger: logger}
}

// Onboard creates the caller's business profile. Each user has at most one.
func (s *ProfileService) Onboard(ctx context.Context, ownerID uuid.UUID, req OnboardRequest) (*ProfileResponse, error) {
	exists, err := s.profiles.ExistsForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Business profile already exists; use the update endpoint")
	}

	profile, err := business.NewProfile(ownerID, req.Name, req.Description, req.Industry)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	resp := ToProfileResponse(profile, "")
	return &resp, nil
}

// Get returns the caller's profile with a presigned logo URL when one is set
func (s *ProfileService) Get(ctx context.Context, ownerID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	resp := ToProfileResponse(profile, s.logoURL(ctx, profile))
	return &resp, nil
}

// Update applies partial updates to the profile's basic fields
func (s *ProfileService) Update(ctx context.Context, ownerID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	name := profile.Name
	description := profile.Description
	industry := profile.Industry
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Industry != nil {
		industry = *req.Industry
	}
	if err := profile.Update(name, description, industry); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	resp := ToProfileResponse(profile, s.logoURL(ctx, profile))
	return &resp, nil
}

// SetModules replaces the enabled module set
func (s *ProfileService) SetModules(ctx context.Context, ownerID uuid.UUID, req SetModulesRequest) (*ProfileResponse, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Validate the whole set before mutating anything.
	for _, m := range req.Modules {
		found := false
		for _, known := range business.AllModules {
			if business.Module(m) == known {
				found = true
				break
			}
		}
		if !found {
			return nil, shared.NewDomainError("INVALID_MODULE", "Unknown module: "+m)
		}
	}

	profile.EnabledModules = nil
	for _, m := range req.Modules {
		if err := profile.EnableModule(business.Module(m)); err != nil {
			return nil, err
		}
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	resp := ToProfileResponse(profile, s.logoURL(ctx, profile))
	return &resp, nil
}

// UploadLogo stores the logo image and records its object key on the profile
func (s *ProfileService) UploadLogo(ctx context.Context, ownerID uuid.UUID, data []byte, contentType string) (*ProfileResponse, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "Logo file is empty")
	}

	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("logos/%s/%s", ownerID, uuid.New())
	if err := s.objects.Upload(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	profile.SetLogo(key)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	resp := ToProfileResponse(profile, s.logoURL(ctx, profile))
	return &resp, nil
}

// logoURL presigns the stored logo; failures degrade to an empty URL
func (s *ProfileService) logoURL(ctx context.Context, profile *business.Profile) string {
	if profile.LogoObjectKey == "" {
		return ""
	}
	url, _, err := s.objects.GenerateDownloadURL(ctx, profile.LogoObjectKey, logoURLExpiry)
	if err != nil {
		s.logger.Warn("logo URL generation failed",
			zap.String("object_key", profile.LogoObjectKey),
			zap.Error(err))
		return ""
	}
	return url
}
