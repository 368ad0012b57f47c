package business

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/business"
)

// OnboardRequest creates the business profile during onboarding
type OnboardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Industry    string `json:"industry" binding:"max=100"`
}

// UpdateProfileRequest updates the profile's basic fields
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Industry    *string `json:"industry" binding:"omitempty,max=100"`
}

// SetModulesRequest replaces the enabled module set
type SetModulesRequest struct {
	Modules []string `json:"modules" binding:"required,min=1"`
}

// ProfileResponse represents the business profile in API responses
type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	LogoURL        string    `json:"logo_url,omitempty"`
	EnabledModules []string  `json:"enabled_modules"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToProfileResponse maps a profile entity to its API representation
func ToProfileResponse(p *business.Profile, logoURL string) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Industry:       p.Industry,
		LogoURL:        logoURL,
		EnabledModules: p.EnabledModules,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
