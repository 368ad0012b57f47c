package business

import (
	"slices"
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Module identifies a capability module that can be enabled on a profile
type Module string

const (
	ModuleAccounting Module = "accounting"
	ModuleHR         Module = "hr"
	ModuleCRM        Module = "crm"
	ModuleOperations Module = "operations"
	ModuleInventory  Module = "inventory"
	ModuleBI         Module = "bi"
	ModuleDocuments  Module = "documents"
	ModuleVoice      Module = "voice"
)

// AllModules lists every known capability module
var AllModules = []Module{
	ModuleAccounting,
	ModuleHR,
	ModuleCRM,
	ModuleOperations,
	ModuleInventory,
	ModuleBI,
	ModuleDocuments,
	ModuleVoice,
}

// Profile represents the business profile created on onboarding.
// It is mutated to toggle enabled modules and never structurally deleted.
type Profile struct {
	shared.OwnedEntity
	Name           string   `gorm:"type:varchar(200);not null"`
	Description    string   `gorm:"type:text"`
	Industry       string   `gorm:"type:varchar(100)"`
	LogoObjectKey  string   `gorm:"type:varchar(500)"`
	EnabledModules []string `gorm:"serializer:json;type:text"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "business_profiles"
}

// NewProfile creates a business profile with the default module set
func NewProfile(ownerID uuid.UUID, name, description, industry string) (*Profile, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if len(description) > 2000 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 2000 characters")
	}
	if len(industry) > 100 {
		return nil, shared.NewDomainError("INVALID_INDUSTRY", "Industry cannot exceed 100 characters")
	}

	return &Profile{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Name:        name,
		Description: description,
		Industry:    industry,
		EnabledModules: []string{
			string(ModuleAccounting),
			string(ModuleHR),
			string(ModuleOperations),
		},
	}, nil
}

// Update updates the profile's basic information
func (p *Profile) Update(name, description, industry string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.Name = name
	p.Description = description
	p.Industry = industry
	p.Touch()
	return nil
}

// SetLogo records the object-storage key of the uploaded logo
func (p *Profile) SetLogo(objectKey string) {
	p.LogoObjectKey = objectKey
	p.Touch()
}

// EnableModule adds a module to the enabled set; enabling twice is a no-op
func (p *Profile) EnableModule(m Module) error {
	if !isKnownModule(m) {
		return shared.NewDomainError("INVALID_MODULE", "Unknown module: "+string(m))
	}
	if slices.Contains(p.EnabledModules, string(m)) {
		return nil
	}
	p.EnabledModules = append(p.EnabledModules, string(m))
	p.Touch()
	return nil
}

// DisableModule removes a module from the enabled set
func (p *Profile) DisableModule(m Module) error {
	if !isKnownModule(m) {
		return shared.NewDomainError("INVALID_MODULE", "Unknown module: "+string(m))
	}
	idx := slices.Index(p.EnabledModules, string(m))
	if idx < 0 {
		return nil
	}
	p.EnabledModules = slices.Delete(p.EnabledModules, idx, idx+1)
	p.Touch()
	return nil
}

// HasModule returns true if the module is enabled on this profile
func (p *Profile) HasModule(m Module) bool {
	return slices.Contains(p.EnabledModules, string(m))
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot exceed 200 characters")
	}
	return nil
}

func isKnownModule(m Module) bool {
	return slices.Contains(AllModules, m)
}
