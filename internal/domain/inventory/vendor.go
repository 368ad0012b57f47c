package inventory

import (
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Vendor represents a supplier contact record
type Vendor struct {
	shared.OwnedEntity
	Name        string `gorm:"type:varchar(200);not null"`
	ContactName string `gorm:"type:varchar(200)"`
	Email       string `gorm:"type:varchar(200)"`
	Phone       string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor
func NewVendor(ownerID uuid.UUID, name, contactName, email, phone string) (*Vendor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}

	return &Vendor{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Name:        name,
		ContactName: contactName,
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Phone:       phone,
	}, nil
}

// Update updates the vendor's contact fields
func (v *Vendor) Update(name, contactName, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	v.Name = name
	v.ContactName = contactName
	v.Email = strings.ToLower(strings.TrimSpace(email))
	v.Phone = phone
	v.Touch()
	return nil
}
