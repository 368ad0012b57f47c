package crm

import (
	"slices"
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientStatus represents a stage in the sales funnel
type ClientStatus string

const (
	ClientStatusLead       ClientStatus = "Lead"
	ClientStatusContacted  ClientStatus = "Contacted"
	ClientStatusProposal   ClientStatus = "Proposal"
	ClientStatusClosedWon  ClientStatus = "Closed-Won"
	ClientStatusClosedLost ClientStatus = "Closed-Lost"
)

// AllClientStatuses lists every valid funnel stage
var AllClientStatuses = []ClientStatus{
	ClientStatusLead,
	ClientStatusContacted,
	ClientStatusProposal,
	ClientStatusClosedWon,
	ClientStatusClosedLost,
}

// ValidClientStatus reports whether s is a known funnel stage
func ValidClientStatus(s ClientStatus) bool {
	return slices.Contains(AllClientStatuses, s)
}

// Client represents a CRM lead. Funnel moves are caller-driven with no guard
// beyond the status being a known stage; last write wins on concurrent updates.
type Client struct {
	shared.OwnedEntity
	Name    string       `gorm:"type:varchar(200);not null"`
	Email   string       `gorm:"type:varchar(200)"`
	Company string       `gorm:"type:varchar(200)"`
	Status  ClientStatus `gorm:"type:varchar(20);not null;default:'Lead'"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new lead
func NewClient(ownerID uuid.UUID, name, email, company string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}

	return &Client{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Name:        name,
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Company:     company,
		Status:      ClientStatusLead,
	}, nil
}

// Update updates the client's contact fields
func (c *Client) Update(name, email, company string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	c.Name = name
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Company = company
	c.Touch()
	return nil
}

// SetStatus moves the client to a funnel stage
func (c *Client) SetStatus(status ClientStatus) error {
	if !ValidClientStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown client status: "+string(status))
	}
	c.Status = status
	c.Touch()
	return nil
}

// IsClosed returns true once the lead reached a terminal stage
func (c *Client) IsClosed() bool {
	return c.Status == ClientStatusClosedWon || c.Status == ClientStatusClosedLost
}
