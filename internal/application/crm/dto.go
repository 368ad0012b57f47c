package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/crm"
)

// CreateClientRequest creates a new lead
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Company string `json:"company" binding:"max=200"`
}

// UpdateClientRequest applies partial updates to a client
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email,max=200"`
	Company *string `json:"company" binding:"omitempty,max=200"`
}

// UpdateClientStatusRequest moves a client through the funnel
type UpdateClientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ClientListFilter represents query options for the client list
type ClientListFilter struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse maps a client entity to its API representation
func ToClientResponse(c *crm.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// LeadFollowUpRequest drafts outreach for a client
type LeadFollowUpRequest struct {
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	LastContact string    `json:"last_contact"`
	Notes       string    `json:"notes"`
}

// LeadFollowUpResponse mirrors the lead follow-up flow's output
type LeadFollowUpResponse struct {
	Subject           string `json:"subject"`
	Body              string `json:"body"`
	SuggestedNextStep string `json:"suggestedNextStep"`
	Timing            string `json:"timing"`
}
