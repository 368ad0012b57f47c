// Package crm implements the sales funnel and lead follow-up drafting.
package crm

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/crm"
	"github.com/bizos/backend/internal/domain/shared"
)

// ClientService handles CRM client operations
type ClientService struct {
	clients crm.ClientRepository
	gen     aiflow.Generator
}

// NewClientService creates a new ClientService
func NewClientService(clients crm.ClientRepository, gen aiflow.Generator) *ClientService {
	return &ClientService{clients: clients, gen: gen}
}

// Create registers a new lead
func (s *ClientService) Create(ctx context.Context, ownerID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	client, err := crm.NewClient(ownerID, req.Name, req.Email, req.Company)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// Get returns one client
func (s *ClientService) Get(ctx context.Context, ownerID, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// List returns the caller's clients, newest first
func (s *ClientService) List(ctx context.Context, ownerID uuid.UUID, req ClientListFilter) (*shared.Paginated[ClientResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search

	var clients []crm.Client
	var err error
	if req.Status != "" {
		status := crm.ClientStatus(req.Status)
		if !crm.ValidClientStatus(status) {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown client status: "+req.Status)
		}
		clients, err = s.clients.FindByStatus(ctx, ownerID, status, filter)
	} else {
		clients, err = s.clients.FindAllForOwner(ctx, ownerID, filter)
	}
	if err != nil {
		return nil, err
	}
	total, err := s.clients.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ClientResponse, len(clients))
	for i := range clients {
		items[i] = ToClientResponse(&clients[i])
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies partial updates to a client
func (s *ClientService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	name := client.Name
	email := client.Email
	company := client.Company
	if req.Name != nil {
		name = *req.Name
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Company != nil {
		company = *req.Company
	}
	if err := client.Update(name, email, company); err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// UpdateStatus moves a client to a funnel stage
func (s *ClientService) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, req UpdateClientStatusRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := client.SetStatus(crm.ClientStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.clients.Delete(ctx, ownerID, id)
}

// DraftFollowUp runs the lead follow-up flow for a client
func (s *ClientService) DraftFollowUp(ctx context.Context, ownerID uuid.UUID, req LeadFollowUpRequest) (*LeadFollowUpResponse, error) {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, req.ClientID)
	if err != nil {
		return nil, err
	}

	out, err := flows.LeadFollowUp.Run(ctx, s.gen, flows.LeadFollowUpInput{
		ClientName:  client.Name,
		Company:     client.Company,
		Status:      string(client.Status),
		LastContact: req.LastContact,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}

	return &LeadFollowUpResponse{
		Subject:           out.Subject,
		Body:              out.Body,
		SuggestedNextStep: out.SuggestedNextStep,
		Timing:            out.Timing,
	}, nil
}
