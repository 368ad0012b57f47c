package crm

import (
	"context"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for CRM client persistence
type ClientRepository interface {
	// FindByID finds a client by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByIDForOwner finds a client by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Client, error)

	// FindAllForOwner lists clients for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Client, error)

	// FindByStatus lists clients in a funnel stage for an owner
	FindByStatus(ctx context.Context, ownerID uuid.UUID, status ClientStatus, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete deletes a client
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountForOwner counts clients for an owner
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
