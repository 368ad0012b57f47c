package inventory

import (
	"context"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRepository defines the interface for inventory item persistence
type ItemRepository interface {
	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByIDForOwner finds an item by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Item, error)

	// FindAllForOwner lists items for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Item, error)

	// FindBelowReorderLevel lists items whose stock is at or below reorder level
	FindBelowReorderLevel(ctx context.Context, ownerID uuid.UUID) ([]Item, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// Delete deletes an item
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountForOwner counts items for an owner
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindByIDForOwner finds a vendor by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Vendor, error)

	// FindAllForOwner lists vendors for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Vendor, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error

	// Delete deletes a vendor
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
