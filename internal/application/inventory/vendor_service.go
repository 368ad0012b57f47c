package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/inventory"
	"github.com/bizos/backend/internal/domain/shared"
)

// VendorService handles supplier record operations
type VendorService struct {
	vendors inventory.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendors inventory.VendorRepository) *VendorService {
	return &VendorService{vendors: vendors}
}

// Create registers a new vendor
func (s *VendorService) Create(ctx context.Context, ownerID uuid.UUID, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := inventory.NewVendor(ownerID, req.Name, req.ContactName, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, err
	}
	resp := ToVendorResponse(vendor)
	return &resp, nil
}

// Get returns one vendor
func (s *VendorService) Get(ctx context.Context, ownerID, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendors.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToVendorResponse(vendor)
	return &resp, nil
}

// List returns the caller's vendors, newest first
func (s *VendorService) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*shared.Paginated[VendorResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	vendors, err := s.vendors.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	result := shared.NewPaginated(responses, int64(len(responses)), filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies partial updates to a vendor
func (s *VendorService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendors.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	name := vendor.Name
	contactName := vendor.ContactName
	email := vendor.Email
	phone := vendor.Phone
	if req.Name != nil {
		name = *req.Name
	}
	if req.ContactName != nil {
		contactName = *req.ContactName
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := vendor.Update(name, contactName, email, phone); err != nil {
		return nil, err
	}
	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, err
	}
	resp := ToVendorResponse(vendor)
	return &resp, nil
}

// Delete removes a vendor
func (s *VendorService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.vendors.Delete(ctx, ownerID, id)
}
