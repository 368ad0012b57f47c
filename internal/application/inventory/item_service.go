// Package inventory implements stock tracking, vendor records and
// AI-assisted restock suggestions.
package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/inventory"
	"github.com/bizos/backend/internal/domain/shared"
)

// ItemService handles inventory item operations
type ItemService struct {
	items inventory.ItemRepository
	gen   aiflow.Generator
}

// NewItemService creates a new ItemService
func NewItemService(items inventory.ItemRepository, gen aiflow.Generator) *ItemService {
	return &ItemService{items: items, gen: gen}
}

// Create registers a new inventory item
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	item, err := inventory.NewItem(ownerID, req.Name, req.SKU, req.StockLevel, req.ReorderLevel, req.Vendor, req.Location)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// Get returns one item
func (s *ItemService) Get(ctx context.Context, ownerID, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.items.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// List returns the caller's items, newest first
func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID, req ItemListFilter) (*shared.Paginated[ItemResponse], error) {
	if req.LowStock {
		items, err := s.items.FindBelowReorderLevel(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		responses := make([]ItemResponse, len(items))
		for i := range items {
			responses[i] = ToItemResponse(&items[i])
		}
		result := shared.NewPaginated(responses, int64(len(responses)), 1, len(responses))
		return &result, nil
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search

	items, err := s.items.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.items.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies partial updates to an item
func (s *ItemService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.items.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	name := item.Name
	stockLevel := item.StockLevel
	reorderLevel := item.ReorderLevel
	vendor := item.Vendor
	location := item.Location
	if req.Name != nil {
		name = *req.Name
	}
	if req.StockLevel != nil {
		stockLevel = *req.StockLevel
	}
	if req.ReorderLevel != nil {
		reorderLevel = *req.ReorderLevel
	}
	if req.Vendor != nil {
		vendor = *req.Vendor
	}
	if req.Location != nil {
		location = *req.Location
	}
	if err := item.Update(name, stockLevel, reorderLevel, vendor, location); err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// Delete removes an item
func (s *ItemService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.items.Delete(ctx, ownerID, id)
}

// SuggestRestock runs the restock suggestion flow over the caller's stock
func (s *ItemService) SuggestRestock(ctx context.Context, ownerID uuid.UUID, req RestockSuggestionRequest) (*RestockSuggestionResponse, error) {
	var items []inventory.Item
	var err error
	if req.OnlyLowStock {
		items, err = s.items.FindBelowReorderLevel(ctx, ownerID)
	} else {
		filter := shared.DefaultFilter()
		filter.PageSize = 200
		items, err = s.items.FindAllForOwner(ctx, ownerID, filter)
	}
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_STATE", "No inventory items to review")
	}

	lines := make([]flows.StockLine, len(items))
	for i := range items {
		lines[i] = flows.StockLine{
			Name:         items[i].Name,
			SKU:          items[i].SKU,
			StockLevel:   items[i].StockLevel,
			ReorderLevel: items[i].ReorderLevel,
			Vendor:       items[i].Vendor,
		}
	}

	out, err := flows.RestockSuggestion.Run(ctx, s.gen, flows.RestockSuggestionInput{Items: lines})
	if err != nil {
		return nil, err
	}

	return &RestockSuggestionResponse{
		Suggestions: out.Suggestions,
		Urgent:      out.Urgent,
		Summary:     out.Summary,
	}, nil
}
