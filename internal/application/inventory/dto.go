package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/inventory"
)

// CreateItemRequest registers a stocked item
type CreateItemRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	SKU          string `json:"sku" binding:"required,min=1,max=100"`
	StockLevel   int    `json:"stock_level" binding:"min=0"`
	ReorderLevel int    `json:"reorder_level" binding:"min=0"`
	Vendor       string `json:"vendor" binding:"max=200"`
	Location     string `json:"location" binding:"max=200"`
}

// UpdateItemRequest applies partial updates to an item. SKU is immutable.
type UpdateItemRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	StockLevel   *int    `json:"stock_level" binding:"omitempty,min=0"`
	ReorderLevel *int    `json:"reorder_level" binding:"omitempty,min=0"`
	Vendor       *string `json:"vendor" binding:"omitempty,max=200"`
	Location     *string `json:"location" binding:"omitempty,max=200"`
}

// ItemListFilter narrows item listings
type ItemListFilter struct {
	Search   string `form:"search"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	StockLevel   int       `json:"stock_level"`
	ReorderLevel int       `json:"reorder_level"`
	Vendor       string    `json:"vendor"`
	Location     string    `json:"location"`
	NeedsRestock bool      `json:"needs_restock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToItemResponse maps an item entity to its API representation
func ToItemResponse(i *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		SKU:          i.SKU,
		StockLevel:   i.StockLevel,
		ReorderLevel: i.ReorderLevel,
		Vendor:       i.Vendor,
		Location:     i.Location,
		NeedsRestock: i.NeedsRestock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// CreateVendorRequest registers a supplier
type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	ContactName string `json:"contact_name" binding:"max=200"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"max=50"`
}

// UpdateVendorRequest applies partial updates to a vendor
type UpdateVendorRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToVendorResponse maps a vendor entity to its API representation
func ToVendorResponse(v *inventory.Vendor) VendorResponse {
	return VendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// RestockSuggestionRequest scopes the restock flow. When OnlyLowStock is
// set, only items at or below their reorder level are considered.
type RestockSuggestionRequest struct {
	OnlyLowStock bool `json:"only_low_stock"`
}

// RestockSuggestionResponse mirrors the restock suggestion flow's output
type RestockSuggestionResponse struct {
	Suggestions []flows.RestockLine `json:"suggestions"`
	Urgent      []string            `json:"urgent"`
	Summary     string              `json:"summary"`
}
