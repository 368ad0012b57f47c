package inventory

import (
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Item represents one stocked inventory item. Stock is mutated outside the
// API surface; this service reads it to drive restock suggestions.
type Item struct {
	shared.OwnedEntity
	Name         string `gorm:"type:varchar(200);not null"`
	SKU          string `gorm:"type:varchar(100);not null;index"`
	StockLevel   int    `gorm:"not null;default:0"`
	ReorderLevel int    `gorm:"not null;default:0"`
	Vendor       string `gorm:"type:varchar(200)"`
	Location     string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory_items"
}

// NewItem creates a new inventory item
func NewItem(ownerID uuid.UUID, name, sku string, stockLevel, reorderLevel int, vendor, location string) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Item SKU cannot be empty")
	}
	if stockLevel < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock level cannot be negative")
	}
	if reorderLevel < 0 {
		return nil, shared.NewDomainError("INVALID_REORDER", "Reorder level cannot be negative")
	}

	return &Item{
		OwnedEntity:  shared.NewOwnedEntity(ownerID),
		Name:         name,
		SKU:          strings.ToUpper(sku),
		StockLevel:   stockLevel,
		ReorderLevel: reorderLevel,
		Vendor:       vendor,
		Location:     location,
	}, nil
}

// Update updates the item's editable fields
func (i *Item) Update(name string, stockLevel, reorderLevel int, vendor, location string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if stockLevel < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock level cannot be negative")
	}
	if reorderLevel < 0 {
		return shared.NewDomainError("INVALID_REORDER", "Reorder level cannot be negative")
	}
	i.Name = name
	i.StockLevel = stockLevel
	i.ReorderLevel = reorderLevel
	i.Vendor = vendor
	i.Location = location
	i.Touch()
	return nil
}

// NeedsRestock returns true when stock has fallen to or below the reorder level
func (i *Item) NeedsRestock() bool {
	return i.StockLevel <= i.ReorderLevel
}
