package persistence

import (
	"context"
	"errors"

	"github.com/bizos/backend/internal/domain/inventory"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByIDForOwner finds an item by ID scoped to an owner
func (r *GormItemRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAllForOwner lists items for an owner
func (r *GormItemRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.Item, error) {
	var items []inventory.Item
	query := r.db.WithContext(ctx).Model(&inventory.Item{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "name", "sku", "vendor")
	if err := applyFilter(query, filter).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindBelowReorderLevel lists items whose stock is at or below reorder level
func (r *GormItemRepository) FindBelowReorderLevel(ctx context.Context, ownerID uuid.UUID) ([]inventory.Item, error) {
	var items []inventory.Item
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND stock_level <= reorder_level", ownerID).
		Order("stock_level asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes an item
func (r *GormItemRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&inventory.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForOwner counts items for an owner
func (r *GormItemRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&inventory.Item{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "name", "sku", "vendor")
	query = applyEqualityFilters(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Vendor, error) {
	var vendor inventory.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// FindByIDForOwner finds a vendor by ID scoped to an owner
func (r *GormVendorRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*inventory.Vendor, error) {
	var vendor inventory.Vendor
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

// FindAllForOwner lists vendors for an owner
func (r *GormVendorRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.Vendor, error) {
	var vendors []inventory.Vendor
	query := r.db.WithContext(ctx).Model(&inventory.Vendor{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "name", "email")
	if err := applyFilter(query, filter).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *inventory.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// Delete deletes a vendor
func (r *GormVendorRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&inventory.Vendor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
