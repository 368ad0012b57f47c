package persistence

import (
	"context"
	"errors"

	"github.com/bizos/backend/internal/domain/crm"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Client, error) {
	var client crm.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByIDForOwner finds a client by ID scoped to an owner
func (r *GormClientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*crm.Client, error) {
	var client crm.Client
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindAllForOwner lists clients for an owner
func (r *GormClientRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]crm.Client, error) {
	var clients []crm.Client
	query := r.db.WithContext(ctx).Model(&crm.Client{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "name", "company", "email")
	if err := applyFilter(query, filter).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// FindByStatus lists clients in a funnel stage for an owner
func (r *GormClientRepository) FindByStatus(ctx context.Context, ownerID uuid.UUID, status crm.ClientStatus, filter shared.Filter) ([]crm.Client, error) {
	var clients []crm.Client
	query := r.db.WithContext(ctx).Model(&crm.Client{}).
		Where("owner_id = ? AND status = ?", ownerID, status)
	if err := applyFilter(query, filter).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *crm.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&crm.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForOwner counts clients for an owner
func (r *GormClientRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&crm.Client{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "name", "company", "email")
	query = applyEqualityFilters(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
