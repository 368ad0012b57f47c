package persistence

import (
	"context"
	"errors"

	"github.com/bizos/backend/internal/domain/operations"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by its ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*operations.Task, error) {
	var task operations.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindByIDForOwner finds a task by ID scoped to an owner
func (r *GormTaskRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*operations.Task, error) {
	var task operations.Task
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindAllForOwner lists tasks for an owner
func (r *GormTaskRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]operations.Task, error) {
	var tasks []operations.Task
	query := r.db.WithContext(ctx).Model(&operations.Task{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "title")
	if err := applyFilter(query, filter).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save creates or updates a task
func (r *GormTaskRepository) Save(ctx context.Context, task *operations.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&operations.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForOwner counts tasks for an owner
func (r *GormTaskRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&operations.Task{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "title")
	query = applyEqualityFilters(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
