package operations

import (
	"context"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindByIDForOwner finds a task by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Task, error)

	// FindAllForOwner lists tasks for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Task, error)

	// Save creates or updates a task
	Save(ctx context.Context, task *Task) error

	// Delete deletes a task
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountForOwner counts tasks for an owner
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
