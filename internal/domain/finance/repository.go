package finance

import (
	"context"
	"time"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotal is an aggregated spend amount for one category
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAllForOwner lists expenses for an owner, newest first
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Expense, error)

	// FindByDateRange lists expenses for an owner within [from, to]
	FindByDateRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]Expense, error)

	// Save creates an expense. Expenses are append-only, so Save is create-only in practice.
	Save(ctx context.Context, expense *Expense) error

	// CountForOwner counts expenses for an owner
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)

	// TotalsByCategory aggregates spend per category for an owner within [from, to]
	TotalsByCategory(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]CategoryTotal, error)
}
