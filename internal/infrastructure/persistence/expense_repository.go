package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/bizos/backend/internal/domain/finance"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAllForOwner lists expenses for an owner, newest first
func (r *GormExpenseRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	var expenses []finance.Expense
	query := r.db.WithContext(ctx).Model(&finance.Expense{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "note", "category")
	if err := applyFilter(query, filter).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindByDateRange lists expenses for an owner within [from, to]
func (r *GormExpenseRepository) FindByDateRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]finance.Expense, error) {
	var expenses []finance.Expense
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, from, to).
		Order("date desc").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save creates an expense. Expenses are append-only, so Save is create-only in practice.
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// CountForOwner counts expenses for an owner
func (r *GormExpenseRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&finance.Expense{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "note", "category")
	query = applyEqualityFilters(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type categoryTotalRow struct {
	Category string
	Total    decimal.Decimal
}

// TotalsByCategory aggregates spend per category for an owner within [from, to]
func (r *GormExpenseRepository) TotalsByCategory(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]finance.CategoryTotal, error) {
	var rows []categoryTotalRow
	if err := r.db.WithContext(ctx).Model(&finance.Expense{}).
		Select("category, SUM(amount) as total").
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, from, to).
		Group("category").
		Order("total desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]finance.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = finance.CategoryTotal{
			Category: finance.ExpenseCategory(row.Category),
			Total:    row.Total,
		}
	}
	return totals, nil
}
