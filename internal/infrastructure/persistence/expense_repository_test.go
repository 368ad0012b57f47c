package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bizos/backend/internal/domain/finance"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormExpenseRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormExpenseRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	mustCreate := func(ownerID uuid.UUID, amount string, category finance.ExpenseCategory, date time.Time) *finance.Expense {
		t.Helper()
		amt, err := decimal.NewFromString(amount)
		require.NoError(t, err)
		e, err := finance.NewExpense(ownerID, amt, category, date, "test expense")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, e))
		return e
	}

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	created := mustCreate(owner, "120.50", finance.CategoryTravel, jan)
	mustCreate(owner, "80.00", finance.CategoryTravel, feb)
	mustCreate(owner, "45.25", finance.CategoryMeals, feb)
	mustCreate(other, "999.99", finance.CategorySoftware, feb)

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, found.Amount.Equal(decimal.RequireFromString("120.50")))
		assert.Equal(t, finance.CategoryTravel, found.Category)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("list is owner scoped", func(t *testing.T) {
		expenses, err := repo.FindAllForOwner(ctx, owner, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, expenses, 3)
		for _, e := range expenses {
			assert.Equal(t, owner, e.OwnerID)
		}
	})

	t.Run("count is owner scoped", func(t *testing.T) {
		count, err := repo.CountForOwner(ctx, owner, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("category filter narrows list", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["category"] = string(finance.CategoryTravel)

		expenses, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		for _, e := range expenses {
			assert.Equal(t, finance.CategoryTravel, e.Category)
		}
	})

	t.Run("count matches category filter", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["category"] = string(finance.CategoryMeals)

		count, err := repo.CountForOwner(ctx, owner, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("date range excludes out-of-window rows", func(t *testing.T) {
		expenses, err := repo.FindByDateRange(ctx, owner, feb.AddDate(0, 0, -1), mar)
		require.NoError(t, err)
		assert.Len(t, expenses, 2)
	})

	t.Run("totals by category", func(t *testing.T) {
		totals, err := repo.TotalsByCategory(ctx, owner, jan, mar)
		require.NoError(t, err)
		require.Len(t, totals, 2)

		byCategory := map[finance.ExpenseCategory]decimal.Decimal{}
		for _, ct := range totals {
			byCategory[ct.Category] = ct.Total
		}
		assert.True(t, byCategory[finance.CategoryTravel].Equal(decimal.RequireFromString("200.50")))
		assert.True(t, byCategory[finance.CategoryMeals].Equal(decimal.RequireFromString("45.25")))
	})

	t.Run("pagination honors page size", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 2
		page1, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		assert.Len(t, page1, 2)

		filter.Page = 2
		page2, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		assert.Len(t, page2, 1)
	})
}
