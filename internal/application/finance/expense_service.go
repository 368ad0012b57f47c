// Package finance implements expense tracking, AI financial reporting and
// payroll summarization.
package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/finance"
	"github.com/bizos/backend/internal/domain/shared"
)

// ExpenseService handles expense recording and listing
type ExpenseService struct {
	expenses finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenses finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, ownerID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	expense, err := finance.NewExpense(ownerID, req.Amount, finance.ExpenseCategory(req.Category), date, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// List returns the caller's expenses, newest first
func (s *ExpenseService) List(ctx context.Context, ownerID uuid.UUID, req ExpenseListFilter) (*shared.Paginated[ExpenseResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search
	if req.Category != "" {
		if !finance.ValidCategory(finance.ExpenseCategory(req.Category)) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category: "+req.Category)
		}
		filter.Filters["category"] = req.Category
	}

	expenses, err := s.expenses.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.expenses.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		items[i] = ToExpenseResponse(&expenses[i])
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}
