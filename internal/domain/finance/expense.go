package finance

import (
	"slices"
	"time"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is the closed set of expense categories
type ExpenseCategory string

const (
	CategoryTravel         ExpenseCategory = "Travel"
	CategoryMeals          ExpenseCategory = "Meals"
	CategoryOfficeSupplies ExpenseCategory = "Office Supplies"
	CategorySoftware       ExpenseCategory = "Software"
	CategoryMarketing      ExpenseCategory = "Marketing"
	CategoryUtilities      ExpenseCategory = "Utilities"
	CategoryRent           ExpenseCategory = "Rent"
	CategoryPayroll        ExpenseCategory = "Payroll"
	CategoryOther          ExpenseCategory = "Other"
)

// AllCategories lists every valid expense category
var AllCategories = []ExpenseCategory{
	CategoryTravel,
	CategoryMeals,
	CategoryOfficeSupplies,
	CategorySoftware,
	CategoryMarketing,
	CategoryUtilities,
	CategoryRent,
	CategoryPayroll,
	CategoryOther,
}

// ValidCategory reports whether c is a known expense category
func ValidCategory(c ExpenseCategory) bool {
	return slices.Contains(AllCategories, c)
}

// Expense represents one recorded expense. Expenses are append-only from the
// API's perspective: created and listed, never edited or deleted.
type Expense struct {
	shared.OwnedEntity
	Amount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Category ExpenseCategory `gorm:"type:varchar(50);not null;index"`
	Date     time.Time       `gorm:"not null"`
	Note     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(ownerID uuid.UUID, amount decimal.Decimal, category ExpenseCategory, date time.Time, note string) (*Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if !ValidCategory(category) {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category: "+string(category))
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date is required")
	}
	if len(note) > 1000 {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note cannot exceed 1000 characters")
	}

	return &Expense{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Amount:      amount,
		Category:    category,
		Date:        date,
		Note:        note,
	}, nil
}
