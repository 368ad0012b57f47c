package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/finance"
)

const dateLayout = "2006-01-02"

// CreateExpenseRequest records one expense
type CreateExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Note     string          `json:"note" binding:"max=1000"`
}

// ExpenseListFilter represents query options for the expense list
type ExpenseListFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToExpenseResponse maps an expense entity to its API representation
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Amount:    e.Amount,
		Category:  string(e.Category),
		Date:      e.Date.Format(dateLayout),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

// FinancialReportRequest asks for an AI-written report over a date range
type FinancialReportRequest struct {
	Period string `json:"period" binding:"required"`
	From   string `json:"from" binding:"required,datetime=2006-01-02"`
	To     string `json:"to" binding:"required,datetime=2006-01-02"`
}

// FinancialReportResponse is the generated report plus the aggregates it was built from
type FinancialReportResponse struct {
	Report FinancialReportBody     `json:"report"`
	Totals []finance.CategoryTotal `json:"totals"`
}

// FinancialReportBody mirrors the report flow's output
type FinancialReportBody struct {
	Title             string                  `json:"title"`
	Overview          string                  `json:"overview"`
	Highlights        []string                `json:"highlights"`
	CategoryBreakdown []flows.CategoryInsight `json:"categoryBreakdown"`
	Recommendations   []string                `json:"recommendations"`
}

// PayrollSummaryRequest runs the payroll flow over timesheet text or an image
type PayrollSummaryRequest struct {
	Period        string
	Notes         string
	TimesheetText string
	// Image fields come from a multipart upload.
	Image     []byte
	ImageMIME string
}

// PayrollSummaryResponse mirrors the payroll flow's output
type PayrollSummaryResponse struct {
	Employees    []flows.PayrollLine `json:"employees"`
	TotalPayroll float64             `json:"totalPayroll"`
	Summary      string              `json:"summary"`
}
