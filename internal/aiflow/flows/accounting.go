// Package flows holds the registered prompt-flow units, one typed definition
// per capability. Templates only substitute, branch and iterate over the bound
// input; output schemas are derived from the output structs.
package flows

import "github.com/bizos/backend/internal/aiflow"

// PayrollSummaryInput carries a pay period plus either extracted timesheet
// text or a timesheet image for multimodal extraction.
type PayrollSummaryInput struct {
	Period         string `validate:"required"`
	Notes          string
	TimesheetText  string
	TimesheetImage []byte
	ImageMIME      string
}

type PayrollLine struct {
	Name        string  `json:"name" desc:"Employee name"`
	HoursWorked float64 `json:"hoursWorked"`
	GrossPay    float64 `json:"grossPay"`
	Deductions  float64 `json:"deductions"`
	NetPay      float64 `json:"netPay"`
}

type PayrollSummaryOutput struct {
	Employees    []PayrollLine `json:"employees"`
	TotalPayroll float64       `json:"totalPayroll" desc:"Sum of net pay across employees"`
	Summary      string        `json:"summary"`
}

const payrollSummaryTemplate = `You are a payroll assistant for a small business.
Pay period: {{.Period}}
{{if .Notes}}Additional notes: {{.Notes}}
{{end}}{{if .TimesheetText}}Timesheet data:
{{.TimesheetText}}
{{else}}A timesheet image is attached; extract the hours from it.
{{end}}Compute each employee's gross pay, deductions and net pay, then summarize the payroll run.`

var PayrollSummary = aiflow.New[PayrollSummaryInput, PayrollSummaryOutput](
	"payroll_summary",
	payrollSummaryTemplate,
	aiflow.WithPrepare[PayrollSummaryInput, PayrollSummaryOutput](func(in PayrollSummaryInput) PayrollSummaryInput {
		in.TimesheetText = aiflow.Truncate(in.TimesheetText, aiflow.FileBudget)
		return in
	}),
	aiflow.WithImage[PayrollSummaryInput, PayrollSummaryOutput](func(in PayrollSummaryInput) ([]byte, string) {
		return in.TimesheetImage, in.ImageMIME
	}),
)

type ExpenseLine struct {
	Category string  `validate:"required"`
	Amount   float64 `validate:"required"`
	Date     string  `validate:"required"`
	Note     string
}

type FinancialReportInput struct {
	Period   string        `validate:"required"`
	Expenses []ExpenseLine `validate:"required,min=1,dive"`
}

type CategoryInsight struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Share    float64 `json:"share" desc:"Fraction of total spend, 0 to 1"`
}

type FinancialReportOutput struct {
	Title             string            `json:"title"`
	Overview          string            `json:"overview"`
	Highlights        []string          `json:"highlights"`
	CategoryBreakdown []CategoryInsight `json:"categoryBreakdown"`
	Recommendations   []string          `json:"recommendations"`
}

const financialReportTemplate = `Write a financial report for the period {{.Period}} from these expenses:
{{range .Expenses}}- {{.Date}} | {{.Category}} | {{.Amount}}{{if .Note}} | {{.Note}}{{end}}
{{end}}Break spending down by category, call out notable patterns and give practical recommendations.`

var FinancialReport = aiflow.New[FinancialReportInput, FinancialReportOutput](
	"financial_report",
	financialReportTemplate,
)
