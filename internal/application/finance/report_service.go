package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/finance"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/printing"
)

// ReportService generates financial reports and payroll summaries
type ReportService struct {
	expenses finance.ExpenseRepository
	profiles business.ProfileRepository
	gen      aiflow.Generator
	renderer printing.PDFRenderer
}

// NewReportService creates a new ReportService. The renderer may be nil when
// PDF export is not configured.
func NewReportService(
	expenses finance.ExpenseRepository,
	profiles business.ProfileRepository,
	gen aiflow.Generator,
	renderer printing.PDFRenderer,
) *ReportService {
	return &ReportService{
		expenses: expenses,
		profiles: profiles,
		gen:      gen,
		renderer: renderer,
	}
}

// Generate runs the financial report flow over the caller's expenses in [from, to]
func (s *ReportService) Generate(ctx context.Context, ownerID uuid.UUID, req FinancialReportRequest) (*FinancialReportResponse, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.FindByDateRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, shared.NewDomainError("INVALID_STATE", "No expenses recorded in the requested period")
	}

	lines := make([]flows.ExpenseLine, len(expenses))
	for i, e := range expenses {
		lines[i] = flows.ExpenseLine{
			Category: string(e.Category),
			Amount:   e.Amount.InexactFloat64(),
			Date:     e.Date.Format(dateLayout),
			Note:     e.Note,
		}
	}

	out, err := flows.FinancialReport.Run(ctx, s.gen, flows.FinancialReportInput{
		Period:   req.Period,
		Expenses: lines,
	})
	if err != nil {
		return nil, err
	}

	totals, err := s.expenses.TotalsByCategory(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return &FinancialReportResponse{
		Report: FinancialReportBody{
			Title:             out.Title,
			Overview:          out.Overview,
			Highlights:        out.Highlights,
			CategoryBreakdown: out.CategoryBreakdown,
			Recommendations:   out.Recommendations,
		},
		Totals: totals,
	}, nil
}

// ExportPDF generates the report and renders it as a PDF document
func (s *ReportService) ExportPDF(ctx context.Context, ownerID uuid.UUID, req FinancialReportRequest) ([]byte, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "PDF export is not configured")
	}

	report, err := s.Generate(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}

	businessName := ""
	if profile, err := s.profiles.FindByOwner(ctx, ownerID); err == nil {
		businessName = profile.Name
	}

	var totalSpend decimal.Decimal
	categories := make([]printing.ReportCategory, 0, len(report.Totals))
	shareByCategory := map[string]float64{}
	for _, ins := range report.Report.CategoryBreakdown {
		shareByCategory[ins.Category] = ins.Share
	}
	for _, t := range report.Totals {
		totalSpend = totalSpend.Add(t.Total)
		categories = append(categories, printing.ReportCategory{
			Category: string(t.Category),
			Total:    t.Total,
			Share:    shareByCategory[string(t.Category)],
		})
	}

	html, err := printing.RenderReportHTML(printing.ReportData{
		Title:           report.Report.Title,
		Period:          req.Period,
		BusinessName:    businessName,
		Overview:        report.Report.Overview,
		Highlights:      report.Report.Highlights,
		Categories:      categories,
		Recommendations: report.Report.Recommendations,
		TotalSpend:      totalSpend,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: report.Report.Title,
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}

// PayrollSummary runs the payroll flow over timesheet text or an image
func (s *ReportService) PayrollSummary(ctx context.Context, req PayrollSummaryRequest) (*PayrollSummaryResponse, error) {
	if req.TimesheetText == "" && len(req.Image) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Provide timesheet text or a timesheet image")
	}

	out, err := flows.PayrollSummary.Run(ctx, s.gen, flows.PayrollSummaryInput{
		Period:         req.Period,
		Notes:          req.Notes,
		TimesheetText:  req.TimesheetText,
		TimesheetImage: req.Image,
		ImageMIME:      req.ImageMIME,
	})
	if err != nil {
		return nil, err
	}

	return &PayrollSummaryResponse{
		Employees:    out.Employees,
		TotalPayroll: out.TotalPayroll,
		Summary:      out.Summary,
	}, nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_DATE", "From date must be formatted YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_DATE", "To date must be formatted YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_DATE", "To date precedes the from date")
	}
	// Include the whole final day.
	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}
