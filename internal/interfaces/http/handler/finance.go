package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	financeapp "github.com/bizos/backend/internal/application/finance"
)

// maxTimesheetBytes caps payroll timesheet image uploads at 8 MiB
const maxTimesheetBytes = 8 << 20

// FinanceHandler handles accounting endpoints
type FinanceHandler struct {
	BaseHandler
	expenses *financeapp.ExpenseService
	reports  *financeapp.ReportService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(expenses *financeapp.ExpenseService, reports *financeapp.ReportService) *FinanceHandler {
	return &FinanceHandler{expenses: expenses, reports: reports}
}

// RegisterRoutes registers the accounting endpoints
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/accounting/expenses", h.CreateExpense)
	rg.GET("/accounting/expenses", h.ListExpenses)
	rg.POST("/accounting/financial-report", h.GenerateReport)
	rg.POST("/accounting/financial-report/pdf", h.ExportReportPDF)
	rg.POST("/accounting/payroll-summary", h.PayrollSummary)
}

// CreateExpense records one expense
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.expenses.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "EXPENSE_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// ListExpenses returns the caller's expenses, newest first
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.ExpenseListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.expenses.List(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "EXPENSE_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GenerateReport runs the financial report flow over a date range
func (h *FinanceHandler) GenerateReport(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.FinancialReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.reports.Generate(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "FINANCIAL_REPORT", err)
		return
	}
	h.Success(c, resp)
}

// ExportReportPDF renders the financial report to PDF
func (h *FinanceHandler) ExportReportPDF(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.FinancialReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	pdf, err := h.reports.ExportPDF(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "FINANCIAL_REPORT_PDF", err)
		return
	}

	fileName := fmt.Sprintf("financial-report-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// PayrollSummary runs the payroll flow over timesheet text or an uploaded
// timesheet image (multipart form)
func (h *FinanceHandler) PayrollSummary(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := financeapp.PayrollSummaryRequest{
		Period:        c.PostForm("period"),
		Notes:         c.PostForm("notes"),
		TimesheetText: c.PostForm("timesheet_text"),
	}
	if req.Period == "" {
		h.BadRequest(c, "period is required")
		return
	}

	if fileHeader, err := c.FormFile("timesheet_image"); err == nil {
		if fileHeader.Size > maxTimesheetBytes {
			h.BadRequest(c, "Timesheet image must be 8 MB or smaller")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.BadRequest(c, "Could not read the uploaded file")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxTimesheetBytes+1))
		if err != nil {
			h.BadRequest(c, "Could not read the uploaded file")
			return
		}
		req.Image = data
		req.ImageMIME = fileHeader.Header.Get("Content-Type")
	}

	resp, err := h.reports.PayrollSummary(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "PAYROLL_SUMMARY", err)
		return
	}
	h.Success(c, resp)
}
