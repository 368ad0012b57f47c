package handler

import (
	"github.com/gin-gonic/gin"

	biapp "github.com/bizos/backend/internal/application/bi"
)

// maxCSVBytes caps forecast CSV uploads at 4 MiB
const maxCSVBytes = 4 << 20

// BIHandler handles business intelligence endpoints
type BIHandler struct {
	BaseHandler
	bi *biapp.Service
}

// NewBIHandler creates a new BIHandler
func NewBIHandler(bi *biapp.Service) *BIHandler {
	return &BIHandler{bi: bi}
}

// RegisterRoutes registers the BI endpoints
func (h *BIHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bi/forecast", h.Forecast)
	rg.POST("/bi/kpi-summary", h.SummarizeKPIs)
	rg.POST("/bi/chart", h.GenerateChart)
	rg.POST("/bi/competitor-analysis", h.AnalyzeCompetitor)
	rg.POST("/bi/dashboard", h.GenerateDashboard)
}

// Forecast projects a metric forward from an uploaded CSV of historicals
// (multipart form: file + metric + horizon)
func (h *BIHandler) Forecast(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req biapp.ForecastRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file upload is required")
		return
	}
	if fileHeader.Size > maxCSVBytes {
		h.BadRequest(c, "CSV file must be 4 MB or smaller")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	resp, err := h.bi.Forecast(c.Request.Context(), req, file)
	if err != nil {
		h.HandleErrorTagged(c, "FORECAST", err)
		return
	}
	h.Success(c, resp)
}

// SummarizeKPIs narrates a set of metric readings
func (h *BIHandler) SummarizeKPIs(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req biapp.KPISummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.bi.SummarizeKPIs(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "KPI_SUMMARY", err)
		return
	}
	h.Success(c, resp)
}

// GenerateChart picks a chart spec for the supplied data points
func (h *BIHandler) GenerateChart(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req biapp.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.bi.GenerateChart(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "CHART", err)
		return
	}
	h.Success(c, resp)
}

// AnalyzeCompetitor fetches a competitor's page and analyzes it
func (h *BIHandler) AnalyzeCompetitor(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req biapp.CompetitorAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.bi.AnalyzeCompetitor(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "COMPETITOR_ANALYSIS", err)
		return
	}
	h.Success(c, resp)
}

// GenerateDashboard composes a dashboard layout from the caller's profile
func (h *BIHandler) GenerateDashboard(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req biapp.DashboardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindingError(c, err)
			return
		}
	}

	resp, err := h.bi.GenerateDashboard(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "DASHBOARD", err)
		return
	}
	h.Success(c, resp)
}
