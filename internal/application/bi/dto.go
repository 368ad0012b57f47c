package bi

import (
	"github.com/bizos/backend/internal/aiflow/flows"
)

// ForecastRequest accompanies a CSV upload of historical values. The first
// column of the file is treated as the period label and the first numeric
// column as the value.
type ForecastRequest struct {
	Metric  string `form:"metric" binding:"required"`
	Horizon int    `form:"horizon" binding:"required,gt=0,lte=36"`
}

// ForecastResponse mirrors the forecast flow's output
type ForecastResponse struct {
	Points     []flows.SeriesPoint `json:"points"`
	Method     string              `json:"method"`
	Confidence string              `json:"confidence"`
	Commentary string              `json:"commentary"`
}

// KPISummaryRequest asks for a narrative assessment of a metric set
type KPISummaryRequest struct {
	Period  string        `json:"period" binding:"required"`
	Metrics []MetricEntry `json:"metrics" binding:"required,min=1,dive"`
}

// MetricEntry is one KPI with an optional target
type MetricEntry struct {
	Name   string   `json:"name" binding:"required"`
	Value  float64  `json:"value"`
	Target *float64 `json:"target"`
}

// KPISummaryResponse mirrors the KPI summary flow's output
type KPISummaryResponse struct {
	Headline        string                `json:"headline"`
	Assessments     []flows.KPIAssessment `json:"assessments"`
	Recommendations []string              `json:"recommendations"`
}

// ChartRequest asks for a chart specification from labeled data
type ChartRequest struct {
	Request string       `json:"request" binding:"required"`
	Data    []ChartPoint `json:"data" binding:"required,min=1,dive"`
}

// ChartPoint is one labeled data value
type ChartPoint struct {
	Label string  `json:"label" binding:"required"`
	Value float64 `json:"value"`
}

// ChartResponse mirrors the chart flow's output
type ChartResponse struct {
	ChartType string              `json:"chart_type"`
	Title     string              `json:"title"`
	XLabel    string              `json:"x_label"`
	YLabel    string              `json:"y_label"`
	Series    []flows.ChartSeries `json:"series"`
}

// CompetitorAnalysisRequest points the analysis at one or more pages on a
// competitor's site. url and urls may be combined; at least one is required.
type CompetitorAnalysisRequest struct {
	CompetitorName string   `json:"competitor_name" binding:"required"`
	URL            string   `json:"url" binding:"required_without=URLs,omitempty,url"`
	URLs           []string `json:"urls" binding:"omitempty,max=5,dive,url"`
	Focus          string   `json:"focus"`
}

// CompetitorAnalysisResponse mirrors the competitor analysis flow's output
type CompetitorAnalysisResponse struct {
	Positioning   string   `json:"positioning"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Pricing       string   `json:"pricing"`
	Opportunities []string `json:"opportunities"`
}

// DashboardRequest asks for a widget layout. Business name, industry and
// enabled modules come from the caller's profile; metrics are optional
// current values to seed the widgets with.
type DashboardRequest struct {
	Metrics []MetricEntry `json:"metrics" binding:"omitempty,dive"`
}

// DashboardResponse mirrors the dashboard flow's output
type DashboardResponse struct {
	Widgets []flows.DashboardWidget `json:"widgets"`
	Layout  string                  `json:"layout"`
	Summary string                  `json:"summary"`
}
