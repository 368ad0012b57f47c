package flows

import "github.com/bizos/backend/internal/aiflow"

type SeriesPoint struct {
	Label string  `json:"label" validate:"required"`
	Value float64 `json:"value"`
}

type ForecastInput struct {
	Metric  string        `validate:"required"`
	Horizon int           `validate:"required,gt=0,lte=36"`
	History []SeriesPoint `validate:"required,min=2,dive"`
}

type ForecastOutput struct {
	Points     []SeriesPoint `json:"points" desc:"One forecast point per future period"`
	Method     string        `json:"method" desc:"Short description of the reasoning used"`
	Confidence string        `json:"confidence" enum:"low,medium,high"`
	Commentary string        `json:"commentary"`
}

const forecastTemplate = `Forecast the metric "{{.Metric}}" for the next {{.Horizon}} periods from this history:
{{range .History}}- {{.Label}}: {{.Value}}
{{end}}Extrapolate the trend and seasonality you observe. Return one point per future period, name the method you used and rate your confidence.`

var Forecast = aiflow.New[ForecastInput, ForecastOutput](
	"forecast",
	forecastTemplate,
)

type MetricInput struct {
	Name   string `validate:"required"`
	Value  float64
	Target *float64
}

type KPISummaryInput struct {
	Period  string        `validate:"required"`
	Metrics []MetricInput `validate:"required,min=1,dive"`
}

type KPIAssessment struct {
	Name       string `json:"name"`
	Status     string `json:"status" enum:"on_track,at_risk,off_track"`
	Commentary string `json:"commentary"`
}

type KPISummaryOutput struct {
	Headline        string          `json:"headline"`
	Assessments     []KPIAssessment `json:"assessments"`
	Recommendations []string        `json:"recommendations"`
}

const kpiSummaryTemplate = `Assess these KPIs for {{.Period}}:
{{range .Metrics}}- {{.Name}}: {{.Value}}{{if .Target}} (target {{.Target}}){{end}}
{{end}}Judge each metric against its target where given, write a one-line headline for the period and recommend actions.`

var KPISummary = aiflow.New[KPISummaryInput, KPISummaryOutput](
	"kpi_summary",
	kpiSummaryTemplate,
)

type ChartInput struct {
	Request string        `validate:"required"`
	Data    []SeriesPoint `validate:"required,min=1,dive"`
}

type ChartSeries struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

type ChartOutput struct {
	ChartType string        `json:"chartType" enum:"bar,line,pie,area,scatter"`
	Title     string        `json:"title"`
	XLabel    string        `json:"xLabel"`
	YLabel    string        `json:"yLabel"`
	Series    []ChartSeries `json:"series"`
}

const chartTemplate = `The user wants a chart: {{.Request}}
Data:
{{range .Data}}- {{.Label}}: {{.Value}}
{{end}}Choose the chart type best suited to the request and shape the data into titled, labeled series.`

var Chart = aiflow.New[ChartInput, ChartOutput](
	"chart_generation",
	chartTemplate,
)

type CompetitorAnalysisInput struct {
	CompetitorName string `validate:"required"`
	PageContent    string `validate:"required"`
	Focus          string
}

type CompetitorAnalysisOutput struct {
	Positioning   string   `json:"positioning"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Pricing       string   `json:"pricing" desc:"What the page reveals about pricing, or 'unknown'"`
	Opportunities []string `json:"opportunities" desc:"Openings for us against this competitor"`
}

const competitorAnalysisTemplate = `Analyze the competitor "{{.CompetitorName}}" from their website content below.
{{if .Focus}}Focus the analysis on: {{.Focus}}
{{end}}Website content:
{{.PageContent}}

Describe their market positioning, strengths, weaknesses and pricing signals, and identify opportunities to compete against them.`

var CompetitorAnalysis = aiflow.New[CompetitorAnalysisInput, CompetitorAnalysisOutput](
	"competitor_analysis",
	competitorAnalysisTemplate,
	aiflow.WithPrepare[CompetitorAnalysisInput, CompetitorAnalysisOutput](func(in CompetitorAnalysisInput) CompetitorAnalysisInput {
		in.PageContent = aiflow.Truncate(in.PageContent, aiflow.HTMLBudget)
		return in
	}),
)

type DashboardInput struct {
	BusinessName string `validate:"required"`
	Industry     string
	Modules      []string      `validate:"required,min=1"`
	Metrics      []MetricInput `validate:"dive"`
}

type DashboardWidget struct {
	Title       string `json:"title"`
	Kind        string `json:"kind" enum:"stat,chart,list,table"`
	Description string `json:"description"`
	Size        string `json:"size" enum:"small,medium,large"`
}

type DashboardOutput struct {
	Widgets []DashboardWidget `json:"widgets"`
	Layout  string            `json:"layout" desc:"Suggested ordering of the widgets, top to bottom"`
	Summary string            `json:"summary"`
}

const dashboardTemplate = `Design a dashboard for {{.BusinessName}}{{if .Industry}} ({{.Industry}}){{end}}.
Enabled modules: {{join .Modules ", "}}
{{if .Metrics}}Current metrics:
{{range .Metrics}}- {{.Name}}: {{.Value}}
{{end}}{{end}}Propose the widgets this business should see first, their kind and size, and a sensible layout.`

var Dashboard = aiflow.New[DashboardInput, DashboardOutput](
	"dashboard_generation",
	dashboardTemplate,
)
