// Package bi implements business intelligence flows: forecasting from CSV
// history, KPI narratives, chart generation, competitor analysis from
// scraped pages and dashboard layout generation.
package bi

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/csvimport"
	"github.com/bizos/backend/internal/infrastructure/scrape"
)

// PageFetcher retrieves the readable text of a web page
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*scrape.Page, error)
}

// Service runs the business intelligence flows
type Service struct {
	profiles business.ProfileRepository
	gen      aiflow.Generator
	parser   *csvimport.Parser
	fetcher  PageFetcher
	logger   *zap.Logger
}

// NewService creates a new BI Service
func NewService(profiles business.ProfileRepository, gen aiflow.Generator, parser *csvimport.Parser, fetcher PageFetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		profiles: profiles,
		gen:      gen,
		parser:   parser,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Forecast parses an uploaded CSV of historical values and runs the
// forecast flow over it
func (s *Service) Forecast(ctx context.Context, req ForecastRequest, file io.Reader) (*ForecastResponse, error) {
	rows, headers, err := s.parser.Parse(file)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", "Could not parse the CSV file: "+err.Error())
	}

	history, err := seriesFromRows(rows, headers)
	if err != nil {
		return nil, err
	}

	out, err := flows.Forecast.Run(ctx, s.gen, flows.ForecastInput{
		Metric:  req.Metric,
		Horizon: req.Horizon,
		History: history,
	})
	if err != nil {
		return nil, err
	}

	return &ForecastResponse{
		Points:     out.Points,
		Method:     out.Method,
		Confidence: out.Confidence,
		Commentary: out.Commentary,
	}, nil
}

// seriesFromRows maps CSV rows to series points. The first column carries
// the period label; the value comes from the first column that parsed as a
// number.
func seriesFromRows(rows []csvimport.Row, headers []string) ([]flows.SeriesPoint, error) {
	if len(headers) < 2 {
		return nil, shared.NewDomainError("INVALID_FILE", "The CSV needs a label column and a value column")
	}
	if len(rows) < 2 {
		return nil, shared.NewDomainError("INVALID_FILE", "At least two history rows are required to forecast")
	}

	labelCol := headers[0]
	valueCol := ""
	for _, h := range headers[1:] {
		if _, ok := rows[0][h].(float64); ok {
			valueCol = h
			break
		}
	}
	if valueCol == "" {
		return nil, shared.NewDomainError("INVALID_FILE", "No numeric value column found in the CSV")
	}

	points := make([]flows.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		label, _ := row[labelCol].(string)
		value, ok := row[valueCol].(float64)
		if label == "" || !ok {
			continue
		}
		points = append(points, flows.SeriesPoint{Label: label, Value: value})
	}
	if len(points) < 2 {
		return nil, shared.NewDomainError("INVALID_FILE", "At least two usable history rows are required to forecast")
	}
	return points, nil
}

// SummarizeKPIs runs the KPI summary flow
func (s *Service) SummarizeKPIs(ctx context.Context, req KPISummaryRequest) (*KPISummaryResponse, error) {
	metrics := make([]flows.MetricInput, len(req.Metrics))
	for i, m := range req.Metrics {
		metrics[i] = flows.MetricInput{Name: m.Name, Value: m.Value, Target: m.Target}
	}

	out, err := flows.KPISummary.Run(ctx, s.gen, flows.KPISummaryInput{
		Period:  req.Period,
		Metrics: metrics,
	})
	if err != nil {
		return nil, err
	}

	return &KPISummaryResponse{
		Headline:        out.Headline,
		Assessments:     out.Assessments,
		Recommendations: out.Recommendations,
	}, nil
}

// GenerateChart runs the chart flow over labeled data
func (s *Service) GenerateChart(ctx context.Context, req ChartRequest) (*ChartResponse, error) {
	data := make([]flows.SeriesPoint, len(req.Data))
	for i, p := range req.Data {
		data[i] = flows.SeriesPoint{Label: p.Label, Value: p.Value}
	}

	out, err := flows.Chart.Run(ctx, s.gen, flows.ChartInput{
		Request: req.Request,
		Data:    data,
	})
	if err != nil {
		return nil, err
	}

	return &ChartResponse{
		ChartType: out.ChartType,
		Title:     out.Title,
		XLabel:    out.XLabel,
		YLabel:    out.YLabel,
		Series:    out.Series,
	}, nil
}

// competitorFetchLimit caps concurrent page fetches per request.
const competitorFetchLimit = 4

// AnalyzeCompetitor fetches the competitor's pages concurrently and runs
// the analysis flow over their combined readable text. Pages that fail to
// fetch are skipped; the whole request fails only when nothing could be
// fetched.
func (s *Service) AnalyzeCompetitor(ctx context.Context, req CompetitorAnalysisRequest) (*CompetitorAnalysisResponse, error) {
	urls := req.URLs
	if req.URL != "" {
		urls = append([]string{req.URL}, urls...)
	}

	texts := make([]string, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(competitorFetchLimit)
	for i, rawURL := range urls {
		g.Go(func() error {
			page, err := s.fetcher.Fetch(gctx, rawURL)
			if err != nil {
				s.logger.Warn("competitor page fetch failed",
					zap.String("url", rawURL),
					zap.Error(err))
				return nil
			}
			texts[i] = page.Text
			return nil
		})
	}
	_ = g.Wait()

	var content strings.Builder
	fetched := 0
	for i, text := range texts {
		if text == "" {
			continue
		}
		if fetched > 0 {
			content.WriteString("\n\n")
		}
		fmt.Fprintf(&content, "[%s]\n%s", urls[i], text)
		fetched++
	}
	if fetched == 0 {
		return nil, shared.NewDomainError("UPSTREAM_ERROR", "Could not fetch any competitor page")
	}

	out, err := flows.CompetitorAnalysis.Run(ctx, s.gen, flows.CompetitorAnalysisInput{
		CompetitorName: req.CompetitorName,
		PageContent:    content.String(),
		Focus:          req.Focus,
	})
	if err != nil {
		return nil, err
	}

	return &CompetitorAnalysisResponse{
		Positioning:   out.Positioning,
		Strengths:     out.Strengths,
		Weaknesses:    out.Weaknesses,
		Pricing:       out.Pricing,
		Opportunities: out.Opportunities,
	}, nil
}

// GenerateDashboard runs the dashboard flow seeded with the caller's
// business profile
func (s *Service) GenerateDashboard(ctx context.Context, ownerID uuid.UUID, req DashboardRequest) (*DashboardResponse, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	metrics := make([]flows.MetricInput, len(req.Metrics))
	for i, m := range req.Metrics {
		metrics[i] = flows.MetricInput{Name: m.Name, Value: m.Value, Target: m.Target}
	}

	out, err := flows.Dashboard.Run(ctx, s.gen, flows.DashboardInput{
		BusinessName: profile.Name,
		Industry:     profile.Industry,
		Modules:      profile.EnabledModules,
		Metrics:      metrics,
	})
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Widgets: out.Widgets,
		Layout:  out.Layout,
		Summary: out.Summary,
	}, nil
}
