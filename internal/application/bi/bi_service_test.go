package bi

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/csvimport"
	"github.com/bizos/backend/internal/infrastructure/scrape"
)

// MockProfileRepository is a mock implementation of business.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*business.Profile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *business.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	g.lastPrompt = prompt
	return g.response, g.err
}

func (g *stubGenerator) GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema) (string, error) {
	g.lastPrompt = prompt
	return g.response, g.err
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.response, g.err
}

type stubFetcher struct {
	page *scrape.Page
	err  error
}

func (f *stubFetcher) Fetch(ctx context.Context, rawURL string) (*scrape.Page, error) {
	return f.page, f.err
}

// mapFetcher serves canned page text per URL and records what was fetched.
type mapFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	seen  []string
}

func (f *mapFetcher) Fetch(ctx context.Context, rawURL string) (*scrape.Page, error) {
	f.mu.Lock()
	f.seen = append(f.seen, rawURL)
	f.mu.Unlock()
	text, ok := f.pages[rawURL]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &scrape.Page{URL: rawURL, Text: text}, nil
}

func (f *mapFetcher) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.seen...)
}

func newService(gen *stubGenerator, fetcher PageFetcher, profiles business.ProfileRepository) *Service {
	return NewService(profiles, gen, csvimport.NewParser(), fetcher, nil)
}

const forecastJSON = `{
	"points": [
		{"label": "2026-07", "value": 5400},
		{"label": "2026-08", "value": 5650}
	],
	"method": "Linear trend over six months",
	"confidence": "medium",
	"commentary": "Revenue has grown steadily."
}`

func TestForecast(t *testing.T) {
	t.Run("parses csv history into the prompt", func(t *testing.T) {
		gen := &stubGenerator{response: forecastJSON}
		svc := newService(gen, &stubFetcher{}, new(MockProfileRepository))

		csv := "month,revenue\n2026-04,4800\n2026-05,5000\n2026-06,5200\n"
		resp, err := svc.Forecast(context.Background(), ForecastRequest{Metric: "revenue", Horizon: 2}, strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, resp.Points, 2)
		assert.Equal(t, "2026-07", resp.Points[0].Label)
		assert.Equal(t, "medium", resp.Confidence)
		assert.Contains(t, gen.lastPrompt, "2026-05: 5000")
	})

	t.Run("rejects csv without numeric column", func(t *testing.T) {
		gen := &stubGenerator{response: forecastJSON}
		svc := newService(gen, &stubFetcher{}, new(MockProfileRepository))

		csv := "month,note\n2026-04,slow start\n2026-05,picked up\n"
		_, err := svc.Forecast(context.Background(), ForecastRequest{Metric: "revenue", Horizon: 2}, strings.NewReader(csv))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FILE", domainErr.Code)
	})

	t.Run("rejects single-row history", func(t *testing.T) {
		gen := &stubGenerator{response: forecastJSON}
		svc := newService(gen, &stubFetcher{}, new(MockProfileRepository))

		csv := "month,revenue\n2026-04,4800\n"
		_, err := svc.Forecast(context.Background(), ForecastRequest{Metric: "revenue", Horizon: 2}, strings.NewReader(csv))
		require.Error(t, err)
	})
}

func TestSummarizeKPIs(t *testing.T) {
	kpiJSON := `{
		"headline": "Solid quarter with churn creeping up.",
		"assessments": [
			{"name": "MRR", "status": "on_track", "commentary": "Above target."},
			{"name": "Churn", "status": "at_risk", "commentary": "Half a point over target."}
		],
		"recommendations": ["Run a win-back campaign."]
	}`

	gen := &stubGenerator{response: kpiJSON}
	svc := newService(gen, &stubFetcher{}, new(MockProfileRepository))

	target := 12000.0
	resp, err := svc.SummarizeKPIs(context.Background(), KPISummaryRequest{
		Period: "Q2 2026",
		Metrics: []MetricEntry{
			{Name: "MRR", Value: 12500, Target: &target},
			{Name: "Churn", Value: 3.1},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Headline, "Solid quarter")
	require.Len(t, resp.Assessments, 2)
	assert.Equal(t, "at_risk", resp.Assessments[1].Status)
}

func TestGenerateChart(t *testing.T) {
	chartJSON := `{
		"chartType": "bar",
		"title": "Spend by category",
		"xLabel": "Category",
		"yLabel": "USD",
		"series": [
			{"name": "Spend", "points": [{"label": "Travel", "value": 1200}, {"label": "Software", "value": 800}]}
		]
	}`

	gen := &stubGenerator{response: chartJSON}
	svc := newService(gen, &stubFetcher{}, new(MockProfileRepository))

	resp, err := svc.GenerateChart(context.Background(), ChartRequest{
		Request: "Compare spend across categories",
		Data: []ChartPoint{
			{Label: "Travel", Value: 1200},
			{Label: "Software", Value: 800},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "bar", resp.ChartType)
	require.Len(t, resp.Series, 1)
	assert.Len(t, resp.Series[0].Points, 2)
}

func TestAnalyzeCompetitor(t *testing.T) {
	analysisJSON := `{
		"positioning": "Premium analytics for mid-market retailers.",
		"strengths": ["Strong integrations"],
		"weaknesses": ["High entry price"],
		"pricing": "From $499/month",
		"opportunities": ["Undercut on entry tier"]
	}`

	t.Run("feeds scraped text to the flow", func(t *testing.T) {
		gen := &stubGenerator{response: analysisJSON}
		fetcher := &stubFetcher{page: &scrape.Page{
			URL:   "https://competitor.example",
			Title: "Competitor",
			Text:  "Premium analytics platform. Plans from $499/month.",
		}}
		svc := newService(gen, fetcher, new(MockProfileRepository))

		resp, err := svc.AnalyzeCompetitor(context.Background(), CompetitorAnalysisRequest{
			CompetitorName: "Competitor Inc",
			URL:            "https://competitor.example",
		})
		require.NoError(t, err)
		assert.Equal(t, "From $499/month", resp.Pricing)
		assert.Contains(t, gen.lastPrompt, "Plans from $499/month")
	})

	t.Run("fetch failure surfaces as upstream error", func(t *testing.T) {
		gen := &stubGenerator{response: analysisJSON}
		fetcher := &stubFetcher{err: errors.New("connection refused")}
		svc := newService(gen, fetcher, new(MockProfileRepository))

		_, err := svc.AnalyzeCompetitor(context.Background(), CompetitorAnalysisRequest{
			CompetitorName: "Competitor Inc",
			URL:            "https://competitor.example",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UPSTREAM_ERROR", domainErr.Code)
	})

	t.Run("combines multiple pages into one prompt", func(t *testing.T) {
		gen := &stubGenerator{response: analysisJSON}
		fetcher := &mapFetcher{pages: map[string]string{
			"https://competitor.example":         "Premium analytics platform.",
			"https://competitor.example/pricing": "Plans from $499/month.",
		}}
		svc := newService(gen, fetcher, new(MockProfileRepository))

		_, err := svc.AnalyzeCompetitor(context.Background(), CompetitorAnalysisRequest{
			CompetitorName: "Competitor Inc",
			URL:            "https://competitor.example",
			URLs:           []string{"https://competitor.example/pricing"},
		})
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Premium analytics platform.")
		assert.Contains(t, gen.lastPrompt, "Plans from $499/month.")
		assert.Contains(t, gen.lastPrompt, "[https://competitor.example/pricing]")
		assert.ElementsMatch(t,
			[]string{"https://competitor.example", "https://competitor.example/pricing"},
			fetcher.fetched())
	})

	t.Run("unreachable page is skipped, not fatal", func(t *testing.T) {
		gen := &stubGenerator{response: analysisJSON}
		fetcher := &mapFetcher{pages: map[string]string{
			"https://competitor.example": "Premium analytics platform.",
		}}
		svc := newService(gen, fetcher, new(MockProfileRepository))

		_, err := svc.AnalyzeCompetitor(context.Background(), CompetitorAnalysisRequest{
			CompetitorName: "Competitor Inc",
			URL:            "https://competitor.example",
			URLs:           []string{"https://competitor.example/down"},
		})
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Premium analytics platform.")
		assert.NotContains(t, gen.lastPrompt, "/down]")
	})
}

func TestGenerateDashboard(t *testing.T) {
	dashboardJSON := `{
		"widgets": [
			{"title": "Monthly revenue", "kind": "chart", "description": "Revenue trend", "size": "large"},
			{"title": "Open tasks", "kind": "list", "description": "Due this week", "size": "small"}
		],
		"layout": "Revenue chart first, then the task list.",
		"summary": "A finance-first dashboard."
	}`

	ownerID := uuid.New()
	profile, err := business.NewProfile(ownerID, "Harbor Coffee", "Neighborhood roastery", "Food & Beverage")
	require.NoError(t, err)

	profiles := new(MockProfileRepository)
	profiles.On("FindByOwner", mock.Anything, ownerID).Return(profile, nil)

	gen := &stubGenerator{response: dashboardJSON}
	svc := newService(gen, &stubFetcher{}, profiles)

	resp, err := svc.GenerateDashboard(context.Background(), ownerID, DashboardRequest{
		Metrics: []MetricEntry{{Name: "MRR", Value: 5400}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Widgets, 2)
	assert.Equal(t, "chart", resp.Widgets[0].Kind)
	assert.Contains(t, gen.lastPrompt, "Harbor Coffee")
}
