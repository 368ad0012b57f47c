package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/docparse"
)

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

const contractJSON = `{
	"isContract": true,
	"parties": ["Harbor Coffee LLC", "Acme Supply Co"],
	"effectiveDate": "2026-01-01",
	"expiryDate": "2026-12-31",
	"paymentTerms": "Net 30",
	"keyObligations": ["Monthly delivery of 200kg of beans"],
	"risks": ["Auto-renewal unless cancelled 60 days out"],
	"summary": "A one-year supply agreement."
}`

const notContractJSON = `{
	"isContract": false,
	"parties": [],
	"effectiveDate": "",
	"expiryDate": "",
	"paymentTerms": "",
	"keyObligations": [],
	"risks": [],
	"summary": "This is a meeting agenda, not a contract."
}`

func TestParseContract(t *testing.T) {
	t.Run("extracts contract fields", func(t *testing.T) {
		gen := &stubGenerator{response: contractJSON}
		svc := NewService(docparse.NewParser(), gen, nil)

		text := []byte("SUPPLY AGREEMENT between Harbor Coffee LLC and Acme Supply Co. Payment terms: Net 30.")
		resp, err := svc.ParseContract(context.Background(), text, "agreement.txt", "text/plain")
		require.NoError(t, err)
		assert.True(t, resp.IsContract)
		assert.Equal(t, []string{"Harbor Coffee LLC", "Acme Supply Co"}, resp.Parties)
		assert.Equal(t, "Net 30", resp.PaymentTerms)
		assert.Contains(t, gen.lastPrompt, "SUPPLY AGREEMENT")
	})

	t.Run("non-contract upload is not an error", func(t *testing.T) {
		gen := &stubGenerator{response: notContractJSON}
		svc := NewService(docparse.NewParser(), gen, nil)

		resp, err := svc.ParseContract(context.Background(), []byte("Agenda: 1. Coffee 2. Budget"), "agenda.txt", "text/plain")
		require.NoError(t, err)
		assert.False(t, resp.IsContract)
		assert.Empty(t, resp.Parties)
	})

	t.Run("empty upload rejected", func(t *testing.T) {
		svc := NewService(docparse.NewParser(), &stubGenerator{}, nil)

		_, err := svc.ParseContract(context.Background(), nil, "empty.pdf", "application/pdf")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FILE", domainErr.Code)
	})

	t.Run("unsupported type rejected", func(t *testing.T) {
		svc := NewService(docparse.NewParser(), &stubGenerator{}, nil)

		_, err := svc.ParseContract(context.Background(), []byte{0x50, 0x4b}, "archive.zip", "application/zip")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FILE", domainErr.Code)
	})
}

func TestSummarize(t *testing.T) {
	summaryJSON := `{
		"summary": "The memo proposes moving to a four-day week.",
		"keyPoints": ["Trial starts in October", "Fridays off"]
	}`

	gen := &stubGenerator{response: summaryJSON}
	svc := NewService(docparse.NewParser(), gen, nil)

	resp, err := svc.Summarize(context.Background(), SummarizeRequest{
		Content: "Memo: we propose a four-day week trial starting October...",
		Focus:   "schedule changes",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Summary, "four-day week")
	assert.Len(t, resp.KeyPoints, 2)
	assert.Contains(t, gen.lastPrompt, "schedule changes")
}

func TestDraft(t *testing.T) {
	draftJSON := `{
		"title": "Price Adjustment Notice",
		"body": "# Price Adjustment Notice\n\nDear customer..."
	}`

	gen := &stubGenerator{response: draftJSON}
	svc := NewService(docparse.NewParser(), gen, nil)

	resp, err := svc.Draft(context.Background(), DraftRequest{
		DocumentType: "customer letter",
		Subject:      "5% price increase effective November",
		Tone:         "apologetic but firm",
		Points:       []string{"effective date", "reason"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Price Adjustment Notice", resp.Title)
	assert.Contains(t, gen.lastPrompt, "customer letter")
	assert.Contains(t, gen.lastPrompt, "effective date")
}

func TestCategorize(t *testing.T) {
	categorizeJSON := `{
		"category": "invoice",
		"confidence": 0.94,
		"reason": "The document bills for goods with a due date."
	}`

	gen := &stubGenerator{response: categorizeJSON}
	svc := NewService(docparse.NewParser(), gen, nil)

	resp, err := svc.Categorize(context.Background(), CategorizeRequest{
		FileName: "inv-0042.txt",
		Content:  "Invoice #0042. Amount due: $1,200. Due date: 2026-09-30.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Invoice", resp.Category)
	assert.InDelta(t, 0.94, resp.Confidence, 0.001)
	assert.Contains(t, gen.lastPrompt, "inv-0042.txt")
}
