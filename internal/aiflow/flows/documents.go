package flows

import "github.com/bizos/backend/internal/aiflow"

type ContractParseInput struct {
	FileText string `validate:"required"`
}

type ContractParseOutput struct {
	IsContract     bool     `json:"isContract" desc:"False when the document is not a contract"`
	Parties        []string `json:"parties"`
	EffectiveDate  string   `json:"effectiveDate" desc:"ISO date or empty when absent"`
	ExpiryDate     string   `json:"expiryDate"`
	PaymentTerms   string   `json:"paymentTerms"`
	KeyObligations []string `json:"keyObligations"`
	Risks          []string `json:"risks"`
	Summary        string   `json:"summary"`
}

const contractParseTemplate = `Read this document and determine whether it is a contract.

Document:
{{.FileText}}

If it is a contract, extract the parties, effective and expiry dates, payment terms, key obligations and notable risks, then summarize it. If it is not a contract, say so and leave the contract fields empty.`

var ContractParse = aiflow.New[ContractParseInput, ContractParseOutput](
	"contract_parse",
	contractParseTemplate,
	aiflow.WithPrepare[ContractParseInput, ContractParseOutput](func(in ContractParseInput) ContractParseInput {
		in.FileText = aiflow.Truncate(in.FileText, aiflow.FileBudget)
		return in
	}),
)

type DocumentSummaryInput struct {
	Content string `validate:"required"`
	Focus   string
}

type DocumentSummaryOutput struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

const documentSummaryTemplate = `Summarize the following document{{if .Focus}}, focusing on {{.Focus}}{{end}}:

{{.Content}}

Give a concise summary and the key points.`

var DocumentSummary = aiflow.New[DocumentSummaryInput, DocumentSummaryOutput](
	"document_summary",
	documentSummaryTemplate,
	aiflow.WithPrepare[DocumentSummaryInput, DocumentSummaryOutput](func(in DocumentSummaryInput) DocumentSummaryInput {
		in.Content = aiflow.Truncate(in.Content, aiflow.FileBudget)
		return in
	}),
)

type DocumentDraftInput struct {
	DocumentType string `validate:"required"`
	Subject      string `validate:"required"`
	Tone         string
	Points       []string
}

type DocumentDraftOutput struct {
	Title string `json:"title"`
	Body  string `json:"body" desc:"Markdown body of the drafted document"`
}

const documentDraftTemplate = `Draft a {{.DocumentType}} about: {{.Subject}}
{{if .Tone}}Tone: {{.Tone}}
{{end}}{{if .Points}}It must cover:
{{range .Points}}- {{.}}
{{end}}{{end}}Write the full document in markdown with a fitting title.`

var DocumentDraft = aiflow.New[DocumentDraftInput, DocumentDraftOutput](
	"document_draft",
	documentDraftTemplate,
)

type DocumentCategorizeInput struct {
	FileName string
	Content  string `validate:"required"`
}

type DocumentCategorizeOutput struct {
	Category   string  `json:"category" enum:"invoice,contract,report,correspondence,hr,legal,marketing,other"`
	Confidence float64 `json:"confidence" desc:"0 to 1"`
	Reason     string  `json:"reason"`
}

const documentCategorizeTemplate = `Categorize this document{{if .FileName}} (file name: {{.FileName}}){{end}}:

{{.Content}}

Pick the single best category and explain the choice briefly.`

var DocumentCategorize = aiflow.New[DocumentCategorizeInput, DocumentCategorizeOutput](
	"document_categorize",
	documentCategorizeTemplate,
	aiflow.WithPrepare[DocumentCategorizeInput, DocumentCategorizeOutput](func(in DocumentCategorizeInput) DocumentCategorizeInput {
		in.Content = aiflow.Truncate(in.Content, aiflow.FileBudget)
		return in
	}),
)
