package flows

import "github.com/bizos/backend/internal/aiflow"

type StockLine struct {
	Name         string `validate:"required"`
	SKU          string `validate:"required"`
	StockLevel   int
	ReorderLevel int
	Vendor       string
}

type RestockSuggestionInput struct {
	Items []StockLine `validate:"required,min=1,dive"`
}

type RestockLine struct {
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	SuggestedQuantity int    `json:"suggestedQuantity"`
	Vendor            string `json:"vendor"`
	Rationale         string `json:"rationale"`
}

type RestockSuggestionOutput struct {
	Suggestions []RestockLine `json:"suggestions"`
	Urgent      []string      `json:"urgent" desc:"SKUs that need immediate reordering"`
	Summary     string        `json:"summary"`
}

const restockSuggestionTemplate = `Review this inventory and suggest what to reorder.
{{range .Items}}- {{.Name}} ({{.SKU}}): stock {{.StockLevel}}, reorder at {{.ReorderLevel}}{{if .Vendor}}, vendor {{.Vendor}}{{end}}
{{end}}Suggest reorder quantities for items at or below their reorder level, flag anything urgent and summarize.`

var RestockSuggestion = aiflow.New[RestockSuggestionInput, RestockSuggestionOutput](
	"restock_suggestion",
	restockSuggestionTemplate,
)
