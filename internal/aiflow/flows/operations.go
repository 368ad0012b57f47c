package flows

import "github.com/bizos/backend/internal/aiflow"

type TaskLine struct {
	Title   string `validate:"required"`
	DueDate string
	Status  string
}

type LogisticsPlanInput struct {
	Goal        string     `validate:"required"`
	Tasks       []TaskLine `validate:"dive"`
	Constraints []string
}

type PlanStep struct {
	Order  int    `json:"order" desc:"1-based execution order"`
	Action string `json:"action"`
	Owner  string `json:"owner" desc:"Suggested role or person responsible"`
	Due    string `json:"due"`
}

type LogisticsPlanOutput struct {
	Plan    []PlanStep `json:"plan"`
	Risks   []string   `json:"risks"`
	Summary string     `json:"summary"`
}

const logisticsPlanTemplate = `Build an operations plan for this goal: {{.Goal}}
{{if .Tasks}}Existing tasks:
{{range .Tasks}}- {{.Title}}{{if .DueDate}} (due {{.DueDate}}){{end}}{{if .Status}} [{{.Status}}]{{end}}
{{end}}{{end}}{{if .Constraints}}Constraints:
{{range .Constraints}}- {{.}}
{{end}}{{end}}Produce an ordered step-by-step plan with owners and due dates, list the risks and summarize the approach.`

var LogisticsPlan = aiflow.New[LogisticsPlanInput, LogisticsPlanOutput](
	"logistics_plan",
	logisticsPlanTemplate,
)
