package flows

import "github.com/bizos/backend/internal/aiflow"

type LeadFollowUpInput struct {
	ClientName  string `validate:"required"`
	Company     string
	Status      string `validate:"required"`
	LastContact string
	Notes       string
}

type LeadFollowUpOutput struct {
	Subject           string `json:"subject"`
	Body              string `json:"body"`
	SuggestedNextStep string `json:"suggestedNextStep"`
	Timing            string `json:"timing" desc:"When to send or follow up, e.g. 'within 2 days'"`
}

const leadFollowUpTemplate = `Draft a follow-up message for a sales lead.

Contact: {{.ClientName}}{{if .Company}} at {{.Company}}{{end}}
Pipeline stage: {{.Status}}
{{if .LastContact}}Last contact: {{.LastContact}}
{{end}}{{if .Notes}}Notes: {{.Notes}}
{{end}}Write a short personalized email moving the deal forward, suggest the concrete next step and when to take it.`

var LeadFollowUp = aiflow.New[LeadFollowUpInput, LeadFollowUpOutput](
	"lead_follow_up",
	leadFollowUpTemplate,
)
