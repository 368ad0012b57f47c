package flows

import "github.com/bizos/backend/internal/aiflow"

type CandidateRankingInput struct {
	JobTitle       string `validate:"required"`
	JobDescription string `validate:"required"`
	ResumeText     string `validate:"required"`
}

type CandidateRankingOutput struct {
	Score       int      `json:"score" desc:"Match score from 0 to 100"`
	Explanation string   `json:"explanation" desc:"Short justification of the score"`
	Skills      []string `json:"skills" desc:"Relevant skills found in the resume"`
}

const candidateRankingTemplate = `Evaluate how well this candidate matches the role.

Role: {{.JobTitle}}
Description:
{{.JobDescription}}

Resume:
{{.ResumeText}}

Score the match from 0 to 100, explain the score briefly and list the relevant skills you found.`

var CandidateRanking = aiflow.New[CandidateRankingInput, CandidateRankingOutput](
	"candidate_ranking",
	candidateRankingTemplate,
	aiflow.WithPrepare[CandidateRankingInput, CandidateRankingOutput](func(in CandidateRankingInput) CandidateRankingInput {
		in.ResumeText = aiflow.Truncate(in.ResumeText, aiflow.FileBudget)
		return in
	}),
)

type InterviewSummaryInput struct {
	CandidateName string `validate:"required"`
	JobTitle      string `validate:"required"`
	Transcript    string `validate:"required"`
}

type InterviewSummaryOutput struct {
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Concerns          []string `json:"concerns"`
	Recommendation    string   `json:"recommendation" enum:"advance,hold,reject"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

const interviewSummaryTemplate = `Summarize this interview with {{.CandidateName}} for the {{.JobTitle}} role.

Transcript:
{{.Transcript}}

Capture the candidate's strengths and any concerns, recommend whether to advance, and suggest follow-up questions for the next round.`

var InterviewSummary = aiflow.New[InterviewSummaryInput, InterviewSummaryOutput](
	"interview_summary",
	interviewSummaryTemplate,
	aiflow.WithPrepare[InterviewSummaryInput, InterviewSummaryOutput](func(in InterviewSummaryInput) InterviewSummaryInput {
		in.Transcript = aiflow.Truncate(in.Transcript, aiflow.FileBudget)
		return in
	}),
)

type FollowUpEmailInput struct {
	CandidateName string `validate:"required"`
	JobTitle      string `validate:"required"`
	Stage         string `validate:"required"`
	Outcome       string
}

type FollowUpEmailOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const followUpEmailTemplate = `Draft a professional follow-up email to {{.CandidateName}} about the {{.JobTitle}} position.
Current pipeline stage: {{.Stage}}.
{{if .Outcome}}Outcome to communicate: {{.Outcome}}.
{{end}}Keep it warm, concise and specific to the stage.`

var FollowUpEmail = aiflow.New[FollowUpEmailInput, FollowUpEmailOutput](
	"follow_up_email",
	followUpEmailTemplate,
)
