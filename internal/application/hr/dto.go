package hr

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/hr"
)

// CreateJobPostingRequest creates an open position
type CreateJobPostingRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Location    string `json:"location" binding:"max=200"`
	Description string `json:"description"`
}

// UpdateJobPostingRequest applies partial updates to a posting
type UpdateJobPostingRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=Open Closed"`
}

// JobPostingResponse represents a posting in API responses
type JobPostingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToJobPostingResponse maps a posting entity to its API representation
func ToJobPostingResponse(j *hr.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:          j.ID,
		Title:       j.Title,
		Location:    j.Location,
		Description: j.Description,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// CreateCandidateRequest attaches an applicant to a posting. The resume
// arrives either as an uploaded file or as plain text.
type CreateCandidateRequest struct {
	JobID      uuid.UUID
	Name       string
	Email      string
	ResumeText string
	// File fields come from a multipart upload.
	FileData []byte
	FileName string
	FileMIME string
}

// UpdateCandidateStatusRequest moves a candidate through the pipeline
type UpdateCandidateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCandidateNotesRequest replaces the candidate's notes
type UpdateCandidateNotesRequest struct {
	Notes string `json:"notes"`
}

// CandidateResponse represents a candidate in API responses
type CandidateResponse struct {
	ID               uuid.UUID `json:"id"`
	JobID            uuid.UUID `json:"job_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Status           string    `json:"status"`
	MatchScore       *int      `json:"match_score,omitempty"`
	MatchExplanation string    `json:"match_explanation,omitempty"`
	MatchSkills      []string  `json:"match_skills,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	HasResumeFile    bool      `json:"has_resume_file"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToCandidateResponse maps a candidate entity to its API representation
func ToCandidateResponse(c *hr.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:               c.ID,
		JobID:            c.JobID,
		Name:             c.Name,
		Email:            c.Email,
		Status:           string(c.Status),
		MatchScore:       c.MatchScore,
		MatchExplanation: c.MatchExplanation,
		MatchSkills:      c.MatchSkills,
		Notes:            c.Notes,
		HasResumeFile:    c.ResumeObjectKey != "",
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// InterviewSummaryRequest summarizes an interview transcript
type InterviewSummaryRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	Transcript  string    `json:"transcript" binding:"required"`
}

// InterviewSummaryResponse mirrors the interview summary flow's output
type InterviewSummaryResponse struct {
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Concerns          []string `json:"concerns"`
	Recommendation    string   `json:"recommendation"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

// FollowUpEmailRequest drafts an email for a candidate's current stage
type FollowUpEmailRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	Outcome     string    `json:"outcome"`
}

// FollowUpEmailResponse mirrors the follow-up email flow's output
type FollowUpEmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// RankResponse is the ranking verdict stored on the candidate
type RankResponse struct {
	Candidate CandidateResponse            `json:"candidate"`
	Ranking   flows.CandidateRankingOutput `json:"ranking"`
}
