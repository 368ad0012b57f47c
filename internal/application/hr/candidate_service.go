package hr

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/hr"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/docparse"
	"github.com/bizos/backend/internal/infrastructure/storage"
)

// CandidateService handles the candidate pipeline and its AI flows
type CandidateService struct {
	candidates hr.CandidateRepository
	jobs       hr.JobPostingRepository
	parser     *docparse.Parser
	objects    storage.ObjectStorage
	gen        aiflow.Generator
	logger     *zap.Logger
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(
	candidates hr.CandidateRepository,
	jobs hr.JobPostingRepository,
	parser *docparse.Parser,
	objects storage.ObjectStorage,
	gen aiflow.Generator,
	logger *zap.Logger,
) *CandidateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateService{
		candidates: candidates,
		jobs:       jobs,
		parser:     parser,
		objects:    objects,
		gen:        gen,
		logger:     logger,
	}
}

// Create attaches a candidate to a posting, extracting resume text from an
// uploaded file when one is provided.
func (s *CandidateService) Create(ctx context.Context, ownerID uuid.UUID, req CreateCandidateRequest) (*CandidateResponse, error) {
	job, err := s.jobs.FindByIDForOwner(ctx, ownerID, req.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsOpen() {
		return nil, shared.NewDomainError("INVALID_STATE", "Job posting is closed")
	}

	resumeText := req.ResumeText
	objectKey := ""
	if len(req.FileData) > 0 {
		text, err := s.parser.ExtractText(req.FileData, req.FileMIME)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_FILE", "Could not extract text from the resume: "+err.Error())
		}
		resumeText = text

		objectKey = fmt.Sprintf("resumes/%s/%s", ownerID, uuid.New())
		if err := s.objects.Upload(ctx, objectKey, req.FileData, req.FileMIME); err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
	}

	candidate, err := hr.NewCandidate(ownerID, req.JobID, req.Name, req.Email, resumeText)
	if err != nil {
		return nil, err
	}
	if objectKey != "" {
		candidate.SetResume(resumeText, objectKey)
	}
	if err := s.candidates.Save(ctx, candidate); err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(candidate)
	return &resp, nil
}

// Get returns one candidate
func (s *CandidateService) Get(ctx context.Context, ownerID, id uuid.UUID) (*CandidateResponse, error) {
	candidate, err := s.candidates.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToCandidateResponse(candidate)
	return &resp, nil
}

// ListByJob returns the candidates attached to a posting
func (s *CandidateService) ListByJob(ctx context.Context, ownerID, jobID uuid.UUID, filter shared.Filter) (*shared.Paginated[CandidateResponse], error) {
	candidates, err := s.candidates.FindByJob(ctx, ownerID, jobID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.candidates.CountByJob(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}

	items := make([]CandidateResponse, len(candidates))
	for i := range candidates {
		items[i] = ToCandidateResponse(&candidates[i])
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateStatus moves a candidate through the pipeline. Repeating the current
// stage succeeds without a write.
func (s *CandidateService) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, req UpdateCandidateStatusRequest) (*CandidateResponse, error) {
	candidate, err := s.candidates.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	before := candidate.Status
	if err := candidate.TransitionTo(hr.CandidateStatus(req.Status)); err != nil {
		return nil, err
	}
	if candidate.Status != before {
		if err := s.candidates.Save(ctx, candidate); err != nil {
			return nil, err
		}
	}

	resp := ToCandidateResponse(candidate)
	return &resp, nil
}

// UpdateNotes replaces the candidate's notes
func (s *CandidateService) UpdateNotes(ctx context.Context, ownerID, id uuid.UUID, req UpdateCandidateNotesRequest) (*CandidateResponse, error) {
	candidate, err := s.candidates.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	candidate.SetNotes(req.Notes)
	if err := s.candidates.Save(ctx, candidate); err != nil {
		return nil, err
	}
	resp := ToCandidateResponse(candidate)
	return &resp, nil
}

// Delete removes a candidate
func (s *CandidateService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.candidates.Delete(ctx, ownerID, id)
}

// Rank scores a candidate against their job posting and stores the verdict
func (s *CandidateService) Rank(ctx context.Context, ownerID, id uuid.UUID) (*RankResponse, error) {
	candidate, err := s.candidates.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if candidate.ResumeText == "" {
		return nil, shared.NewDomainError("INVALID_STATE", "Candidate has no resume text to rank")
	}
	job, err := s.jobs.FindByIDForOwner(ctx, ownerID, candidate.JobID)
	if err != nil {
		return nil, err
	}

	out, err := flows.CandidateRanking.Run(ctx, s.gen, flows.CandidateRankingInput{
		JobTitle:       job.Title,
		JobDescription: job.Description,
		ResumeText:     candidate.ResumeText,
	})
	if err != nil {
		return nil, err
	}

	if err := candidate.SetMatch(out.Score, out.Explanation, out.Skills); err != nil {
		return nil, err
	}
	if err := s.candidates.Save(ctx, candidate); err != nil {
		return nil, err
	}

	return &RankResponse{
		Candidate: ToCandidateResponse(candidate),
		Ranking:   out,
	}, nil
}

// SummarizeInterview runs the interview summary flow for a candidate
func (s *CandidateService) SummarizeInterview(ctx context.Context, ownerID uuid.UUID, req InterviewSummaryRequest) (*InterviewSummaryResponse, error) {
	candidate, err := s.candidates.FindByIDForOwner(ctx, ownerID, req.CandidateID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByIDForOwner(ctx, ownerID, candidate.JobID)
	if err != nil {
		return nil, err
	}

	out, err := flows.InterviewSummary.Run(ctx, s.gen, flows.InterviewSummaryInput{
		CandidateName: candidate.Name,
		JobTitle:      job.Title,
		Transcript:    req.Transcript,
	})
	if err != nil {
		return nil, err
	}

	return &InterviewSummaryResponse{
		Summary:           out.Summary,
		Strengths:         out.Strengths,
		Concerns:          out.Concerns,
		Recommendation:    out.Recommendation,
		FollowUpQuestions: out.FollowUpQuestions,
	}, nil
}

// DraftFollowUpEmail runs the follow-up email flow for a candidate's stage
func (s *CandidateService) DraftFollowUpEmail(ctx context.Context, ownerID uuid.UUID, req FollowUpEmailRequest) (*FollowUpEmailResponse, error) {
	candidate, err := s.candidates.FindByIDForOwner(ctx, ownerID, req.CandidateID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByIDForOwner(ctx, ownerID, candidate.JobID)
	if err != nil {
		return nil, err
	}

	out, err := flows.FollowUpEmail.Run(ctx, s.gen, flows.FollowUpEmailInput{
		CandidateName: candidate.Name,
		JobTitle:      job.Title,
		Stage:         string(candidate.Status),
		Outcome:       req.Outcome,
	})
	if err != nil {
		return nil, err
	}

	return &FollowUpEmailResponse{Subject: out.Subject, Body: out.Body}, nil
}
