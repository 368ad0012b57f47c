// Package hr implements job postings, the candidate pipeline and the hiring
// AI flows.
package hr

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/domain/hr"
	"github.com/bizos/backend/internal/domain/shared"
)

// JobService handles job posting CRUD
type JobService struct {
	jobs hr.JobPostingRepository
}

// NewJobService creates a new JobService
func NewJobService(jobs hr.JobPostingRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Create opens a new posting
func (s *JobService) Create(ctx context.Context, ownerID uuid.UUID, req CreateJobPostingRequest) (*JobPostingResponse, error) {
	posting, err := hr.NewJobPosting(ownerID, req.Title, req.Location, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.Save(ctx, posting); err != nil {
		return nil, err
	}
	resp := ToJobPostingResponse(posting)
	return &resp, nil
}

// Get returns one posting
func (s *JobService) Get(ctx context.Context, ownerID, id uuid.UUID) (*JobPostingResponse, error) {
	posting, err := s.jobs.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToJobPostingResponse(posting)
	return &resp, nil
}

// List returns the caller's postings, newest first
func (s *JobService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[JobPostingResponse], error) {
	postings, err := s.jobs.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.jobs.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]JobPostingResponse, len(postings))
	for i := range postings {
		items[i] = ToJobPostingResponse(&postings[i])
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies partial updates to a posting
func (s *JobService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateJobPostingRequest) (*JobPostingResponse, error) {
	posting, err := s.jobs.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	title := posting.Title
	location := posting.Location
	description := posting.Description
	if req.Title != nil {
		title = *req.Title
	}
	if req.Location != nil {
		location = *req.Location
	}
	if req.Description != nil {
		description = *req.Description
	}
	if err := posting.Update(title, location, description); err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch hr.JobStatus(*req.Status) {
		case hr.JobStatusClosed:
			posting.Close()
		case hr.JobStatusOpen:
			posting.Reopen()
		}
	}

	if err := s.jobs.Save(ctx, posting); err != nil {
		return nil, err
	}
	resp := ToJobPostingResponse(posting)
	return &resp, nil
}

// Delete removes a posting; its candidates are left in place
func (s *JobService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.jobs.Delete(ctx, ownerID, id)
}
