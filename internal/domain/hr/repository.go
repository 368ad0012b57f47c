package hr

import (
	"context"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// JobPostingRepository defines the interface for job posting persistence
type JobPostingRepository interface {
	// FindByID finds a posting by ID
	FindByID(ctx context.Context, id uuid.UUID) (*JobPosting, error)

	// FindByIDForOwner finds a posting by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*JobPosting, error)

	// FindAllForOwner lists postings for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]JobPosting, error)

	// FindByStatus lists postings in a given status for an owner
	FindByStatus(ctx context.Context, ownerID uuid.UUID, status JobStatus, filter shared.Filter) ([]JobPosting, error)

	// Save creates or updates a posting
	Save(ctx context.Context, posting *JobPosting) error

	// Delete deletes a posting. Candidates referencing it are left in place.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountForOwner counts postings for an owner
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}

// CandidateRepository defines the interface for candidate persistence
type CandidateRepository interface {
	// FindByID finds a candidate by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Candidate, error)

	// FindByIDForOwner finds a candidate by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Candidate, error)

	// FindByJob lists candidates attached to a job posting
	FindByJob(ctx context.Context, ownerID, jobID uuid.UUID, filter shared.Filter) ([]Candidate, error)

	// FindAllForOwner lists candidates for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Candidate, error)

	// Save creates or updates a candidate
	Save(ctx context.Context, candidate *Candidate) error

	// Delete deletes a candidate
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountByJob counts candidates attached to a job posting
	CountByJob(ctx context.Context, ownerID, jobID uuid.UUID) (int64, error)
}
