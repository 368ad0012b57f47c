package hr

import (
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// JobStatus represents the publication status of a job posting
type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

// JobPosting represents an open position that candidates apply to
type JobPosting struct {
	shared.OwnedEntity
	Title       string    `gorm:"type:varchar(200);not null"`
	Location    string    `gorm:"type:varchar(200)"`
	Description string    `gorm:"type:text"`
	Status      JobStatus `gorm:"type:varchar(20);not null;default:'Open'"`
}

// TableName returns the table name for GORM
func (JobPosting) TableName() string {
	return "job_postings"
}

// NewJobPosting creates a new open job posting
func NewJobPosting(ownerID uuid.UUID, title, location, description string) (*JobPosting, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Job title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Job title cannot exceed 200 characters")
	}

	return &JobPosting{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Title:       title,
		Location:    location,
		Description: description,
		Status:      JobStatusOpen,
	}, nil
}

// Update updates the posting's editable fields
func (j *JobPosting) Update(title, location, description string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Job title cannot be empty")
	}
	j.Title = title
	j.Location = location
	j.Description = description
	j.Touch()
	return nil
}

// Close closes the posting; closing twice is a no-op
func (j *JobPosting) Close() {
	j.Status = JobStatusClosed
	j.Touch()
}

// Reopen reopens a closed posting
func (j *JobPosting) Reopen() {
	j.Status = JobStatusOpen
	j.Touch()
}

// IsOpen returns true if the posting accepts candidates
func (j *JobPosting) IsOpen() bool {
	return j.Status == JobStatusOpen
}
