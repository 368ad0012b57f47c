package hr

import (
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CandidateStatus represents a stage in the hiring pipeline
type CandidateStatus string

const (
	CandidateStatusNew          CandidateStatus = "New"
	CandidateStatusShortlisted  CandidateStatus = "Shortlisted"
	CandidateStatusInterviewing CandidateStatus = "Interviewing"
	CandidateStatusOffer        CandidateStatus = "Offer"
	CandidateStatusHired        CandidateStatus = "Hired"
	CandidateStatusRejected     CandidateStatus = "Rejected"
)

// allowedTransitions is the explicit pipeline transition table.
// Rejected is a parallel terminal reachable from any non-terminal state.
var allowedTransitions = map[CandidateStatus][]CandidateStatus{
	CandidateStatusNew:          {CandidateStatusShortlisted, CandidateStatusRejected},
	CandidateStatusShortlisted:  {CandidateStatusInterviewing, CandidateStatusRejected},
	CandidateStatusInterviewing: {CandidateStatusOffer, CandidateStatusRejected},
	CandidateStatusOffer:        {CandidateStatusHired, CandidateStatusRejected},
	CandidateStatusHired:        {},
	CandidateStatusRejected:     {},
}

// ValidCandidateStatus reports whether s names a pipeline stage
func ValidCandidateStatus(s CandidateStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Candidate represents an applicant attached to a job posting.
// Match fields are populated once by the ranking flow.
type Candidate struct {
	shared.OwnedEntity
	JobID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name             string          `gorm:"type:varchar(200);not null"`
	Email            string          `gorm:"type:varchar(200)"`
	ResumeText       string          `gorm:"type:text"`
	ResumeObjectKey  string          `gorm:"type:varchar(500)"`
	Status           CandidateStatus `gorm:"type:varchar(20);not null;default:'New'"`
	MatchScore       *int            `gorm:""`
	MatchExplanation string          `gorm:"type:text"`
	MatchSkills      []string        `gorm:"serializer:json;type:text"`
	Notes            string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Candidate) TableName() string {
	return "candidates"
}

// NewCandidate creates a candidate in the New stage
func NewCandidate(ownerID, jobID uuid.UUID, name, email, resumeText string) (*Candidate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Candidate name cannot be empty")
	}
	if jobID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_JOB", "Candidate must reference a job posting")
	}

	return &Candidate{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		JobID:       jobID,
		Name:        name,
		Email:       strings.ToLower(strings.TrimSpace(email)),
		ResumeText:  resumeText,
		Status:      CandidateStatusNew,
	}, nil
}

// TransitionTo moves the candidate to the target stage. Repeating the current
// stage is an idempotent no-op; anything outside the transition table is
// rejected with INVALID_STATE.
func (c *Candidate) TransitionTo(target CandidateStatus) error {
	if !ValidCandidateStatus(target) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown candidate status: "+string(target))
	}
	if target == c.Status {
		return nil
	}
	for _, next := range allowedTransitions[c.Status] {
		if next == target {
			c.Status = target
			c.Touch()
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATE",
		"Cannot move candidate from "+string(c.Status)+" to "+string(target))
}

// SetMatch records the ranking flow's verdict for this candidate
func (c *Candidate) SetMatch(score int, explanation string, skills []string) error {
	if score < 0 || score > 100 {
		return shared.NewDomainError("INVALID_SCORE", "Match score must be between 0 and 100")
	}
	c.MatchScore = &score
	c.MatchExplanation = explanation
	c.MatchSkills = skills
	c.Touch()
	return nil
}

// SetResume attaches extracted resume text and the stored object key
func (c *Candidate) SetResume(text, objectKey string) {
	c.ResumeText = text
	c.ResumeObjectKey = objectKey
	c.Touch()
}

// SetNotes replaces the free-text notes
func (c *Candidate) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}

// IsTerminal returns true when no further pipeline moves are possible
func (c *Candidate) IsTerminal() bool {
	return len(allowedTransitions[c.Status]) == 0
}

// IsRanked returns true once the ranking flow has scored this candidate
func (c *Candidate) IsRanked() bool {
	return c.MatchScore != nil
}
