package hr

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCandidate(t *testing.T) *Candidate {
	t.Helper()
	c, err := NewCandidate(uuid.New(), uuid.New(), "Jane Smith", "jane@example.com", "resume text")
	require.NoError(t, err)
	return c
}

func TestNewCandidate(t *testing.T) {
	t.Run("valid candidate starts in New", func(t *testing.T) {
		c := newTestCandidate(t)
		assert.Equal(t, CandidateStatusNew, c.Status)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.False(t, c.IsRanked())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := NewCandidate(uuid.New(), uuid.New(), "  ", "", "")
		assert.Error(t, err)
	})

	t.Run("nil job reference is rejected", func(t *testing.T) {
		_, err := NewCandidate(uuid.New(), uuid.Nil, "Jane", "", "")
		assert.Error(t, err)
	})

	t.Run("email is normalized", func(t *testing.T) {
		c, err := NewCandidate(uuid.New(), uuid.New(), "Jane", " Jane@Example.COM ", "")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", c.Email)
	})
}

func TestCandidateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CandidateStatus
		to      CandidateStatus
		wantErr bool
	}{
		{"new to shortlisted", CandidateStatusNew, CandidateStatusShortlisted, false},
		{"shortlisted to interviewing", CandidateStatusShortlisted, CandidateStatusInterviewing, false},
		{"interviewing to offer", CandidateStatusInterviewing, CandidateStatusOffer, false},
		{"offer to hired", CandidateStatusOffer, CandidateStatusHired, false},
		{"new to rejected", CandidateStatusNew, CandidateStatusRejected, false},
		{"interviewing to rejected", CandidateStatusInterviewing, CandidateStatusRejected, false},
		{"skipping stages is rejected", CandidateStatusNew, CandidateStatusOffer, true},
		{"moving backwards is rejected", CandidateStatusOffer, CandidateStatusShortlisted, true},
		{"hired is terminal", CandidateStatusHired, CandidateStatusRejected, true},
		{"rejected is terminal", CandidateStatusRejected, CandidateStatusShortlisted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCandidate(t)
			c.Status = tt.from

			err := c.TransitionTo(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.from, c.Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, c.Status)
			}
		})
	}

	t.Run("same-status transition is an idempotent no-op", func(t *testing.T) {
		c := newTestCandidate(t)
		c.Status = CandidateStatusInterviewing

		require.NoError(t, c.TransitionTo(CandidateStatusInterviewing))
		require.NoError(t, c.TransitionTo(CandidateStatusInterviewing))
		assert.Equal(t, CandidateStatusInterviewing, c.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		c := newTestCandidate(t)
		assert.Error(t, c.TransitionTo(CandidateStatus("Bogus")))
	})
}

func TestCandidateSetMatch(t *testing.T) {
	c := newTestCandidate(t)

	require.NoError(t, c.SetMatch(87, "Strong Go background", []string{"Go", "Postgres"}))
	assert.True(t, c.IsRanked())
	assert.Equal(t, 87, *c.MatchScore)
	assert.Equal(t, []string{"Go", "Postgres"}, c.MatchSkills)

	assert.Error(t, c.SetMatch(-1, "", nil))
	assert.Error(t, c.SetMatch(101, "", nil))
}

func TestCandidateIsTerminal(t *testing.T) {
	c := newTestCandidate(t)
	assert.False(t, c.IsTerminal())

	c.Status = CandidateStatusHired
	assert.True(t, c.IsTerminal())

	c.Status = CandidateStatusRejected
	assert.True(t, c.IsTerminal())
}
