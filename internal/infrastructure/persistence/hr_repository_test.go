package persistence

import (
	"context"
	"testing"

	"github.com/bizos/backend/internal/domain/hr"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCandidateRepository(t *testing.T) {
	db := newTestDB(t)
	postings := NewGormJobPostingRepository(db)
	candidates := NewGormCandidateRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	job, err := hr.NewJobPosting(owner, "Backend Engineer", "Remote", "Go services")
	require.NoError(t, err)
	require.NoError(t, postings.Save(ctx, job))

	alice, err := hr.NewCandidate(owner, job.ID, "Alice", "alice@example.com", "ten years of Go")
	require.NoError(t, err)
	require.NoError(t, candidates.Save(ctx, alice))

	bob, err := hr.NewCandidate(owner, job.ID, "Bob", "bob@example.com", "frontend background")
	require.NoError(t, err)
	require.NoError(t, candidates.Save(ctx, bob))

	t.Run("owner cannot read another owner's candidate", func(t *testing.T) {
		_, err := candidates.FindByIDForOwner(ctx, other, alice.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		found, err := candidates.FindByIDForOwner(ctx, owner, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", found.Name)
	})

	t.Run("list by job", func(t *testing.T) {
		list, err := candidates.FindByJob(ctx, owner, job.ID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, list, 2)

		count, err := candidates.CountByJob(ctx, owner, job.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("match fields and skills survive a round trip", func(t *testing.T) {
		require.NoError(t, alice.SetMatch(87, "strong backend fit", []string{"go", "postgres"}))
		require.NoError(t, candidates.Save(ctx, alice))

		found, err := candidates.FindByIDForOwner(ctx, owner, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, found.MatchScore)
		assert.Equal(t, 87, *found.MatchScore)
		assert.Equal(t, []string{"go", "postgres"}, found.MatchSkills)
	})

	t.Run("status update persists", func(t *testing.T) {
		require.NoError(t, alice.TransitionTo(hr.CandidateStatusShortlisted))
		require.NoError(t, candidates.Save(ctx, alice))

		found, err := candidates.FindByIDForOwner(ctx, owner, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, hr.CandidateStatusShortlisted, found.Status)
	})

	t.Run("delete is owner scoped", func(t *testing.T) {
		err := candidates.Delete(ctx, other, bob.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, candidates.Delete(ctx, owner, bob.ID))
		_, err = candidates.FindByIDForOwner(ctx, owner, bob.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting a posting leaves candidates in place", func(t *testing.T) {
		require.NoError(t, postings.Delete(ctx, owner, job.ID))

		found, err := candidates.FindByIDForOwner(ctx, owner, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, found.JobID)
	})
}

func TestGormJobPostingRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormJobPostingRepository(db)
	ctx := context.Background()

	owner := uuid.New()

	open, err := hr.NewJobPosting(owner, "Designer", "Berlin", "brand work")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, open))

	closed, err := hr.NewJobPosting(owner, "Accountant", "Berlin", "books")
	require.NoError(t, err)
	closed.Close()
	require.NoError(t, repo.Save(ctx, closed))

	t.Run("filter by status", func(t *testing.T) {
		openOnly, err := repo.FindByStatus(ctx, owner, hr.JobStatusOpen, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, openOnly, 1)
		assert.Equal(t, "Designer", openOnly[0].Title)
	})

	t.Run("search matches title", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "design"
		found, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Designer", found[0].Title)
	})
}
