package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bizos/backend/internal/domain/operations"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTaskRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormTaskRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mustCreate := func(title string, taskType operations.TaskType) *operations.Task {
		t.Helper()
		task, err := operations.NewTask(owner, title, taskType, due)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, task))
		return task
	}

	mustCreate("Quarterly stocktake", operations.TaskTypeTask)
	mustCreate("Renew insurance", operations.TaskTypeTask)
	meeting := mustCreate("Supplier sync", operations.TaskTypeMeeting)

	t.Run("type filter narrows list", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["type"] = string(operations.TaskTypeMeeting)

		tasks, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, meeting.ID, tasks[0].ID)
	})

	t.Run("count matches type filter", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["type"] = string(operations.TaskTypeTask)

		count, err := repo.CountForOwner(ctx, owner, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("status filter excludes done tasks", func(t *testing.T) {
		doneTask := mustCreate("Archive invoices", operations.TaskTypeTask)
		doneTask.Complete()
		require.NoError(t, repo.Save(ctx, doneTask))

		filter := shared.DefaultFilter()
		filter.Filters["status"] = string(operations.TaskStatusPending)

		tasks, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		for _, task := range tasks {
			assert.Equal(t, operations.TaskStatusPending, task.Status)
		}
		assert.Len(t, tasks, 3)
	})

	t.Run("search matches title", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "insurance"

		tasks, err := repo.FindAllForOwner(ctx, owner, filter)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Renew insurance", tasks[0].Title)
	})
}
