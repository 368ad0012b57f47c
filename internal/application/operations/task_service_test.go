package operations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	domainops "github.com/bizos/backend/internal/domain/operations"
	"github.com/bizos/backend/internal/domain/shared"
)

// MockTaskRepository is a mock implementation of operations.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainops.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainops.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domainops.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainops.Task), args.Error(1)
}

func (m *MockTaskRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]domainops.Task, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]domainops.Task), args.Error(1)
}

func (m *MockTaskRepository) Save(ctx context.Context, task *domainops.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockTaskRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return g.response, g.err
}

func (g *stubGenerator) GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema) (string, error) {
	return g.response, g.err
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.response, g.err
}

const planJSON = `{
	"plan": [
		{"order": 1, "action": "Confirm venue availability", "owner": "Office manager", "due": "2026-09-05"},
		{"order": 2, "action": "Send invitations", "owner": "Marketing", "due": "2026-09-10"}
	],
	"risks": ["Venue may be double-booked"],
	"summary": "Two-step rollout ending September 10."
}`

func TestTaskCreate(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates pending task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})
		repo.On("Save", mock.Anything, mock.AnythingOfType("*operations.Task")).Return(nil)

		resp, err := svc.Create(context.Background(), ownerID, CreateTaskRequest{
			Title:   "Quarterly inventory count",
			Type:    "Task",
			DueDate: "2026-09-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "Pending", resp.Status)
		assert.Equal(t, "2026-09-15", resp.DueDate)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})

		_, err := svc.Create(context.Background(), ownerID, CreateTaskRequest{
			Title:   "Something",
			Type:    "Bogus",
			DueDate: "2026-09-15",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TYPE", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})

		_, err := svc.Create(context.Background(), ownerID, CreateTaskRequest{
			Title:   "Something",
			Type:    "Meeting",
			DueDate: "15/09/2026",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
	})
}

func TestTaskUpdate(t *testing.T) {
	ownerID := uuid.New()

	newTask := func() *domainops.Task {
		task, err := domainops.NewTask(ownerID, "Book flights", domainops.TaskTypeTask,
			time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		return task
	}

	t.Run("marks task done", func(t *testing.T) {
		task := newTask()
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})
		repo.On("FindByIDForOwner", mock.Anything, ownerID, task.ID).Return(task, nil)
		repo.On("Save", mock.Anything, task).Return(nil)

		done := "Done"
		resp, err := svc.Update(context.Background(), ownerID, task.ID, UpdateTaskRequest{Status: &done})
		require.NoError(t, err)
		assert.Equal(t, "Done", resp.Status)
		assert.Equal(t, "Book flights", resp.Title)
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		task := newTask()
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})
		repo.On("FindByIDForOwner", mock.Anything, ownerID, task.ID).Return(task, nil)
		repo.On("Save", mock.Anything, task).Return(nil)

		title := "Book flights and hotel"
		resp, err := svc.Update(context.Background(), ownerID, task.ID, UpdateTaskRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Book flights and hotel", resp.Title)
		assert.Equal(t, "Pending", resp.Status)
		assert.Equal(t, "2026-09-20", resp.DueDate)
	})
}

func TestTaskList(t *testing.T) {
	ownerID := uuid.New()

	t.Run("filters by status", func(t *testing.T) {
		task, err := domainops.NewTask(ownerID, "Renew insurance", domainops.TaskTypeTask,
			time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})
		repo.On("FindAllForOwner", mock.Anything, ownerID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "Pending"
		})).Return([]domainops.Task{*task}, nil)
		repo.On("CountForOwner", mock.Anything, ownerID, mock.Anything).Return(int64(1), nil)

		page, err := svc.List(context.Background(), ownerID, TaskListFilter{Status: "Pending"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Renew insurance", page.Items[0].Title)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{})

		_, err := svc.List(context.Background(), ownerID, TaskListFilter{Status: "Paused"})
		require.Error(t, err)
		repo.AssertNotCalled(t, "FindAllForOwner")
	})
}

func TestLogisticsPlan(t *testing.T) {
	ownerID := uuid.New()

	t.Run("plans around open tasks", func(t *testing.T) {
		task, err := domainops.NewTask(ownerID, "Confirm venue availability", domainops.TaskTypeTask,
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{response: planJSON})
		repo.On("FindAllForOwner", mock.Anything, ownerID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "Pending"
		})).Return([]domainops.Task{*task}, nil)

		resp, err := svc.Plan(context.Background(), ownerID, LogisticsPlanRequest{
			Goal:        "Host the annual customer event",
			Constraints: []string{"Budget under $5,000"},
		})
		require.NoError(t, err)
		require.Len(t, resp.Plan, 2)
		assert.Equal(t, 1, resp.Plan[0].Order)
		assert.Equal(t, "Marketing", resp.Plan[1].Owner)
		assert.Contains(t, resp.Summary, "September 10")
	})

	t.Run("rejects empty goal", func(t *testing.T) {
		repo := new(MockTaskRepository)
		svc := NewTaskService(repo, &stubGenerator{response: planJSON})
		repo.On("FindAllForOwner", mock.Anything, ownerID, mock.Anything).Return([]domainops.Task{}, nil)

		_, err := svc.Plan(context.Background(), ownerID, LogisticsPlanRequest{Goal: ""})
		require.Error(t, err)
	})
}
