package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	opsapp "github.com/bizos/backend/internal/application/operations"
	"github.com/bizos/backend/internal/domain/operations"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/interfaces/http/dto"
	"github.com/bizos/backend/internal/interfaces/http/middleware"
)

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*operations.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.Task), args.Error(1)
}

func (m *mockTaskRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*operations.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operations.Task), args.Error(1)
}

func (m *mockTaskRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]operations.Task, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]operations.Task), args.Error(1)
}

func (m *mockTaskRepository) Save(ctx context.Context, task *operations.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockTaskRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newOperationsTestServer(repo *mockTaskRepository, ownerID uuid.UUID) *gin.Engine {
	engine := gin.New()
	authed := engine.Group("/api/v1/modules")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.OwnerIDKey, ownerID)
		c.Next()
	})
	h := NewOperationsHandler(opsapp.NewTaskService(repo, nil))
	h.RegisterRoutes(authed)
	return engine
}

func TestCreateTaskDueDateFormats(t *testing.T) {
	ownerID := uuid.New()

	post := func(t *testing.T, repo *mockTaskRepository, body string) *httptest.ResponseRecorder {
		t.Helper()
		engine := newOperationsTestServer(repo, ownerID)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/modules/operations/tasks", jsonBody(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("accepts dueDate with RFC3339 timestamp", func(t *testing.T) {
		repo := new(mockTaskRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*operations.Task")).Return(nil)

		w := post(t, repo, `{"title":"Sync","type":"Meeting","dueDate":"2024-01-02T10:00:00Z"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		repo.AssertExpectations(t)
	})

	t.Run("accepts due_date with calendar date", func(t *testing.T) {
		repo := new(mockTaskRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*operations.Task")).Return(nil)

		w := post(t, repo, `{"title":"Stocktake","type":"Task","due_date":"2026-09-15"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("missing due date reports the wire field name", func(t *testing.T) {
		repo := new(mockTaskRepository)

		w := post(t, repo, `{"title":"Sync","type":"Meeting"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "dueDate", resp.Error.Details[0].Field)
		assert.Equal(t, "is required", resp.Error.Details[0].Message)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("unparseable due date is rejected", func(t *testing.T) {
		repo := new(mockTaskRepository)

		w := post(t, repo, `{"title":"Sync","type":"Meeting","dueDate":"02/01/2024"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save")
	})
}
