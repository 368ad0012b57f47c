// Package operations implements task scheduling and logistics planning.
package operations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/operations"
	"github.com/bizos/backend/internal/domain/shared"
)

// TaskService handles task and meeting operations
type TaskService struct {
	tasks operations.TaskRepository
	gen   aiflow.Generator
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks operations.TaskRepository, gen aiflow.Generator) *TaskService {
	return &TaskService{tasks: tasks, gen: gen}
}

// parseDueDate accepts a calendar date or a full RFC3339 timestamp.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, value)
}

// Create schedules a new task or meeting
func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, req CreateTaskRequest) (*TaskResponse, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Due date must be YYYY-MM-DD or an RFC3339 timestamp")
	}

	task, err := operations.NewTask(ownerID, req.Title, operations.TaskType(req.Type), dueDate)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(task)
	return &resp, nil
}

// Get returns one task
func (s *TaskService) Get(ctx context.Context, ownerID, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.tasks.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTaskResponse(task)
	return &resp, nil
}

// List returns the caller's tasks, newest first
func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID, req TaskListFilter) (*shared.Paginated[TaskResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search

	if req.Status != "" {
		status := operations.TaskStatus(req.Status)
		if status != operations.TaskStatusPending && status != operations.TaskStatusDone {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown task status: "+req.Status)
		}
		filter.Filters["status"] = string(status)
	}
	if req.Type != "" {
		taskType := operations.TaskType(req.Type)
		if !operations.ValidTaskType(taskType) {
			return nil, shared.NewDomainError("INVALID_TYPE", "Unknown task type: "+req.Type)
		}
		filter.Filters["type"] = string(taskType)
	}

	tasks, err := s.tasks.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.tasks.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies partial updates to a task
func (s *TaskService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateTaskRequest) (*TaskResponse, error) {
	task, err := s.tasks.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
		task.Touch()
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Due date must be YYYY-MM-DD or an RFC3339 timestamp")
		}
		task.DueDate = dueDate
		task.Touch()
	}
	if req.Status != nil {
		switch operations.TaskStatus(*req.Status) {
		case operations.TaskStatusDone:
			task.Complete()
		case operations.TaskStatusPending:
			task.Reopen()
		}
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	resp := ToTaskResponse(task)
	return &resp, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.tasks.Delete(ctx, ownerID, id)
}

// Plan runs the logistics plan flow over the caller's open tasks
func (s *TaskService) Plan(ctx context.Context, ownerID uuid.UUID, req LogisticsPlanRequest) (*LogisticsPlanResponse, error) {
	filter := shared.DefaultFilter()
	filter.Filters["status"] = string(operations.TaskStatusPending)
	filter.PageSize = 100

	tasks, err := s.tasks.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	lines := make([]flows.TaskLine, len(tasks))
	for i := range tasks {
		lines[i] = flows.TaskLine{
			Title:   tasks[i].Title,
			DueDate: tasks[i].DueDate.Format(dateLayout),
			Status:  string(tasks[i].Status),
		}
	}

	out, err := flows.LogisticsPlan.Run(ctx, s.gen, flows.LogisticsPlanInput{
		Goal:        req.Goal,
		Tasks:       lines,
		Constraints: req.Constraints,
	})
	if err != nil {
		return nil, err
	}

	return &LogisticsPlanResponse{
		Plan:    out.Plan,
		Risks:   out.Risks,
		Summary: out.Summary,
	}, nil
}
