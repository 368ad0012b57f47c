package operations

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bizos/backend/internal/aiflow/flows"
	"github.com/bizos/backend/internal/domain/operations"
)

const dateLayout = "2006-01-02"

// CreateTaskRequest schedules a task or meeting. The due date is
// accepted under both dueDate and due_date, as a calendar date or a
// full RFC3339 timestamp.
type CreateTaskRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Type    string `json:"type" binding:"required,oneof=Task Meeting"`
	DueDate string `json:"dueDate" binding:"required"`
}

// UnmarshalJSON folds the due_date spelling into DueDate.
func (r *CreateTaskRequest) UnmarshalJSON(data []byte) error {
	type alias CreateTaskRequest
	aux := struct {
		*alias
		DueDateSnake string `json:"due_date"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.DueDate == "" {
		r.DueDate = aux.DueDateSnake
	}
	return nil
}

// UpdateTaskRequest applies partial updates to a task
type UpdateTaskRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Status  *string `json:"status" binding:"omitempty,oneof=Pending Done"`
	DueDate *string `json:"dueDate"`
}

// UnmarshalJSON folds the due_date spelling into DueDate.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTaskRequest
	aux := struct {
		*alias
		DueDateSnake *string `json:"due_date"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.DueDate == nil {
		r.DueDate = aux.DueDateSnake
	}
	return nil
}

// TaskListFilter narrows task listings
type TaskListFilter struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	DueDate   string    `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTaskResponse maps a task entity to its API representation
func ToTaskResponse(t *operations.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Type:      string(t.Type),
		Status:    string(t.Status),
		DueDate:   t.DueDate.Format(dateLayout),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// LogisticsPlanRequest asks for an operations plan toward a goal. The
// caller's open tasks are folded into the prompt automatically.
type LogisticsPlanRequest struct {
	Goal        string   `json:"goal" binding:"required"`
	Constraints []string `json:"constraints"`
}

// LogisticsPlanResponse mirrors the logistics plan flow's output
type LogisticsPlanResponse struct {
	Plan    []flows.PlanStep `json:"plan"`
	Risks   []string         `json:"risks"`
	Summary string           `json:"summary"`
}
