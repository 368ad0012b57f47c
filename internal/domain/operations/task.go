package operations

import (
	"strings"
	"time"

	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskType distinguishes plain tasks from calendar meetings
type TaskType string

const (
	TaskTypeTask    TaskType = "Task"
	TaskTypeMeeting TaskType = "Meeting"
)

// TaskStatus represents task completion state
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "Pending"
	TaskStatusDone    TaskStatus = "Done"
)

// ValidTaskType reports whether t is a known task type
func ValidTaskType(t TaskType) bool {
	return t == TaskTypeTask || t == TaskTypeMeeting
}

// Task represents a scheduled task or meeting
type Task struct {
	shared.OwnedEntity
	Title   string     `gorm:"type:varchar(200);not null"`
	Type    TaskType   `gorm:"type:varchar(20);not null"`
	Status  TaskStatus `gorm:"type:varchar(20);not null;default:'Pending'"`
	DueDate time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Task) TableName() string {
	return "tasks"
}

// NewTask creates a pending task
func NewTask(ownerID uuid.UUID, title string, taskType TaskType, dueDate time.Time) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}
	if !ValidTaskType(taskType) {
		return nil, shared.NewDomainError("INVALID_TYPE", "Task type must be 'Task' or 'Meeting'")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Task due date is required")
	}

	return &Task{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		Title:       title,
		Type:        taskType,
		Status:      TaskStatusPending,
		DueDate:     dueDate,
	}, nil
}

// Complete marks the task done; completing twice is a no-op
func (t *Task) Complete() {
	t.Status = TaskStatusDone
	t.Touch()
}

// Reopen marks the task pending again
func (t *Task) Reopen() {
	t.Status = TaskStatusPending
	t.Touch()
}

// IsOverdue returns true for pending tasks whose due date has passed
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status == TaskStatusPending && t.DueDate.Before(now)
}
