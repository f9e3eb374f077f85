package tasks

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// TaskDTO is the transport shape for a task.
type TaskDTO struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	ContactID   *uuid.UUID         `json:"contact_id,omitempty"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Priority    enums.TaskPriority `json:"priority"`
	Status      enums.TaskStatus   `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateTaskInput holds the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string              `json:"title" validate:"required"`
	Description *string             `json:"description,omitempty"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	Priority    *enums.TaskPriority `json:"priority,omitempty"`
	Status      *enums.TaskStatus   `json:"status,omitempty"`
	ContactID   *uuid.UUID          `json:"contact_id,omitempty"`
}

// UpdateTaskInput captures the mutable task fields. Nil pointers leave the
// stored value untouched.
type UpdateTaskInput struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	Priority    *enums.TaskPriority `json:"priority,omitempty"`
	Status      *enums.TaskStatus   `json:"status,omitempty"`
	ContactID   *uuid.UUID          `json:"contact_id,omitempty"`
}

// ListTasksFilter narrows task listings.
type ListTasksFilter struct {
	Status   *enums.TaskStatus
	Priority *enums.TaskPriority
}

func FromModel(task *models.Task) *TaskDTO {
	if task == nil {
		return nil
	}

	return &TaskDTO{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		ContactID:   task.ContactID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (c CreateTaskInput) ToModel(ownerID uuid.UUID) *models.Task {
	priority := enums.TaskPriorityMedium
	if c.Priority != nil {
		priority = *c.Priority
	}
	status := enums.TaskStatusPending
	if c.Status != nil {
		status = *c.Status
	}

	return &models.Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ContactID:   c.ContactID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		Priority:    priority,
		Status:      status,
	}
}
