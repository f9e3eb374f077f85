package models

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// Task is an owner-scoped work item, optionally linked to a contact.
type Task struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID     uuid.UUID          `gorm:"column:owner_id;type:uuid;not null;index"`
	ContactID   *uuid.UUID         `gorm:"column:contact_id;type:uuid;index"`
	Title       string             `gorm:"column:title;not null"`
	Description *string            `gorm:"column:description;type:text"`
	DueDate     *time.Time         `gorm:"column:due_date"`
	Priority    enums.TaskPriority `gorm:"column:priority;type:text;not null;default:'medium'"`
	Status      enums.TaskStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
