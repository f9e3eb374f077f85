package models

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// Interaction records a touchpoint with a contact. Rows are immutable apart
// from explicit updates, so only created_at is tracked.
type Interaction struct {
	ID            uuid.UUID             `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ContactID     uuid.UUID             `gorm:"column:contact_id;type:uuid;not null;index"`
	UserID        uuid.UUID             `gorm:"column:user_id;type:uuid;not null;index"`
	Type          enums.InteractionType `gorm:"column:type;type:text;not null"`
	Subject       string                `gorm:"column:subject;not null"`
	Notes         *string               `gorm:"column:notes;type:text"`
	ScheduledDate *time.Time            `gorm:"column:scheduled_date"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
}
