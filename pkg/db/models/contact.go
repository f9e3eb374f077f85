package models

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// Contact is the core CRM entity; every contact belongs to one owner.
type Contact struct {
	ID        uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID   uuid.UUID           `gorm:"column:owner_id;type:uuid;not null;index"`
	FirstName string              `gorm:"column:first_name;not null"`
	LastName  string              `gorm:"column:last_name;not null"`
	Email     *string             `gorm:"column:email"`
	Phone     *string             `gorm:"column:phone"`
	Company   *string             `gorm:"column:company"`
	Position  *string             `gorm:"column:position"`
	Status    enums.ContactStatus `gorm:"column:status;type:text;not null;default:'lead'"`
	Notes     *string             `gorm:"column:notes;type:text"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
