package models

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// User represents the canonical identity entity.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email          string         `gorm:"type:text;not null;uniqueIndex:users_email_key"`
	HashedPassword string         `gorm:"column:hashed_password;not null"`
	FullName       string         `gorm:"column:full_name;not null"`
	Role           enums.UserRole `gorm:"column:role;type:text;not null;default:'user'"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
