package models

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal tracks a sales opportunity attached to a contact.
type Deal struct {
	ID                uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID           uuid.UUID           `gorm:"column:owner_id;type:uuid;not null;index"`
	ContactID         uuid.UUID           `gorm:"column:contact_id;type:uuid;not null;index"`
	Title             string              `gorm:"column:title;not null"`
	Value             decimal.NullDecimal `gorm:"column:value;type:numeric(14,2)"`
	Stage             enums.DealStage     `gorm:"column:stage;type:text;not null;default:'prospecting'"`
	Probability       *int                `gorm:"column:probability"`
	ExpectedCloseDate *time.Time          `gorm:"column:expected_close_date"`
	Description       *string             `gorm:"column:description;type:text"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
