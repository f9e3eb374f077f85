package interactions

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// InteractionDTO is the transport shape for an interaction.
type InteractionDTO struct {
	ID            uuid.UUID             `json:"id"`
	ContactID     uuid.UUID             `json:"contact_id"`
	UserID        uuid.UUID             `json:"user_id"`
	Type          enums.InteractionType `json:"type"`
	Subject       string                `json:"subject"`
	Notes         *string               `json:"notes,omitempty"`
	ScheduledDate *time.Time            `json:"scheduled_date,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// CreateInteractionInput holds the fields accepted when logging an interaction.
type CreateInteractionInput struct {
	ContactID     uuid.UUID             `json:"contact_id" validate:"required"`
	Type          enums.InteractionType `json:"type" validate:"required"`
	Subject       string                `json:"subject" validate:"required"`
	Notes         *string               `json:"notes,omitempty"`
	ScheduledDate *time.Time            `json:"scheduled_date,omitempty"`
}

// UpdateInteractionInput captures the mutable interaction fields. Nil pointers
// leave the stored value untouched.
type UpdateInteractionInput struct {
	Type          *enums.InteractionType `json:"type,omitempty"`
	Subject       *string                `json:"subject,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	ScheduledDate *time.Time             `json:"scheduled_date,omitempty"`
}

func FromModel(i *models.Interaction) *InteractionDTO {
	if i == nil {
		return nil
	}

	return &InteractionDTO{
		ID:            i.ID,
		ContactID:     i.ContactID,
		UserID:        i.UserID,
		Type:          i.Type,
		Subject:       i.Subject,
		Notes:         i.Notes,
		ScheduledDate: i.ScheduledDate,
		CreatedAt:     i.CreatedAt,
	}
}

// ToModel builds the row to persist, stamping the acting user.
func (c CreateInteractionInput) ToModel(userID uuid.UUID) *models.Interaction {
	return &models.Interaction{
		ID:            uuid.New(),
		ContactID:     c.ContactID,
		UserID:        userID,
		Type:          c.Type,
		Subject:       c.Subject,
		Notes:         c.Notes,
		ScheduledDate: c.ScheduledDate,
	}
}
