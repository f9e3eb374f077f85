package contacts

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
)

// ContactDTO is the transport shape for a contact.
type ContactDTO struct {
	ID        uuid.UUID           `json:"id"`
	OwnerID   uuid.UUID           `json:"owner_id"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Email     *string             `json:"email,omitempty"`
	Phone     *string             `json:"phone,omitempty"`
	Company   *string             `json:"company,omitempty"`
	Position  *string             `json:"position,omitempty"`
	Status    enums.ContactStatus `json:"status"`
	Notes     *string             `json:"notes,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateContactInput holds the fields accepted when creating a contact.
type CreateContactInput struct {
	FirstName string               `json:"first_name" validate:"required"`
	LastName  string               `json:"last_name" validate:"required"`
	Email     *string              `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string              `json:"phone,omitempty"`
	Company   *string              `json:"company,omitempty"`
	Position  *string              `json:"position,omitempty"`
	Status    *enums.ContactStatus `json:"status,omitempty"`
	Notes     *string              `json:"notes,omitempty"`
}

// UpdateContactInput captures the allowed contact fields for mutation. Nil
// pointers leave the stored value untouched.
type UpdateContactInput struct {
	FirstName *string              `json:"first_name,omitempty"`
	LastName  *string              `json:"last_name,omitempty"`
	Email     *string              `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string              `json:"phone,omitempty"`
	Company   *string              `json:"company,omitempty"`
	Position  *string              `json:"position,omitempty"`
	Status    *enums.ContactStatus `json:"status,omitempty"`
	Notes     *string              `json:"notes,omitempty"`
}

// ListContactsFilter narrows contact listings.
type ListContactsFilter struct {
	Status *enums.ContactStatus
	Search *string
}

func FromModel(c *models.Contact) *ContactDTO {
	if c == nil {
		return nil
	}

	return &ContactDTO{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Position:  c.Position,
		Status:    c.Status,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (c CreateContactInput) ToModel(ownerID uuid.UUID) *models.Contact {
	status := enums.ContactStatusLead
	if c.Status != nil {
		status = *c.Status
	}

	return &models.Contact{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Position:  c.Position,
		Status:    status,
		Notes:     c.Notes,
	}
}
