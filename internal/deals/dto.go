package deals

import (
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealDTO is the transport shape for a deal.
type DealDTO struct {
	ID                uuid.UUID        `json:"id"`
	OwnerID           uuid.UUID        `json:"owner_id"`
	ContactID         uuid.UUID        `json:"contact_id"`
	Title             string           `json:"title"`
	Value             *decimal.Decimal `json:"value,omitempty"`
	Stage             enums.DealStage  `json:"stage"`
	Probability       *int             `json:"probability,omitempty"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date,omitempty"`
	Description       *string          `json:"description,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// CreateDealInput holds the fields accepted when opening a deal.
type CreateDealInput struct {
	ContactID         uuid.UUID        `json:"contact_id" validate:"required"`
	Title             string           `json:"title" validate:"required"`
	Value             *decimal.Decimal `json:"value,omitempty"`
	Stage             *enums.DealStage `json:"stage,omitempty"`
	Probability       *int             `json:"probability,omitempty"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date,omitempty"`
	Description       *string          `json:"description,omitempty"`
}

// UpdateDealInput captures the mutable deal fields. Nil pointers leave the
// stored value untouched.
type UpdateDealInput struct {
	Title             *string          `json:"title,omitempty"`
	Value             *decimal.Decimal `json:"value,omitempty"`
	Stage             *enums.DealStage `json:"stage,omitempty"`
	Probability       *int             `json:"probability,omitempty"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date,omitempty"`
	Description       *string          `json:"description,omitempty"`
}

// ListDealsFilter narrows deal listings.
type ListDealsFilter struct {
	Stage     *enums.DealStage
	ContactID *uuid.UUID
}

func FromModel(deal *models.Deal) *DealDTO {
	if deal == nil {
		return nil
	}

	var value *decimal.Decimal
	if deal.Value.Valid {
		v := deal.Value.Decimal
		value = &v
	}

	return &DealDTO{
		ID:                deal.ID,
		OwnerID:           deal.OwnerID,
		ContactID:         deal.ContactID,
		Title:             deal.Title,
		Value:             value,
		Stage:             deal.Stage,
		Probability:       deal.Probability,
		ExpectedCloseDate: deal.ExpectedCloseDate,
		Description:       deal.Description,
		CreatedAt:         deal.CreatedAt,
		UpdatedAt:         deal.UpdatedAt,
	}
}

// ToModel builds the row to persist, stamping the owning user.
func (c CreateDealInput) ToModel(ownerID uuid.UUID) *models.Deal {
	stage := enums.DealStageProspecting
	if c.Stage != nil {
		stage = *c.Stage
	}

	value := decimal.NullDecimal{}
	if c.Value != nil {
		value = decimal.NewNullDecimal(*c.Value)
	}

	return &models.Deal{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		ContactID:         c.ContactID,
		Title:             c.Title,
		Value:             value,
		Stage:             stage,
		Probability:       c.Probability,
		ExpectedCloseDate: c.ExpectedCloseDate,
		Description:       c.Description,
	}
}
