package deals

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	dealNotFoundMessage    = "deal not found"
	contactNotFoundMessage = "contact not found"
)

type dealRepository interface {
	Create(ctx context.Context, deal *models.Deal) (*models.Deal, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Deal, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListDealsFilter, page pagination.Params) ([]models.Deal, error)
	Update(ctx context.Context, deal *models.Deal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactFinder interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Contact, error)
}

// Service exposes deal operations for a single authenticated owner.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateDealInput) (*DealDTO, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*DealDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListDealsFilter, page pagination.Params) ([]DealDTO, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateDealInput) (*DealDTO, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo     dealRepository
	contacts contactFinder
}

// ServiceParams bundles the dependencies needed to build a deal service.
type ServiceParams struct {
	Repo     dealRepository
	Contacts contactFinder
}

// NewService builds a deal service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("deal repository is required")
	}
	if params.Contacts == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	return &service{repo: params.Repo, contacts: params.Contacts}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateDealInput) (*DealDTO, error) {
	if input.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if input.Stage != nil && !input.Stage.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid deal stage")
	}
	if input.Value != nil && input.Value.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "value must not be negative")
	}

	if err := s.requireContact(ctx, ownerID, input.ContactID); err != nil {
		return nil, err
	}

	deal, err := s.repo.Create(ctx, input.ToModel(ownerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create deal")
	}
	return FromModel(deal), nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*DealDTO, error) {
	deal, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, dealNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load deal")
	}
	return FromModel(deal), nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, filter ListDealsFilter, page pagination.Params) ([]DealDTO, error) {
	if filter.Stage != nil && !filter.Stage.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid deal stage")
	}

	found, err := s.repo.List(ctx, ownerID, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list deals")
	}

	result := make([]DealDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateDealInput) (*DealDTO, error) {
	if input.Stage != nil && !input.Stage.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid deal stage")
	}
	if input.Value != nil && input.Value.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "value must not be negative")
	}

	deal, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, dealNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load deal")
	}

	if input.Title != nil {
		deal.Title = *input.Title
	}
	if input.Value != nil {
		deal.Value = decimal.NewNullDecimal(*input.Value)
	}
	if input.Stage != nil {
		deal.Stage = *input.Stage
	}
	if input.Probability != nil {
		probability := *input.Probability
		deal.Probability = &probability
	}
	if input.ExpectedCloseDate != nil {
		expected := *input.ExpectedCloseDate
		deal.ExpectedCloseDate = &expected
	}
	if input.Description != nil {
		description := *input.Description
		deal.Description = &description
	}

	if err := s.repo.Update(ctx, deal); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update deal")
	}
	return FromModel(deal), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	deal, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, dealNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load deal")
	}

	if err := s.repo.Delete(ctx, deal.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete deal")
	}
	return nil
}

func (s *service) requireContact(ctx context.Context, ownerID, contactID uuid.UUID) error {
	if _, err := s.contacts.FindByID(ctx, ownerID, contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, contactNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load contact")
	}
	return nil
}
