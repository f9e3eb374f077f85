package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const contactNotFoundMessage = "contact not found"

type contactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Contact, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListContactsFilter, page pagination.Params) ([]models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes contact operations for a single authenticated owner.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateContactInput) (*ContactDTO, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ContactDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListContactsFilter, page pagination.Params) ([]ContactDTO, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateContactInput) (*ContactDTO, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo contactRepository
	tx   txRunner
}

// ServiceParams bundles the dependencies needed to build a contact service.
type ServiceParams struct {
	Repo contactRepository
	Tx   txRunner
}

// NewService builds a contact service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{repo: params.Repo, tx: params.Tx}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateContactInput) (*ContactDTO, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact status")
	}

	contact, err := s.repo.Create(ctx, input.ToModel(ownerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contact")
	}
	return FromModel(contact), nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ContactDTO, error) {
	contact, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, contactNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load contact")
	}
	return FromModel(contact), nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, filter ListContactsFilter, page pagination.Params) ([]ContactDTO, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact status")
	}

	found, err := s.repo.List(ctx, ownerID, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contacts")
	}

	result := make([]ContactDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateContactInput) (*ContactDTO, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact status")
	}

	contact, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, contactNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load contact")
	}

	if input.FirstName != nil {
		contact.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.Email != nil {
		contact.Email = cloneStringPtr(input.Email)
	}
	if input.Phone != nil {
		contact.Phone = cloneStringPtr(input.Phone)
	}
	if input.Company != nil {
		contact.Company = cloneStringPtr(input.Company)
	}
	if input.Position != nil {
		contact.Position = cloneStringPtr(input.Position)
	}
	if input.Status != nil {
		contact.Status = *input.Status
	}
	if input.Notes != nil {
		contact.Notes = cloneStringPtr(input.Notes)
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update contact")
	}
	return FromModel(contact), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return NewRepository(tx).DeleteCascade(tx, ownerID, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, contactNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete contact")
	}
	return nil
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}
