package interactions

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

const (
	contactNotFoundMessage     = "contact not found"
	interactionNotFoundMessage = "interaction not found"
)

type interactionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) (*models.Interaction, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Interaction, error)
	ListByContact(ctx context.Context, ownerID, contactID uuid.UUID, page pagination.Params) ([]models.Interaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page pagination.Params) ([]models.Interaction, error)
	Update(ctx context.Context, interaction *models.Interaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactFinder interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Contact, error)
}

// Service exposes interaction operations for a single authenticated owner.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateInteractionInput) (*InteractionDTO, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*InteractionDTO, error)
	ListByContact(ctx context.Context, ownerID, contactID uuid.UUID, page pagination.Params) ([]InteractionDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]InteractionDTO, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInteractionInput) (*InteractionDTO, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo     interactionRepository
	contacts contactFinder
}

// ServiceParams bundles the dependencies needed to build an interaction service.
type ServiceParams struct {
	Repo     interactionRepository
	Contacts contactFinder
}

// NewService builds an interaction service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("interaction repository is required")
	}
	if params.Contacts == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	return &service{repo: params.Repo, contacts: params.Contacts}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateInteractionInput) (*InteractionDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid interaction type")
	}
	if input.Subject == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject is required")
	}

	if err := s.requireContact(ctx, ownerID, input.ContactID); err != nil {
		return nil, err
	}

	interaction, err := s.repo.Create(ctx, input.ToModel(ownerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create interaction")
	}
	return FromModel(interaction), nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*InteractionDTO, error) {
	interaction, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, interactionNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load interaction")
	}
	return FromModel(interaction), nil
}

func (s *service) ListByContact(ctx context.Context, ownerID, contactID uuid.UUID, page pagination.Params) ([]InteractionDTO, error) {
	if err := s.requireContact(ctx, ownerID, contactID); err != nil {
		return nil, err
	}

	found, err := s.repo.ListByContact(ctx, ownerID, contactID, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list interactions")
	}
	return toDTOs(found), nil
}

// List returns the interactions the caller logged, regardless of which
// contact they touch.
func (s *service) List(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]InteractionDTO, error) {
	found, err := s.repo.ListByUser(ctx, ownerID, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list interactions")
	}
	return toDTOs(found), nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInteractionInput) (*InteractionDTO, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid interaction type")
	}

	interaction, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, interactionNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load interaction")
	}

	if input.Type != nil {
		interaction.Type = *input.Type
	}
	if input.Subject != nil {
		interaction.Subject = *input.Subject
	}
	if input.Notes != nil {
		notes := *input.Notes
		interaction.Notes = &notes
	}
	if input.ScheduledDate != nil {
		scheduled := *input.ScheduledDate
		interaction.ScheduledDate = &scheduled
	}

	if err := s.repo.Update(ctx, interaction); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update interaction")
	}
	return FromModel(interaction), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	interaction, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, interactionNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load interaction")
	}

	if err := s.repo.Delete(ctx, interaction.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete interaction")
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

func toDTOs(found []models.Interaction) []InteractionDTO {
	result := make([]InteractionDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result
}
