package tasks

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
	taskNotFoundMessage    = "task not found"
	contactNotFoundMessage = "contact not found"
)

type taskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListTasksFilter, page pagination.Params) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type contactFinder interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Contact, error)
}

// Service exposes task operations for a single authenticated owner.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*TaskDTO, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*TaskDTO, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListTasksFilter, page pagination.Params) ([]TaskDTO, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateTaskInput) (*TaskDTO, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo     taskRepository
	contacts contactFinder
}

// ServiceParams bundles the dependencies needed to build a task service.
type ServiceParams struct {
	Repo     taskRepository
	Contacts contactFinder
}

// NewService builds a task service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("task repository is required")
	}
	if params.Contacts == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	return &service{repo: params.Repo, contacts: params.Contacts}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*TaskDTO, error) {
	if input.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task priority")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task status")
	}
	if input.ContactID != nil {
		if err := s.requireContact(ctx, ownerID, *input.ContactID); err != nil {
			return nil, err
		}
	}

	task, err := s.repo.Create(ctx, input.ToModel(ownerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create task")
	}
	return FromModel(task), nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*TaskDTO, error) {
	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, taskNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load task")
	}
	return FromModel(task), nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, filter ListTasksFilter, page pagination.Params) ([]TaskDTO, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task status")
	}
	if filter.Priority != nil && !filter.Priority.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task priority")
	}

	found, err := s.repo.List(ctx, ownerID, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tasks")
	}

	result := make([]TaskDTO, 0, len(found))
	for i := range found {
		result = append(result, *FromModel(&found[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateTaskInput) (*TaskDTO, error) {
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task priority")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid task status")
	}

	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, taskNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load task")
	}

	if input.ContactID != nil {
		if err := s.requireContact(ctx, ownerID, *input.ContactID); err != nil {
			return nil, err
		}
		contactID := *input.ContactID
		task.ContactID = &contactID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		description := *input.Description
		task.Description = &description
	}
	if input.DueDate != nil {
		due := *input.DueDate
		task.DueDate = &due
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update task")
	}
	return FromModel(task), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, taskNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete task")
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
