package tasks

import (
	"context"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles task persistence scoped to the owning user.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to task operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new task row.
func (r *Repository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil {
		return nil, fmt.Errorf("task is required")
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// FindByID loads an owner's task by its UUID.
func (r *Repository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the owner's tasks ordered by creation time.
func (r *Repository) List(ctx context.Context, ownerID uuid.UUID, filter ListTasksFilter, page pagination.Params) ([]models.Task, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	var found []models.Task
	if err := query.
		Order("created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Update saves the provided task.
func (r *Repository) Update(ctx context.Context, task *models.Task) error {
	if task == nil {
		return fmt.Errorf("task is required")
	}
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes an owner's task by its UUID.
func (r *Repository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
