package deals

import (
	"context"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles deal persistence. Every deal carries its own owner
// column, so queries filter on deals.owner_id directly.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to deal operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new deal row.
func (r *Repository) Create(ctx context.Context, deal *models.Deal) (*models.Deal, error) {
	if deal == nil {
		return nil, fmt.Errorf("deal is required")
	}
	if err := r.db.WithContext(ctx).Create(deal).Error; err != nil {
		return nil, err
	}
	return deal, nil
}

// FindByID loads a deal belonging to the owner.
func (r *Repository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	if err := r.db.WithContext(ctx).
		Where("deals.id = ? AND deals.owner_id = ?", id, ownerID).
		First(&deal).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// List returns the owner's deals ordered by creation time.
func (r *Repository) List(ctx context.Context, ownerID uuid.UUID, filter ListDealsFilter, page pagination.Params) ([]models.Deal, error) {
	query := r.db.WithContext(ctx).
		Where("deals.owner_id = ?", ownerID)

	if filter.Stage != nil {
		query = query.Where("deals.stage = ?", *filter.Stage)
	}
	if filter.ContactID != nil {
		query = query.Where("deals.contact_id = ?", *filter.ContactID)
	}

	var found []models.Deal
	if err := query.
		Order("deals.created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Update saves the provided deal.
func (r *Repository) Update(ctx context.Context, deal *models.Deal) error {
	if deal == nil {
		return fmt.Errorf("deal is required")
	}
	return r.db.WithContext(ctx).Save(deal).Error
}

// Delete removes a deal by its UUID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Deal{}, "id = ?", id).Error
}
