package interactions

import (
	"context"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles interaction persistence. Contact-scoped queries enforce
// ownership through the parent contact; the flat listing is scoped to the
// user who logged the interaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to interaction operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new interaction row.
func (r *Repository) Create(ctx context.Context, interaction *models.Interaction) (*models.Interaction, error) {
	if interaction == nil {
		return nil, fmt.Errorf("interaction is required")
	}
	if err := r.db.WithContext(ctx).Create(interaction).Error; err != nil {
		return nil, err
	}
	return interaction, nil
}

// FindByID loads an interaction whose contact belongs to the owner.
func (r *Repository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).
		Joins("JOIN contacts ON contacts.id = interactions.contact_id").
		Where("interactions.id = ? AND contacts.owner_id = ?", id, ownerID).
		First(&interaction).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

// ListByContact returns interactions for one of the owner's contacts, newest first.
func (r *Repository) ListByContact(ctx context.Context, ownerID, contactID uuid.UUID, page pagination.Params) ([]models.Interaction, error) {
	var found []models.Interaction
	if err := r.db.WithContext(ctx).
		Joins("JOIN contacts ON contacts.id = interactions.contact_id").
		Where("interactions.contact_id = ? AND contacts.owner_id = ?", contactID, ownerID).
		Order("interactions.created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// ListByUser returns the interactions logged by the user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, page pagination.Params) ([]models.Interaction, error) {
	var found []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("interactions.user_id = ?", userID).
		Order("interactions.created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Update saves the provided interaction.
func (r *Repository) Update(ctx context.Context, interaction *models.Interaction) error {
	if interaction == nil {
		return fmt.Errorf("interaction is required")
	}
	return r.db.WithContext(ctx).Save(interaction).Error
}

// Delete removes an interaction by its UUID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Interaction{}, "id = ?", id).Error
}
