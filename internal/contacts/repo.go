package contacts

import (
	"context"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles contact persistence. Every lookup is filtered by the
// owning user so rows from other tenants are indistinguishable from missing.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to contact operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new contact row.
func (r *Repository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if contact == nil {
		return nil, fmt.Errorf("contact is required")
	}
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// FindByID loads an owner's contact by its UUID.
func (r *Repository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns the owner's contacts ordered by creation time.
func (r *Repository) List(ctx context.Context, ownerID uuid.UUID, filter ListContactsFilter, page pagination.Params) ([]models.Contact, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR company LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var found []models.Contact
	if err := query.
		Order("created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Update saves the provided contact.
func (r *Repository) Update(ctx context.Context, contact *models.Contact) error {
	if contact == nil {
		return fmt.Errorf("contact is required")
	}
	return r.db.WithContext(ctx).Save(contact).Error
}

// DeleteCascade removes the contact plus its interactions and deals, and
// detaches any tasks that reference it. Runs on the provided transaction.
func (r *Repository) DeleteCascade(tx *gorm.DB, ownerID, id uuid.UUID) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}

	var contact models.Contact
	if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&contact).Error; err != nil {
		return err
	}

	if err := tx.Where("contact_id = ?", id).Delete(&models.Interaction{}).Error; err != nil {
		return err
	}
	if err := tx.Where("contact_id = ?", id).Delete(&models.Deal{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Task{}).
		Where("contact_id = ?", id).
		UpdateColumn("contact_id", nil).Error; err != nil {
		return err
	}

	return tx.Delete(&contact).Error
}
