package dashboard

import (
	"context"

	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository runs the aggregate queries behind the dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to dashboard queries.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountContacts returns the owner's contact count, optionally by status.
func (r *Repository) CountContacts(ctx context.Context, ownerID uuid.UUID, status *enums.ContactStatus) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("owner_id = ?", ownerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountTasks returns the owner's task count, optionally by status.
func (r *Repository) CountTasks(ctx context.Context, ownerID uuid.UUID, status *enums.TaskStatus) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("owner_id = ?", ownerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountDeals returns the number of deals owned by the user.
func (r *Repository) CountDeals(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumDealValue totals the value of the owner's deals. Deals without a value
// contribute nothing; an empty pipeline sums to zero.
func (r *Repository) SumDealValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	var raw struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Select("COALESCE(SUM(deals.value), 0) AS total").
		Where("deals.owner_id = ?", ownerID).
		Scan(&raw).Error; err != nil {
		return decimal.Zero, err
	}
	return raw.Total, nil
}

// CountDealsByStage groups the owner's deals per pipeline stage.
func (r *Repository) CountDealsByStage(ctx context.Context, ownerID uuid.UUID) (map[enums.DealStage]int64, error) {
	var rows []struct {
		Stage enums.DealStage
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Select("deals.stage AS stage, COUNT(*) AS count").
		Where("deals.owner_id = ?", ownerID).
		Group("deals.stage").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[enums.DealStage]int64, len(rows))
	for _, row := range rows {
		result[row.Stage] = row.Count
	}
	return result, nil
}

// RecentInteractions returns the newest interactions across the owner's
// contacts. Visibility follows contact ownership, not who logged the row.
func (r *Repository) RecentInteractions(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Interaction, error) {
	var found []models.Interaction
	if err := r.db.WithContext(ctx).
		Joins("JOIN contacts ON contacts.id = interactions.contact_id").
		Where("contacts.owner_id = ?", ownerID).
		Order("interactions.created_at DESC").
		Limit(limit).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}
