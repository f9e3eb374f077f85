package dashboard

import (
	"context"
	"fmt"

	"github.com/angelmondragon/zencrm-backend/internal/interactions"
	"github.com/angelmondragon/zencrm-backend/pkg/db/models"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const recentInteractionsLimit = 5

type dashboardRepository interface {
	CountContacts(ctx context.Context, ownerID uuid.UUID, status *enums.ContactStatus) (int64, error)
	CountTasks(ctx context.Context, ownerID uuid.UUID, status *enums.TaskStatus) (int64, error)
	CountDeals(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SumDealValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
	CountDealsByStage(ctx context.Context, ownerID uuid.UUID) (map[enums.DealStage]int64, error)
	RecentInteractions(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Interaction, error)
}

// Service assembles the dashboard snapshot for an authenticated owner.
type Service interface {
	Stats(ctx context.Context, ownerID uuid.UUID) (*StatsDTO, error)
}

type service struct {
	repo dashboardRepository
}

// NewService builds a dashboard service with the provided repository.
func NewService(repo dashboardRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Stats(ctx context.Context, ownerID uuid.UUID) (*StatsDTO, error) {
	stats := &StatsDTO{
		TotalDealValue:     decimal.Zero,
		RecentInteractions: []interactions.InteractionDTO{},
	}

	var errs error

	count, err := s.repo.CountContacts(ctx, ownerID, nil)
	errs = multierr.Append(errs, err)
	stats.TotalContacts = count

	lead := enums.ContactStatusLead
	count, err = s.repo.CountContacts(ctx, ownerID, &lead)
	errs = multierr.Append(errs, err)
	stats.TotalLeads = count

	prospect := enums.ContactStatusProspect
	count, err = s.repo.CountContacts(ctx, ownerID, &prospect)
	errs = multierr.Append(errs, err)
	stats.TotalProspects = count

	customer := enums.ContactStatusCustomer
	count, err = s.repo.CountContacts(ctx, ownerID, &customer)
	errs = multierr.Append(errs, err)
	stats.TotalCustomers = count

	count, err = s.repo.CountTasks(ctx, ownerID, nil)
	errs = multierr.Append(errs, err)
	stats.TotalTasks = count

	pending := enums.TaskStatusPending
	count, err = s.repo.CountTasks(ctx, ownerID, &pending)
	errs = multierr.Append(errs, err)
	stats.PendingTasks = count

	completed := enums.TaskStatusCompleted
	count, err = s.repo.CountTasks(ctx, ownerID, &completed)
	errs = multierr.Append(errs, err)
	stats.CompletedTasks = count

	count, err = s.repo.CountDeals(ctx, ownerID)
	errs = multierr.Append(errs, err)
	stats.TotalDeals = count

	total, err := s.repo.SumDealValue(ctx, ownerID)
	errs = multierr.Append(errs, err)
	if err == nil {
		stats.TotalDealValue = total
	}

	byStage, err := s.repo.CountDealsByStage(ctx, ownerID)
	errs = multierr.Append(errs, err)
	stats.DealsByStage = zeroFilledStages(byStage)

	recent, err := s.repo.RecentInteractions(ctx, ownerID, recentInteractionsLimit)
	errs = multierr.Append(errs, err)
	for i := range recent {
		stats.RecentInteractions = append(stats.RecentInteractions, *interactions.FromModel(&recent[i]))
	}

	if errs != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, errs, "aggregate dashboard stats")
	}
	return stats, nil
}

// zeroFilledStages guarantees every pipeline stage appears in the map, even
// when the owner has no deals in it.
func zeroFilledStages(counts map[enums.DealStage]int64) map[enums.DealStage]int64 {
	result := make(map[enums.DealStage]int64, len(enums.AllDealStages()))
	for _, stage := range enums.AllDealStages() {
		result[stage] = counts[stage]
	}
	return result
}
