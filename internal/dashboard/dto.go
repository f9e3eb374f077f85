package dashboard

import (
	"github.com/angelmondragon/zencrm-backend/internal/interactions"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// StatsDTO is the aggregated snapshot rendered on the dashboard.
type StatsDTO struct {
	TotalContacts  int64 `json:"total_contacts"`
	TotalLeads     int64 `json:"total_leads"`
	TotalProspects int64 `json:"total_prospects"`
	TotalCustomers int64 `json:"total_customers"`

	TotalTasks     int64 `json:"total_tasks"`
	PendingTasks   int64 `json:"pending_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`

	TotalDeals     int64           `json:"total_deals"`
	TotalDealValue decimal.Decimal `json:"total_deal_value"`

	DealsByStage map[enums.DealStage]int64 `json:"deals_by_stage"`

	RecentInteractions []interactions.InteractionDTO `json:"recent_interactions"`
}
