package service

import (
	"context"

	"leo-furniture-api/internal/model"
	"leo-furniture-api/internal/repository"
)

// AnalyticsService computes the derived financial metrics over one user's
// current ledger state. It holds no state of its own, so the summary is
// always a fresh recomputation.
type AnalyticsService struct {
	items repository.ItemRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(items repository.ItemRepository) *AnalyticsService {
	return &AnalyticsService{items: items}
}

// Summary computes the profit summary:
//
//	gross_sales    = sum of sold_price over sold items
//	total_cost     = sum of purchase_price over ALL items
//	total_delivery = sum of delivery_price over sold items
//	net_profit     = gross_sales - total_cost - total_delivery
//
// Each sum is 0 when no matching rows exist.
func (s *AnalyticsService) Summary(ctx context.Context, userID int64) (model.ProfitSummary, error) {
	totals, err := s.items.ProfitTotals(ctx, userID)
	if err != nil {
		return model.ProfitSummary{}, err
	}

	return model.ProfitSummary{
		GrossSales:    totals.GrossSales,
		TotalCost:     totals.TotalCost,
		TotalDelivery: totals.TotalDelivery,
		NetProfit:     totals.GrossSales - totals.TotalCost - totals.TotalDelivery,
	}, nil
}
