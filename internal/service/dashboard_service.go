package service

import (
	"context"

	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
	"github.com/mpancino/myAssetPlace-sub004/pkg/money"
)

// DashboardSummary is the current-position view: totals, allocation by
// class, and annualized cashflow run rates. Amounts are rounded to cents
// at this display edge; NetWorthDisplay is the headline figure ready to
// render, e.g. "$400,000.00".
type DashboardSummary struct {
	TotalAssets      float64            `json:"totalAssets"`
	TotalLiabilities float64            `json:"totalLiabilities"`
	NetWorth         float64            `json:"netWorth"`
	NetWorthDisplay  string             `json:"netWorthDisplay"`
	Allocation       map[string]float64 `json:"allocation"`
	AnnualIncome     float64            `json:"annualIncome"`
	AnnualExpenses   float64            `json:"annualExpenses"`
	NetCashflow      float64            `json:"netCashflow"`
	AssetCount       int                `json:"assetCount"`
}

// DashboardService aggregates a user's current holdings. The arithmetic
// matches period 0 of a projection: current values, no growth applied.
type DashboardService struct {
	store storage.Store
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Summary computes the dashboard for a user.
func (s *DashboardService) Summary(ctx context.Context, userID string) (*DashboardSummary, error) {
	assets, err := s.store.ListAssets(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Allocation: make(map[string]float64),
		AssetCount: len(assets),
	}

	for _, a := range assets {
		if a.Liability {
			summary.TotalLiabilities += a.Value
			summary.Allocation[a.Class] -= a.Value
		} else {
			summary.TotalAssets += a.Value
			summary.Allocation[a.Class] += a.Value
			summary.AnnualIncome += a.Value * a.IncomeYield
		}
	}

	for _, e := range expenses {
		summary.AnnualExpenses += e.AnnualAmount()
	}

	summary.TotalAssets = money.RoundCents(summary.TotalAssets)
	summary.TotalLiabilities = money.RoundCents(summary.TotalLiabilities)
	summary.NetWorth = money.RoundCents(summary.TotalAssets - summary.TotalLiabilities)
	summary.NetWorthDisplay = money.Format(summary.NetWorth)
	summary.AnnualIncome = money.RoundCents(summary.AnnualIncome)
	summary.AnnualExpenses = money.RoundCents(summary.AnnualExpenses)
	summary.NetCashflow = money.RoundCents(summary.AnnualIncome - summary.AnnualExpenses)
	for class, value := range summary.Allocation {
		summary.Allocation[class] = money.RoundCents(value)
	}

	return summary, nil
}
