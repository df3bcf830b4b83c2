package service

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpancino/myAssetPlace-sub004/internal/cache"
	"github.com/mpancino/myAssetPlace-sub004/internal/calculator"
	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "wealth-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func seedUser(t *testing.T, store *sqlite.SQLiteStore) *models.User {
	t.Helper()
	user := models.NewUser("owner@example.com", "Owner", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestProjectionServiceProject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	assets := NewAssetService(store)
	expenses := NewExpenseService(store)

	home := &models.Asset{Name: "Home", Class: models.ClassProperty, Value: 800000, GrowthRate: 0.04}
	if err := assets.Create(ctx, user.ID, home); err != nil {
		t.Fatalf("create home: %v", err)
	}
	mortgage := &models.Asset{Name: "Home loan", Class: models.ClassMortgage, Value: 600000, Liability: true}
	if err := assets.Create(ctx, user.ID, mortgage); err != nil {
		t.Fatalf("create mortgage: %v", err)
	}
	if err := assets.AttachLoan(ctx, user.ID, &models.Loan{
		AssetID: mortgage.ID, Principal: 600000, AnnualRate: 0.055, TermYears: 30, PaymentsPerYear: 12,
	}); err != nil {
		t.Fatalf("attach loan: %v", err)
	}
	if err := expenses.Create(ctx, user.ID, &models.Expense{
		AssetID: home.ID, Category: "rates", Amount: 500, Frequency: calculator.FrequencyQuarterly,
	}); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if err := expenses.Create(ctx, user.ID, &models.Expense{
		Category: "groceries", Amount: 900, Frequency: calculator.FrequencyMonthly,
	}); err != nil {
		t.Fatalf("create household expense: %v", err)
	}

	svc := NewProjectionService(store, cache.NewMemoryCache())

	result, err := svc.Project(ctx, user.ID, 10, 12)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	wantLen := 10*12 + 1
	if len(result.NetWorth) != wantLen {
		t.Fatalf("NetWorth length = %d, want %d", len(result.NetWorth), wantLen)
	}

	// Net-worth identity holds at every period.
	for i := range result.NetWorth {
		want := result.TotalAssets[i] - result.TotalLiabilities[i]
		if math.Abs(result.NetWorth[i]-want) > 1e-9 {
			t.Fatalf("period %d: netWorth = %v, want %v", i, result.NetWorth[i], want)
		}
	}

	// Period 0 reflects the stored snapshot.
	if result.TotalAssets[0] != 800000 {
		t.Errorf("period 0 assets = %v, want 800000", result.TotalAssets[0])
	}
	if result.TotalLiabilities[0] != 600000 {
		t.Errorf("period 0 liabilities = %v, want 600000", result.TotalLiabilities[0])
	}

	// Both attached and household expenses land in the cashflow series:
	// 500 quarterly + 900 monthly = (2000 + 10800)/12 per month.
	wantMonthly := (500*4 + 900*12) / 12.0
	if math.Abs(result.Expenses[1]-wantMonthly) > 1e-6 {
		t.Errorf("period 1 expenses = %v, want %v", result.Expenses[1], wantMonthly)
	}
}

func TestProjectionServiceMemoizes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	assets := NewAssetService(store)
	if err := assets.Create(ctx, user.ID, &models.Asset{
		Name: "Shares", Class: models.ClassShares, Value: 100000, GrowthRate: 0.07,
	}); err != nil {
		t.Fatalf("create asset: %v", err)
	}

	mem := cache.NewMemoryCache()
	svc := NewProjectionService(store, mem)

	first, err := svc.Project(ctx, user.ID, 5, 12)
	if err != nil {
		t.Fatalf("first Project failed: %v", err)
	}
	second, err := svc.Project(ctx, user.ID, 5, 12)
	if err != nil {
		t.Fatalf("second Project failed: %v", err)
	}

	if len(first.NetWorth) != len(second.NetWorth) {
		t.Fatalf("result lengths differ: %d vs %d", len(first.NetWorth), len(second.NetWorth))
	}
	for i := range first.NetWorth {
		if math.Abs(first.NetWorth[i]-second.NetWorth[i]) > 1e-9 {
			t.Fatalf("period %d: cached result differs: %v vs %v", i, first.NetWorth[i], second.NetWorth[i])
		}
	}
}

func TestProjectionServiceClampsHorizon(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	svc := NewProjectionService(store, cache.NewMemoryCache())

	result, err := svc.Project(ctx, user.ID, MaxHorizonYears+50, 1)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if got, want := len(result.Dates), MaxHorizonYears+1; got != want {
		t.Errorf("points = %d, want %d (clamped horizon)", got, want)
	}

	// Negative horizons degrade to a snapshot-only result.
	result, err = svc.Project(ctx, user.ID, -3, 12)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(result.Dates) != 1 {
		t.Errorf("points = %d, want 1 for negative horizon", len(result.Dates))
	}
}

func TestProjectionServiceClampsGranularity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	svc := NewProjectionService(store, cache.NewMemoryCache())

	// A huge periodsPerYear must not inflate the series: both bounds
	// together cap the result at MaxHorizonYears*MaxPeriodsPerYear+1 points.
	result, err := svc.Project(ctx, user.ID, MaxHorizonYears, 120000)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if got, want := len(result.Dates), MaxHorizonYears*MaxPeriodsPerYear+1; got != want {
		t.Errorf("points = %d, want %d (clamped granularity)", got, want)
	}

	// Zero and negative granularity select the monthly default.
	result, err = svc.Project(ctx, user.ID, 2, -4)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if got, want := len(result.Dates), 2*DefaultPeriodsPerYear+1; got != want {
		t.Errorf("points = %d, want %d for defaulted granularity", got, want)
	}
}

func TestDashboardServiceSummary(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	assets := NewAssetService(store)
	expenses := NewExpenseService(store)

	if err := assets.Create(ctx, user.ID, &models.Asset{
		Name: "Home", Class: models.ClassProperty, Value: 800000,
	}); err != nil {
		t.Fatalf("create home: %v", err)
	}
	if err := assets.Create(ctx, user.ID, &models.Asset{
		Name: "Shares", Class: models.ClassShares, Value: 100000, IncomeYield: 0.04,
	}); err != nil {
		t.Fatalf("create shares: %v", err)
	}
	if err := assets.Create(ctx, user.ID, &models.Asset{
		Name: "Home loan", Class: models.ClassMortgage, Value: 500000, Liability: true,
	}); err != nil {
		t.Fatalf("create loan: %v", err)
	}
	if err := expenses.Create(ctx, user.ID, &models.Expense{
		Category: "insurance", Amount: 1200, Frequency: calculator.FrequencyQuarterly,
	}); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	summary, err := NewDashboardService(store).Summary(ctx, user.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if summary.TotalAssets != 900000 {
		t.Errorf("TotalAssets = %v, want 900000", summary.TotalAssets)
	}
	if summary.TotalLiabilities != 500000 {
		t.Errorf("TotalLiabilities = %v, want 500000", summary.TotalLiabilities)
	}
	if summary.NetWorth != 400000 {
		t.Errorf("NetWorth = %v, want 400000", summary.NetWorth)
	}
	if summary.NetWorthDisplay != "$400,000.00" {
		t.Errorf("NetWorthDisplay = %q, want $400,000.00", summary.NetWorthDisplay)
	}
	if math.Abs(summary.AnnualIncome-4000) > 1e-9 {
		t.Errorf("AnnualIncome = %v, want 4000", summary.AnnualIncome)
	}
	// Quarterly 1200 annualizes to 4800, not 14400.
	if math.Abs(summary.AnnualExpenses-4800) > 1e-9 {
		t.Errorf("AnnualExpenses = %v, want 4800", summary.AnnualExpenses)
	}
	if summary.Allocation[models.ClassMortgage] != -500000 {
		t.Errorf("Allocation[mortgage] = %v, want -500000", summary.Allocation[models.ClassMortgage])
	}
}
