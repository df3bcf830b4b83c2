package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/mpancino/myAssetPlace-sub004/internal/cache"
	"github.com/mpancino/myAssetPlace-sub004/internal/calculator"
	"github.com/mpancino/myAssetPlace-sub004/internal/metrics"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

const (
	// DefaultPeriodsPerYear is monthly granularity, the dominant path.
	DefaultPeriodsPerYear = 12

	// MaxHorizonYears bounds a projection request; beyond a century the
	// series is noise and the arrays get large for no benefit.
	MaxHorizonYears = 100

	// MaxPeriodsPerYear caps granularity at monthly. Both bounds must hold
	// or a single request could demand arbitrarily large series.
	MaxPeriodsPerYear = 12

	// cacheTTL bounds how long a memoized projection lives. Results are
	// keyed by input hash, so the TTL only limits memory, not staleness.
	cacheTTL = time.Hour
)

// ProjectionService assembles a user's holdings into engine input and runs
// the projection, memoizing results by input hash.
type ProjectionService struct {
	store storage.Store
	cache cache.Cache
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(store storage.Store, c cache.Cache) *ProjectionService {
	return &ProjectionService{store: store, cache: c}
}

// buildInput loads the user's assets, loans, and expenses and maps them to
// engine snapshots. The projection starts at the beginning of the current
// day so identical requests within a day share a cache entry.
func (s *ProjectionService) buildInput(ctx context.Context, userID string, horizonYears, periodsPerYear int) (calculator.ProjectionInput, error) {
	assets, err := s.store.ListAssets(ctx, userID)
	if err != nil {
		return calculator.ProjectionInput{}, err
	}
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		return calculator.ProjectionInput{}, err
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Expenses attached to an asset ride along with it; user-level expenses
	// get a zero-value carrier snapshot so they still hit the cashflow series.
	byAsset := make(map[string][]calculator.Expense)
	var household []calculator.Expense
	for _, e := range expenses {
		ce := calculator.Expense{Category: e.Category, Amount: e.Amount, Frequency: e.Frequency}
		if e.AssetID == "" {
			household = append(household, ce)
		} else {
			byAsset[e.AssetID] = append(byAsset[e.AssetID], ce)
		}
	}

	snapshots := make([]calculator.AssetSnapshot, 0, len(assets)+1)
	for _, a := range assets {
		snap := calculator.AssetSnapshot{
			Class:       a.Class,
			Value:       a.Value,
			GrowthRate:  a.GrowthRate,
			IncomeYield: a.IncomeYield,
			Liability:   a.Liability,
			Expenses:    byAsset[a.ID],
			StartPeriod: periodsUntil(start, a.StartDate, periodsPerYear),
		}

		loan, err := s.store.GetLoanByAsset(ctx, userID, a.ID)
		if err != nil {
			return calculator.ProjectionInput{}, err
		}
		if loan != nil {
			t := terms(loan)
			snap.Loan = &t
		}

		snapshots = append(snapshots, snap)
	}
	if len(household) > 0 {
		snapshots = append(snapshots, calculator.AssetSnapshot{
			Class:    "household",
			Expenses: household,
		})
	}

	return calculator.ProjectionInput{
		Assets:         snapshots,
		HorizonYears:   horizonYears,
		PeriodsPerYear: periodsPerYear,
		Start:          start,
	}, nil
}

// periodsUntil converts a future start date into a period offset from the
// projection start. Dates in the past (or unset) map to period 0.
func periodsUntil(start time.Time, startDate int64, periodsPerYear int) int {
	if startDate == 0 {
		return 0
	}
	sd := time.Unix(startDate, 0).UTC()
	if !sd.After(start) {
		return 0
	}
	months := (sd.Year()-start.Year())*12 + int(sd.Month()) - int(start.Month())
	monthsPerPeriod := 12 / periodsPerYear
	if monthsPerPeriod < 1 {
		monthsPerPeriod = 1
	}
	periods := months / monthsPerPeriod
	if periods < 0 {
		return 0
	}
	return periods
}

// cacheKey hashes the JSON-encoded input; the engine is pure, so equal
// inputs always produce equal results.
func cacheKey(userID string, input calculator.ProjectionInput) (string, error) {
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode projection input: %w", err)
	}
	return fmt.Sprintf("projection:%s:%x", userID, xxhash.Sum64(encoded)), nil
}

// Project produces the multi-year time series for the user's holdings.
// horizonYears is clamped to [0, MaxHorizonYears] and periodsPerYear to
// [1, MaxPeriodsPerYear]; periodsPerYear <= 0 selects the monthly default.
func (s *ProjectionService) Project(ctx context.Context, userID string, horizonYears, periodsPerYear int) (calculator.ProjectionResult, error) {
	if horizonYears < 0 {
		horizonYears = 0
	}
	if horizonYears > MaxHorizonYears {
		horizonYears = MaxHorizonYears
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultPeriodsPerYear
	}
	if periodsPerYear > MaxPeriodsPerYear {
		periodsPerYear = MaxPeriodsPerYear
	}

	input, err := s.buildInput(ctx, userID, horizonYears, periodsPerYear)
	if err != nil {
		return calculator.ProjectionResult{}, err
	}

	key, err := cacheKey(userID, input)
	if err == nil {
		if encoded, ok := s.cache.Get(ctx, key); ok {
			var result calculator.ProjectionResult
			if err := json.Unmarshal([]byte(encoded), &result); err == nil {
				metrics.CacheRequests.WithLabelValues("hit").Inc()
				return result, nil
			}
			// A corrupt entry falls through to recompute.
		}
		metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	started := time.Now()
	result := calculator.Project(input)
	metrics.ProjectionDuration.Observe(time.Since(started).Seconds())

	if key != "" {
		if encoded, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), cacheTTL); err != nil {
				slog.Warn("Failed to cache projection", "user_id", userID, "error", err)
			}
		}
	}

	return result, nil
}
