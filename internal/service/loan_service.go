package service

import (
	"context"
	"errors"
	"time"

	"github.com/mpancino/myAssetPlace-sub004/internal/calculator"
	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
	"github.com/mpancino/myAssetPlace-sub004/pkg/money"
)

// ErrInsufficientData is returned when a computation is requested for a
// record that lacks the inputs it needs (e.g., a schedule for an asset with
// no loan). Surfaced to clients as a message, never as a crash.
var ErrInsufficientData = errors.New("insufficient data to compute")

// LoanSummary is the derived view of a loan the dashboard shows: the fixed
// payment, lifetime totals, and the balance as of now. Amounts are rounded
// to cents here, at the display edge, never inside the engine.
type LoanSummary struct {
	Payment        float64 `json:"payment"`
	TotalPrincipal float64 `json:"totalPrincipal"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	ElapsedPeriods int     `json:"elapsedPeriods"`
	CurrentBalance float64 `json:"currentBalance"`
}

// LoanService computes amortization schedules and summaries for stored loans.
type LoanService struct {
	store storage.Store
}

// NewLoanService creates a new LoanService with the given storage backend.
func NewLoanService(store storage.Store) *LoanService {
	return &LoanService{store: store}
}

// terms converts a stored loan into engine input.
func terms(loan *models.Loan) calculator.LoanTerms {
	return calculator.LoanTerms{
		Principal:       loan.Principal,
		AnnualRate:      loan.AnnualRate,
		TermYears:       loan.TermYears,
		PaymentsPerYear: loan.PaymentsPerYear,
	}
}

// elapsedPeriods counts whole payment periods between the loan start and now.
func elapsedPeriods(loan *models.Loan, now time.Time) int {
	if loan.StartDate == 0 {
		return 0
	}
	start := time.Unix(loan.StartDate, 0).UTC()
	if !start.Before(now) {
		return 0
	}
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	monthsPerPeriod := 12 / loan.PaymentsPerYear
	if monthsPerPeriod < 1 {
		monthsPerPeriod = 1
	}
	if months < 0 {
		return 0
	}
	return months / monthsPerPeriod
}

// Schedule returns the full amortization schedule for the loan attached to
// an asset.
func (s *LoanService) Schedule(ctx context.Context, userID, assetID string) ([]calculator.AmortizationEntry, error) {
	loan, err := s.store.GetLoanByAsset(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, ErrInsufficientData
	}

	schedule := calculator.AmortizationSchedule(terms(loan))
	if len(schedule) == 0 {
		return nil, ErrInsufficientData
	}
	return schedule, nil
}

// Summary returns the derived loan figures for an asset as of now.
func (s *LoanService) Summary(ctx context.Context, userID, assetID string) (*LoanSummary, error) {
	loan, err := s.store.GetLoanByAsset(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, ErrInsufficientData
	}

	schedule := calculator.AmortizationSchedule(terms(loan))
	if len(schedule) == 0 {
		return nil, ErrInsufficientData
	}

	elapsed := elapsedPeriods(loan, time.Now().UTC())
	totalInterest := calculator.TotalInterest(schedule)

	return &LoanSummary{
		Payment:        money.RoundCents(schedule[0].Payment),
		TotalPrincipal: money.RoundCents(calculator.TotalPrincipal(schedule)),
		TotalInterest:  money.RoundCents(totalInterest),
		TotalCost:      money.RoundCents(loan.Principal + totalInterest),
		ElapsedPeriods: elapsed,
		CurrentBalance: money.RoundCents(calculator.BalanceAt(schedule, elapsed)),
	}, nil
}
