package calculator

import (
	"fmt"
	"math"
	"time"
)

// Frequency is the cadence of a recurring expense.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// AnnualMultiplier converts a per-occurrence amount at this cadence into an
// annual total. Unknown frequencies multiply to zero so malformed records
// degrade to no contribution instead of failing.
func (f Frequency) AnnualMultiplier() float64 {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencyAnnually:
		return 1
	default:
		return 0
	}
}

// ParseFrequency validates a frequency string from client input.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("unknown frequency %q", s)
	}
}

// Expense is a recurring outflow attached to an asset or directly to a user.
type Expense struct {
	Category  string
	Amount    float64
	Frequency Frequency
}

// AssetSnapshot is the projection engine's view of one holding at period 0.
// Liabilities carry their outstanding balance in Value; an attached Loan
// drives the balance down along its amortization schedule.
type AssetSnapshot struct {
	Class       string
	Value       float64
	GrowthRate  float64
	IncomeYield float64
	Liability   bool
	Loan        *LoanTerms
	Expenses    []Expense

	// StartPeriod delays the holding's contribution: before it the asset
	// contributes zero to every aggregate. Zero means held from period 0.
	StartPeriod int
}

// ProjectionInput is a snapshot of a user's holdings plus a horizon.
type ProjectionInput struct {
	Assets         []AssetSnapshot
	HorizonYears   int
	PeriodsPerYear int
	Start          time.Time
}

// ProjectionResult holds parallel arrays, one element per period including
// period 0 (the snapshot itself). Every slice has length
// HorizonYears*PeriodsPerYear + 1, and ByClass maps each asset class to a
// series of the same length (liabilities contribute negative values).
type ProjectionResult struct {
	Dates            []time.Time          `json:"dates"`
	TotalAssets      []float64            `json:"totalAssets"`
	TotalLiabilities []float64            `json:"totalLiabilities"`
	NetWorth         []float64            `json:"netWorth"`
	Income           []float64            `json:"income"`
	Expenses         []float64            `json:"expenses"`
	NetCashflow      []float64            `json:"netCashflow"`
	ByClass          map[string][]float64 `json:"byClass"`
}

// Periods returns the number of points in the result.
func (r ProjectionResult) Periods() int {
	return len(r.Dates)
}

// sanitize normalizes malformed numeric input to zero: the engine feeds
// charts, where a flat series beats a crashed page.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// nonNegative additionally clamps values that must be positive.
func nonNegative(v float64) float64 {
	v = sanitize(v)
	if v < 0 {
		return 0
	}
	return v
}

// Project advances every holding period by period over the horizon and
// aggregates totals, producing a time series ready for charting.
//
// Per-period rules, applied independently per asset:
//   - value compounds by the growth rate prorated to the period length
//   - income-yielding assets add value*yield/periodsPerYear to income
//   - liability balances follow the attached loan's amortization schedule,
//     falling back to straight-line decline when no schedule exists
//   - expenses are normalized to per-period amounts via the frequency
//     multiplier table
//
// Project is pure: it never reads or writes shared state, so results can be
// memoized by input hash and invocations are safe to run concurrently.
func Project(input ProjectionInput) ProjectionResult {
	ppy := input.PeriodsPerYear
	if ppy <= 0 || input.HorizonYears < 0 {
		return ProjectionResult{ByClass: map[string][]float64{}}
	}

	start := input.Start
	if start.IsZero() {
		start = time.Now()
	}

	totalPeriods := input.HorizonYears * ppy
	points := totalPeriods + 1

	result := ProjectionResult{
		Dates:            make([]time.Time, points),
		TotalAssets:      make([]float64, points),
		TotalLiabilities: make([]float64, points),
		NetWorth:         make([]float64, points),
		Income:           make([]float64, points),
		Expenses:         make([]float64, points),
		NetCashflow:      make([]float64, points),
		ByClass:          make(map[string][]float64),
	}

	// Working state per asset: current value (or liability balance) plus the
	// precomputed amortization schedule.
	values := make([]float64, len(input.Assets))
	schedules := make([][]AmortizationEntry, len(input.Assets))
	for i, a := range input.Assets {
		values[i] = nonNegative(a.Value)
		if a.Loan != nil {
			schedules[i] = AmortizationSchedule(*a.Loan)
		}
		if _, ok := result.ByClass[a.Class]; !ok {
			result.ByClass[a.Class] = make([]float64, points)
		}
	}

	monthsPerPeriod := 12 / ppy
	if monthsPerPeriod < 1 {
		monthsPerPeriod = 1
	}

	for t := 0; t < points; t++ {
		result.Dates[t] = start.AddDate(0, t*monthsPerPeriod, 0)

		for i := range input.Assets {
			a := &input.Assets[i]

			// Future holdings contribute nothing until their start period.
			if t < a.StartPeriod {
				continue
			}
			elapsed := t - a.StartPeriod

			if a.Liability {
				var balance float64
				switch {
				case len(schedules[i]) > 0:
					balance = BalanceAt(schedules[i], elapsed)
				case a.Loan != nil && a.Loan.TotalPeriods() > 0:
					balance = StraightLineBalance(values[i], a.Loan.TotalPeriods(), elapsed)
				default:
					// No terms at all: decline linearly over the horizon.
					balance = StraightLineBalance(values[i], totalPeriods, elapsed)
				}
				result.TotalLiabilities[t] += balance
				result.ByClass[a.Class][t] -= balance
			} else {
				if elapsed > 0 {
					growth := sanitize(a.GrowthRate)
					values[i] *= math.Pow(1+growth, 1/float64(ppy))
				}
				result.TotalAssets[t] += values[i]
				result.ByClass[a.Class][t] += values[i]

				if elapsed > 0 {
					result.Income[t] += values[i] * nonNegative(a.IncomeYield) / float64(ppy)
				}
			}

			if elapsed > 0 {
				for _, e := range a.Expenses {
					result.Expenses[t] += nonNegative(e.Amount) * e.Frequency.AnnualMultiplier() / float64(ppy)
				}
			}
		}

		result.NetWorth[t] = result.TotalAssets[t] - result.TotalLiabilities[t]
		result.NetCashflow[t] = result.Income[t] - result.Expenses[t]
	}

	return result
}
