package calculator

import "math"

// LoanTerms describes a fixed-payment loan. It is an immutable input to
// schedule generation; callers validate positivity before handing it over.
type LoanTerms struct {
	Principal       float64
	AnnualRate      float64
	TermYears       int
	PaymentsPerYear int
}

// TotalPeriods returns the number of payments over the life of the loan.
func (t LoanTerms) TotalPeriods() int {
	return t.TermYears * t.PaymentsPerYear
}

// AmortizationEntry is one row of an amortization schedule: the payment for
// a period split into principal and interest, plus the balance remaining
// after the payment.
type AmortizationEntry struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// AmortizationSchedule generates the full payment schedule for the given
// terms using the standard fixed-payment annuity formula. Entries are
// ordered by period (1-based), one per payment.
//
// Preconditions: principal > 0, rate >= 0, term > 0, payments per year > 0.
// Violations return an empty schedule rather than an error; the engine feeds
// displays where a flat/empty schedule beats a failure.
//
// Amounts are plain float64 and are not rounded to cents inside the loop;
// rounding is a presentation concern (see pkg/money).
func AmortizationSchedule(terms LoanTerms) []AmortizationEntry {
	if terms.Principal <= 0 || terms.AnnualRate < 0 || terms.TermYears <= 0 || terms.PaymentsPerYear <= 0 {
		return nil
	}

	n := terms.TotalPeriods()
	r := terms.AnnualRate / float64(terms.PaymentsPerYear)

	var payment float64
	if r == 0 {
		// Interest-free: equal principal installments.
		payment = terms.Principal / float64(n)
	} else {
		payment = terms.Principal * r / (1 - math.Pow(1+r, -float64(n)))
	}

	entries := make([]AmortizationEntry, 0, n)
	balance := terms.Principal
	for period := 1; period <= n; period++ {
		interest := balance * r
		principal := payment - interest
		balance -= principal
		if period == n {
			// Absorb floating-point drift on the final payment.
			balance = 0
		}
		entries = append(entries, AmortizationEntry{
			Period:    period,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return entries
}

// BalanceAt returns the outstanding balance after elapsedPeriods payments.
// The offset is clamped to [0, n]: zero returns the original principal,
// anything past the end returns the final balance.
func BalanceAt(schedule []AmortizationEntry, elapsedPeriods int) float64 {
	if len(schedule) == 0 {
		return 0
	}
	if elapsedPeriods <= 0 {
		return schedule[0].Balance + schedule[0].Principal
	}
	if elapsedPeriods >= len(schedule) {
		return schedule[len(schedule)-1].Balance
	}
	return schedule[elapsedPeriods-1].Balance
}

// TotalPrincipal sums the principal column of a schedule.
func TotalPrincipal(schedule []AmortizationEntry) float64 {
	var total float64
	for _, e := range schedule {
		total += e.Principal
	}
	return total
}

// TotalInterest sums the interest column of a schedule.
func TotalInterest(schedule []AmortizationEntry) float64 {
	var total float64
	for _, e := range schedule {
		total += e.Interest
	}
	return total
}

// StraightLineBalance is the fallback for liabilities without a usable
// amortization schedule: the balance declines linearly to zero over
// totalPeriods.
func StraightLineBalance(principal float64, totalPeriods, elapsedPeriods int) float64 {
	if principal <= 0 || totalPeriods <= 0 {
		return 0
	}
	if elapsedPeriods <= 0 {
		return principal
	}
	if elapsedPeriods >= totalPeriods {
		return 0
	}
	return principal * (1 - float64(elapsedPeriods)/float64(totalPeriods))
}
