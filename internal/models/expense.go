package models

import "github.com/mpancino/myAssetPlace-sub004/internal/calculator"

// Expense represents a recurring outflow: a holding cost attached to an
// asset (rates, insurance) or a household expense attached directly to the
// user. Exactly one of the two scopes applies.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// UserID is the owning user.
	UserID string

	// AssetID links the expense to an asset.
	// Empty for user-level expenses.
	AssetID string

	// Category is the expense category (e.g., "insurance", "rates").
	Category string

	// Amount is the cost per occurrence, always positive.
	Amount float64

	// Frequency is the recurrence cadence: monthly, quarterly, or annually.
	Frequency calculator.Frequency

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}

// AnnualAmount is the expense normalized to a yearly total.
func (e Expense) AnnualAmount() float64 {
	return e.Amount * e.Frequency.AnnualMultiplier()
}
