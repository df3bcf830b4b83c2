package models

// Well-known asset classes. Class is stored as free text so admins can add
// classes without a schema change; these cover the built-in set.
const (
	ClassProperty = "property"
	ClassShares   = "shares"
	ClassCash     = "cash"
	ClassOptions  = "options"
	ClassMortgage = "mortgage"
	ClassLoan     = "loan"
	ClassOther    = "other"
)

// Asset represents a single holding or liability owned by a user.
// Liabilities carry their outstanding balance in Value as a positive number;
// the Liability flag controls which side of the net-worth ledger they land on.
type Asset struct {
	// ID is the unique identifier for the asset (UUID format).
	ID string

	// UserID is the owning user.
	UserID string

	// Name is the display name (e.g., "Family home", "ETF portfolio").
	Name string

	// Class is the asset class used for allocation breakdowns.
	Class string

	// Value is the current value, or the outstanding balance for liabilities.
	// Always positive.
	Value float64

	// GrowthRate is the expected annual growth rate as a decimal (0.05 = 5%).
	GrowthRate float64

	// IncomeYield is the annual income yield as a decimal (rent, dividends).
	// Zero for non-yielding assets and for liabilities.
	IncomeYield float64

	// Liability marks mortgages and loans.
	Liability bool

	// StartDate is the Unix timestamp from which the asset is held.
	// Assets acquired in the future contribute nothing to projections
	// until this date is reached. Zero means held now.
	StartDate int64

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}

// Loan holds fixed-payment loan terms attached to a liability asset.
// At most one loan per asset.
type Loan struct {
	// ID is the unique identifier for the loan (UUID format).
	ID string

	// AssetID is the liability this loan amortizes.
	AssetID string

	// UserID is the owning user.
	UserID string

	// Principal is the original loan amount.
	Principal float64

	// AnnualRate is the annual interest rate as a decimal (0.065 = 6.5%).
	AnnualRate float64

	// TermYears is the loan term in years.
	TermYears int

	// PaymentsPerYear is the payment frequency (12 = monthly).
	PaymentsPerYear int

	// StartDate is the Unix timestamp of the first payment period.
	StartDate int64

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}
