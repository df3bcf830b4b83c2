// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mpancino/myAssetPlace-sub004/internal/models"
)

// ErrNotFound is returned when a requested record does not exist or belongs
// to a different user.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or (nil, nil) if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID, or (nil, nil) if absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateAsset persists a new asset. The ID field is populated by the
	// store when empty.
	CreateAsset(ctx context.Context, asset *models.Asset) error

	// GetAsset retrieves an asset owned by the given user.
	// Returns ErrNotFound if it does not exist for the user.
	GetAsset(ctx context.Context, userID, assetID string) (*models.Asset, error)

	// ListAssets returns all assets owned by the user, oldest first.
	ListAssets(ctx context.Context, userID string) ([]models.Asset, error)

	// UpdateAsset rewrites an existing asset.
	UpdateAsset(ctx context.Context, asset *models.Asset) error

	// DeleteAsset removes an asset along with its loan and attached expenses.
	DeleteAsset(ctx context.Context, userID, assetID string) error

	// UpsertLoan creates or replaces the loan attached to an asset.
	UpsertLoan(ctx context.Context, loan *models.Loan) error

	// GetLoanByAsset retrieves the loan for an asset, or (nil, nil) if none.
	GetLoanByAsset(ctx context.Context, userID, assetID string) (*models.Loan, error)

	// DeleteLoan removes the loan attached to an asset.
	DeleteLoan(ctx context.Context, userID, assetID string) error

	// CreateExpense persists a new expense.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns all expenses owned by the user, oldest first.
	ListExpenses(ctx context.Context, userID string) ([]models.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}
