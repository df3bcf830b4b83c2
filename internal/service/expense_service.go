package service

import (
	"context"
	"fmt"
	"math"

	"github.com/mpancino/myAssetPlace-sub004/internal/calculator"
	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

// ExpenseService provides validated CRUD over recurring expenses.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Create persists a new expense for the user. Expenses attached to an asset
// must reference one the user owns.
func (s *ExpenseService) Create(ctx context.Context, userID string, expense *models.Expense) error {
	if expense.Category == "" {
		return fmt.Errorf("%w: expense category is required", ErrInvalidInput)
	}
	if expense.Amount <= 0 || math.IsNaN(expense.Amount) || math.IsInf(expense.Amount, 0) {
		return fmt.Errorf("%w: expense amount must be a positive number", ErrInvalidInput)
	}
	if _, err := calculator.ParseFrequency(string(expense.Frequency)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if expense.AssetID != "" {
		if _, err := s.store.GetAsset(ctx, userID, expense.AssetID); err != nil {
			return err
		}
	}

	expense.UserID = userID
	return s.store.CreateExpense(ctx, expense)
}

// List returns all expenses owned by the user.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx, userID)
}

// Delete removes an expense.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID string) error {
	return s.store.DeleteExpense(ctx, userID, expenseID)
}
