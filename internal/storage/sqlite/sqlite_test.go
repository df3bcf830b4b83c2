package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpancino/myAssetPlace-sub004/internal/calculator"
	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "wealth-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore) *models.User {
	t.Helper()

	user := models.NewUser("test@example.com", "Test User", "hashed-password")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store)

	t.Run("GetUserByEmail finds user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "test@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Errorf("got %+v, want user %s", got, user.ID)
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil for unknown email, got %+v", got)
		}
	})

	t.Run("GetUserByID finds user", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil || got.Email != user.Email {
			t.Errorf("got %+v, want email %s", got, user.Email)
		}
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		dup := models.NewUser("test@example.com", "Other", "hash")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("expected unique constraint failure for duplicate email")
		}
	})
}

func TestSQLiteStoreAssets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	t.Run("CreateAsset generates ID and timestamps", func(t *testing.T) {
		asset := &models.Asset{
			UserID:     user.ID,
			Name:       "Family home",
			Class:      models.ClassProperty,
			Value:      850000,
			GrowthRate: 0.04,
		}

		if err := store.CreateAsset(ctx, asset); err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}
		if asset.ID == "" {
			t.Error("Expected asset ID to be generated")
		}
		if asset.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetAsset retrieves complete asset", func(t *testing.T) {
		original := &models.Asset{
			UserID:      user.ID,
			Name:        "ETF portfolio",
			Class:       models.ClassShares,
			Value:       120000,
			GrowthRate:  0.07,
			IncomeYield: 0.03,
		}
		if err := store.CreateAsset(ctx, original); err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}

		retrieved, err := store.GetAsset(ctx, user.ID, original.ID)
		if err != nil {
			t.Fatalf("GetAsset failed: %v", err)
		}
		if retrieved.Name != original.Name || retrieved.Value != original.Value ||
			retrieved.IncomeYield != original.IncomeYield {
			t.Errorf("retrieved %+v, want %+v", retrieved, original)
		}
	})

	t.Run("GetAsset scoped to owner", func(t *testing.T) {
		asset := &models.Asset{UserID: user.ID, Name: "Cash", Class: models.ClassCash, Value: 5000}
		if err := store.CreateAsset(ctx, asset); err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}

		_, err := store.GetAsset(ctx, "some-other-user", asset.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for foreign user, got %v", err)
		}
	})

	t.Run("UpdateAsset rewrites fields", func(t *testing.T) {
		asset := &models.Asset{UserID: user.ID, Name: "Old name", Class: models.ClassOther, Value: 100}
		if err := store.CreateAsset(ctx, asset); err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}

		asset.Name = "New name"
		asset.Value = 200
		if err := store.UpdateAsset(ctx, asset); err != nil {
			t.Fatalf("UpdateAsset failed: %v", err)
		}

		retrieved, err := store.GetAsset(ctx, user.ID, asset.ID)
		if err != nil {
			t.Fatalf("GetAsset failed: %v", err)
		}
		if retrieved.Name != "New name" || retrieved.Value != 200 {
			t.Errorf("update not applied: %+v", retrieved)
		}
	})

	t.Run("UpdateAsset on missing asset returns ErrNotFound", func(t *testing.T) {
		missing := &models.Asset{ID: "missing", UserID: user.ID, Name: "x", Class: models.ClassOther}
		if err := store.UpdateAsset(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteAsset cascades to loan and expenses", func(t *testing.T) {
		asset := &models.Asset{UserID: user.ID, Name: "Rental", Class: models.ClassProperty, Value: 600000, Liability: false}
		if err := store.CreateAsset(ctx, asset); err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}
		loan := &models.Loan{
			AssetID: asset.ID, UserID: user.ID,
			Principal: 480000, AnnualRate: 0.055, TermYears: 30, PaymentsPerYear: 12,
		}
		if err := store.UpsertLoan(ctx, loan); err != nil {
			t.Fatalf("UpsertLoan failed: %v", err)
		}
		expense := &models.Expense{
			UserID: user.ID, AssetID: asset.ID,
			Category: "rates", Amount: 450, Frequency: calculator.FrequencyQuarterly,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteAsset(ctx, user.ID, asset.ID); err != nil {
			t.Fatalf("DeleteAsset failed: %v", err)
		}

		gotLoan, err := store.GetLoanByAsset(ctx, user.ID, asset.ID)
		if err != nil {
			t.Fatalf("GetLoanByAsset failed: %v", err)
		}
		if gotLoan != nil {
			t.Errorf("expected loan to cascade on asset delete, got %+v", gotLoan)
		}

		expenses, err := store.ListExpenses(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		for _, e := range expenses {
			if e.AssetID == asset.ID {
				t.Errorf("expected expenses to cascade on asset delete, found %+v", e)
			}
		}
	})
}

func TestSQLiteStoreLoans(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	asset := &models.Asset{
		UserID: user.ID, Name: "Mortgage", Class: models.ClassMortgage,
		Value: 500000, Liability: true,
	}
	if err := store.CreateAsset(ctx, asset); err != nil {
		t.Fatalf("CreateAsset failed: %v", err)
	}

	t.Run("UpsertLoan then GetLoanByAsset round-trips", func(t *testing.T) {
		loan := &models.Loan{
			AssetID: asset.ID, UserID: user.ID,
			Principal: 500000, AnnualRate: 0.06, TermYears: 30, PaymentsPerYear: 12,
		}
		if err := store.UpsertLoan(ctx, loan); err != nil {
			t.Fatalf("UpsertLoan failed: %v", err)
		}

		got, err := store.GetLoanByAsset(ctx, user.ID, asset.ID)
		if err != nil {
			t.Fatalf("GetLoanByAsset failed: %v", err)
		}
		if got == nil || got.Principal != 500000 || got.TermYears != 30 {
			t.Errorf("got %+v, want the inserted loan", got)
		}
	})

	t.Run("UpsertLoan replaces existing terms", func(t *testing.T) {
		refinanced := &models.Loan{
			AssetID: asset.ID, UserID: user.ID,
			Principal: 450000, AnnualRate: 0.052, TermYears: 25, PaymentsPerYear: 12,
		}
		if err := store.UpsertLoan(ctx, refinanced); err != nil {
			t.Fatalf("UpsertLoan failed: %v", err)
		}

		got, err := store.GetLoanByAsset(ctx, user.ID, asset.ID)
		if err != nil {
			t.Fatalf("GetLoanByAsset failed: %v", err)
		}
		if got.Principal != 450000 || got.TermYears != 25 {
			t.Errorf("got %+v, want refinanced terms", got)
		}
	})

	t.Run("DeleteLoan removes terms", func(t *testing.T) {
		if err := store.DeleteLoan(ctx, user.ID, asset.ID); err != nil {
			t.Fatalf("DeleteLoan failed: %v", err)
		}
		got, err := store.GetLoanByAsset(ctx, user.ID, asset.ID)
		if err != nil {
			t.Fatalf("GetLoanByAsset failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil after delete, got %+v", got)
		}
	})
}

func TestSQLiteStoreExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	t.Run("CreateExpense and ListExpenses round-trip", func(t *testing.T) {
		expense := &models.Expense{
			UserID: user.ID, Category: "groceries",
			Amount: 800, Frequency: calculator.FrequencyMonthly,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expenses, err := store.ListExpenses(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("got %d expenses, want 1", len(expenses))
		}
		got := expenses[0]
		if got.Category != "groceries" || got.Amount != 800 || got.Frequency != calculator.FrequencyMonthly {
			t.Errorf("got %+v, want the inserted expense", got)
		}
		if got.AssetID != "" {
			t.Errorf("user-level expense should have empty AssetID, got %q", got.AssetID)
		}
	})

	t.Run("DeleteExpense removes record", func(t *testing.T) {
		expenses, err := store.ListExpenses(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, user.ID, expenses[0].ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}

		remaining, err := store.ListExpenses(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("got %d expenses after delete, want 0", len(remaining))
		}
	})

	t.Run("DeleteExpense on missing record returns ErrNotFound", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, user.ID, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
