package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpancino/myAssetPlace-sub004/internal/models"
)

// UpsertLoan creates or replaces the loan attached to an asset. An asset
// carries at most one loan, so the asset_id unique constraint drives the
// replace semantics.
func (s *SQLiteStore) UpsertLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		loan.ID = uuid.New().String()
	}
	if loan.CreatedAt == 0 {
		loan.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM loans WHERE asset_id = ? AND user_id = ?",
		loan.AssetID, loan.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear existing loan: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO loans (id, asset_id, user_id, principal, annual_rate, term_years, payments_per_year, start_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loan.ID, loan.AssetID, loan.UserID, loan.Principal, loan.AnnualRate,
		loan.TermYears, loan.PaymentsPerYear, loan.StartDate, loan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLoanByAsset retrieves the loan attached to an asset, or nil if none exists.
func (s *SQLiteStore) GetLoanByAsset(ctx context.Context, userID, assetID string) (*models.Loan, error) {
	loan := &models.Loan{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, asset_id, user_id, principal, annual_rate, term_years, payments_per_year, start_date, created_at
		 FROM loans WHERE asset_id = ? AND user_id = ?`,
		assetID, userID,
	).Scan(
		&loan.ID, &loan.AssetID, &loan.UserID, &loan.Principal, &loan.AnnualRate,
		&loan.TermYears, &loan.PaymentsPerYear, &loan.StartDate, &loan.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // No loan attached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return loan, nil
}

// DeleteLoan removes the loan attached to an asset.
func (s *SQLiteStore) DeleteLoan(ctx context.Context, userID, assetID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM loans WHERE asset_id = ? AND user_id = ?",
		assetID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}

	return nil
}
