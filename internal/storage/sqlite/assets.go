package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

// CreateAsset persists a new asset to the database.
func (s *SQLiteStore) CreateAsset(ctx context.Context, asset *models.Asset) error {
	// Generate ID and timestamps if not set
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if asset.CreatedAt == 0 {
		asset.CreatedAt = now
	}
	if asset.UpdatedAt == 0 {
		asset.UpdatedAt = now
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assets (id, user_id, name, class, value, growth_rate, income_yield, liability, start_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.ID, asset.UserID, asset.Name, asset.Class, asset.Value,
		asset.GrowthRate, asset.IncomeYield, boolToInt(asset.Liability),
		asset.StartDate, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// GetAsset retrieves an asset by ID, scoped to the owning user.
func (s *SQLiteStore) GetAsset(ctx context.Context, userID, assetID string) (*models.Asset, error) {
	asset := &models.Asset{}
	var liability int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, class, value, growth_rate, income_yield, liability, start_date, created_at, updated_at
		 FROM assets WHERE id = ? AND user_id = ?`,
		assetID, userID,
	).Scan(
		&asset.ID, &asset.UserID, &asset.Name, &asset.Class, &asset.Value,
		&asset.GrowthRate, &asset.IncomeYield, &liability,
		&asset.StartDate, &asset.CreatedAt, &asset.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	asset.Liability = liability != 0

	return asset, nil
}

// ListAssets returns every asset owned by the user, oldest first.
func (s *SQLiteStore) ListAssets(ctx context.Context, userID string) ([]models.Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, class, value, growth_rate, income_yield, liability, start_date, created_at, updated_at
		 FROM assets WHERE user_id = ? ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		var liability int
		if err := rows.Scan(
			&asset.ID, &asset.UserID, &asset.Name, &asset.Class, &asset.Value,
			&asset.GrowthRate, &asset.IncomeYield, &liability,
			&asset.StartDate, &asset.CreatedAt, &asset.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		asset.Liability = liability != 0
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}

	return assets, nil
}

// UpdateAsset rewrites an existing asset.
func (s *SQLiteStore) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	asset.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE assets
		 SET name = ?, class = ?, value = ?, growth_rate = ?, income_yield = ?, liability = ?, start_date = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		asset.Name, asset.Class, asset.Value, asset.GrowthRate, asset.IncomeYield,
		boolToInt(asset.Liability), asset.StartDate, asset.UpdatedAt,
		asset.ID, asset.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteAsset removes an asset; loans and expenses cascade via foreign keys.
func (s *SQLiteStore) DeleteAsset(ctx context.Context, userID, assetID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM assets WHERE id = ? AND user_id = ?",
		assetID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
