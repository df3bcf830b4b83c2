package service

import (
	"context"
	"fmt"
	"math"

	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

// AssetService provides validated CRUD over a user's assets and their
// attached loans.
type AssetService struct {
	store storage.Store
}

// NewAssetService creates a new AssetService with the given storage backend.
func NewAssetService(store storage.Store) *AssetService {
	return &AssetService{store: store}
}

// validateAsset checks the fields a client can set.
func validateAsset(asset *models.Asset) error {
	if asset.Name == "" {
		return fmt.Errorf("%w: asset name is required", ErrInvalidInput)
	}
	if asset.Class == "" {
		return fmt.Errorf("%w: asset class is required", ErrInvalidInput)
	}
	if asset.Value < 0 || math.IsNaN(asset.Value) || math.IsInf(asset.Value, 0) {
		return fmt.Errorf("%w: asset value must be a non-negative number", ErrInvalidInput)
	}
	return nil
}

// Create persists a new asset for the user.
func (s *AssetService) Create(ctx context.Context, userID string, asset *models.Asset) error {
	if err := validateAsset(asset); err != nil {
		return err
	}
	asset.UserID = userID
	return s.store.CreateAsset(ctx, asset)
}

// Get retrieves one asset owned by the user.
func (s *AssetService) Get(ctx context.Context, userID, assetID string) (*models.Asset, error) {
	return s.store.GetAsset(ctx, userID, assetID)
}

// List returns all assets owned by the user.
func (s *AssetService) List(ctx context.Context, userID string) ([]models.Asset, error) {
	return s.store.ListAssets(ctx, userID)
}

// Update rewrites an existing asset and returns the persisted row, so
// callers see the stored timestamps rather than echoes of their input.
func (s *AssetService) Update(ctx context.Context, userID string, asset *models.Asset) (*models.Asset, error) {
	if err := validateAsset(asset); err != nil {
		return nil, err
	}
	asset.UserID = userID
	if err := s.store.UpdateAsset(ctx, asset); err != nil {
		return nil, err
	}
	return s.store.GetAsset(ctx, userID, asset.ID)
}

// Delete removes an asset along with its loan and attached expenses.
func (s *AssetService) Delete(ctx context.Context, userID, assetID string) error {
	return s.store.DeleteAsset(ctx, userID, assetID)
}

// AttachLoan creates or replaces the loan terms on a liability asset.
func (s *AssetService) AttachLoan(ctx context.Context, userID string, loan *models.Loan) error {
	if loan.Principal <= 0 {
		return fmt.Errorf("%w: loan principal must be positive", ErrInvalidInput)
	}
	if loan.AnnualRate < 0 {
		return fmt.Errorf("%w: loan rate must be non-negative", ErrInvalidInput)
	}
	if loan.TermYears <= 0 {
		return fmt.Errorf("%w: loan term must be positive", ErrInvalidInput)
	}
	if loan.PaymentsPerYear <= 0 {
		loan.PaymentsPerYear = 12
	}

	// The asset must exist and belong to the user.
	if _, err := s.store.GetAsset(ctx, userID, loan.AssetID); err != nil {
		return err
	}

	loan.UserID = userID
	return s.store.UpsertLoan(ctx, loan)
}

// DetachLoan removes the loan terms from an asset. The asset keeps its
// value; projections fall back to straight-line amortization for it.
func (s *AssetService) DetachLoan(ctx context.Context, userID, assetID string) error {
	if _, err := s.store.GetAsset(ctx, userID, assetID); err != nil {
		return err
	}
	return s.store.DeleteLoan(ctx, userID, assetID)
}
