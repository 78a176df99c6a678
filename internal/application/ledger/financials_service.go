package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// FinancialsService records per-show financial snapshots
type FinancialsService struct {
	showRepo     ShowChecker
	snapshotRepo ledger.SnapshotRepository
}

// ShowChecker is the slice of the show repository the ledger needs:
// referential existence checks against non-deleted shows.
type ShowChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// WholesalerChecker is the slice of the wholesaler repository the ledger
// needs for referential checks.
type WholesalerChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// NewFinancialsService creates a new FinancialsService
func NewFinancialsService(showRepo ShowChecker, snapshotRepo ledger.SnapshotRepository) *FinancialsService {
	return &FinancialsService{
		showRepo:     showRepo,
		snapshotRepo: snapshotRepo,
	}
}

// UpsertFinancialsRequest represents a request to record show financials
type UpsertFinancialsRequest struct {
	ShowID          uuid.UUID
	PayoutAfterFees valueobject.Money
	GrossSales      *valueobject.Money
}

// UpsertFinancials records the payout/gross figures for a show. A second
// call replaces both amounts (last write wins) but keeps the original
// creation time. Fails not-found when the show is absent or deleted.
func (s *FinancialsService) UpsertFinancials(ctx context.Context, req UpsertFinancialsRequest) (*ledger.FinancialSnapshot, error) {
	exists, err := s.showRepo.Exists(ctx, req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("failed to check show: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("SHOW_NOT_FOUND", "Show not found")
	}

	snapshot, err := ledger.NewFinancialSnapshot(req.ShowID, req.PayoutAfterFees, req.GrossSales)
	if err != nil {
		return nil, err
	}

	saved, err := s.snapshotRepo.Upsert(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert financials: %w", err)
	}
	return saved, nil
}

// GetFinancials returns the snapshot for a show. Fails not-found when
// the show is absent or has no snapshot yet.
func (s *FinancialsService) GetFinancials(ctx context.Context, showID uuid.UUID) (*ledger.FinancialSnapshot, error) {
	exists, err := s.showRepo.Exists(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to check show: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("SHOW_NOT_FOUND", "Show not found")
	}
	return s.snapshotRepo.FindByShow(ctx, showID)
}
