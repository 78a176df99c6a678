package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SettlementService creates owed line items, either manually priced or
// computed as a share of a show's payout snapshot.
type SettlementService struct {
	showRepo       ShowChecker
	wholesalerRepo WholesalerChecker
	obligationRepo ledger.ObligationRepository
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(showRepo ShowChecker, wholesalerRepo WholesalerChecker, obligationRepo ledger.ObligationRepository) *SettlementService {
	return &SettlementService{
		showRepo:       showRepo,
		wholesalerRepo: wholesalerRepo,
		obligationRepo: obligationRepo,
	}
}

// CreateSettlementRequest represents a request to settle a show with a
// wholesaler. Exactly one of RatePercent (PERCENT_PAYOUT) or Amount
// (MANUAL) must be supplied, matching Method.
type CreateSettlementRequest struct {
	ShowID       uuid.UUID
	WholesalerID uuid.UUID
	Method       ledger.CalculationMethod
	RatePercent  *decimal.Decimal
	Amount       *valueobject.Money
	Description  string
	DueDate      *time.Time
}

// CreateSettlement validates references and dispatches on the
// calculation method. The percent path is delegated to the repository's
// atomic read-snapshot-and-insert so no other obligation can be created
// against a stale snapshot value.
func (s *SettlementService) CreateSettlement(ctx context.Context, req CreateSettlementRequest) (*ledger.Obligation, error) {
	if err := s.checkReferences(ctx, req.ShowID, req.WholesalerID); err != nil {
		return nil, err
	}

	switch req.Method {
	case ledger.CalculationMethodManual:
		if req.Amount == nil {
			return nil, shared.NewDomainError("VALIDATION", "Manual settlement requires an amount")
		}
		if req.RatePercent != nil {
			return nil, shared.NewDomainError("VALIDATION", "Manual settlement cannot carry a rate")
		}
		obligation, err := ledger.NewManualObligation(req.ShowID, req.WholesalerID, *req.Amount, req.Description, req.DueDate)
		if err != nil {
			return nil, err
		}
		if err := s.obligationRepo.Create(ctx, obligation); err != nil {
			return nil, fmt.Errorf("failed to create obligation: %w", err)
		}
		return obligation, nil

	case ledger.CalculationMethodPercentPayout:
		if req.RatePercent == nil {
			return nil, shared.NewDomainError("VALIDATION", "Percent settlement requires a rate")
		}
		if req.Amount != nil {
			return nil, shared.NewDomainError("VALIDATION", "Percent settlement cannot carry an explicit amount")
		}
		rate, err := valueobject.NewRateFromPercent(*req.RatePercent)
		if err != nil {
			return nil, shared.NewDomainError("VALIDATION", err.Error())
		}
		obligation, err := s.obligationRepo.CreatePercentSettlement(ctx, ledger.PercentSettlementRequest{
			ShowID:       req.ShowID,
			WholesalerID: req.WholesalerID,
			Rate:         rate,
			Description:  req.Description,
			DueDate:      req.DueDate,
		})
		if err != nil {
			return nil, err
		}
		return obligation, nil

	default:
		return nil, shared.NewDomainError("VALIDATION", "Calculation method is not valid")
	}
}

// CreateObligationRequest represents the direct, non-computed path to an
// owed line item.
type CreateObligationRequest struct {
	ShowID       uuid.UUID
	WholesalerID uuid.UUID
	Amount       valueobject.Money
	Description  string
	DueDate      *time.Time
}

// CreateObligation records a manually priced owed line item
func (s *SettlementService) CreateObligation(ctx context.Context, req CreateObligationRequest) (*ledger.Obligation, error) {
	if err := s.checkReferences(ctx, req.ShowID, req.WholesalerID); err != nil {
		return nil, err
	}
	obligation, err := ledger.NewManualObligation(req.ShowID, req.WholesalerID, req.Amount, req.Description, req.DueDate)
	if err != nil {
		return nil, err
	}
	if err := s.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}
	return obligation, nil
}

// GetObligation returns an obligation by ID
func (s *SettlementService) GetObligation(ctx context.Context, id uuid.UUID) (*ledger.Obligation, error) {
	return s.obligationRepo.FindByID(ctx, id)
}

// ListObligations returns obligations matching the filter with pagination
func (s *SettlementService) ListObligations(ctx context.Context, filter ledger.ObligationFilter) (shared.Paginated[ledger.Obligation], error) {
	items, err := s.obligationRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ledger.Obligation]{}, fmt.Errorf("failed to list obligations: %w", err)
	}
	total, err := s.obligationRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[ledger.Obligation]{}, fmt.Errorf("failed to count obligations: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.Limit()), nil
}

// UpdateObligationStatus sets the reporting status of an obligation
func (s *SettlementService) UpdateObligationStatus(ctx context.Context, id uuid.UUID, status ledger.ObligationStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("VALIDATION", "Obligation status is not valid")
	}
	return s.obligationRepo.UpdateStatus(ctx, id, status)
}

// DeleteObligation soft deletes an obligation
func (s *SettlementService) DeleteObligation(ctx context.Context, id uuid.UUID) error {
	return s.obligationRepo.Delete(ctx, id)
}

func (s *SettlementService) checkReferences(ctx context.Context, showID, wholesalerID uuid.UUID) error {
	exists, err := s.showRepo.Exists(ctx, showID)
	if err != nil {
		return fmt.Errorf("failed to check show: %w", err)
	}
	if !exists {
		return shared.NewDomainError("SHOW_NOT_FOUND", "Show not found")
	}
	exists, err = s.wholesalerRepo.Exists(ctx, wholesalerID)
	if err != nil {
		return fmt.Errorf("failed to check wholesaler: %w", err)
	}
	if !exists {
		return shared.NewDomainError("WHOLESALER_NOT_FOUND", "Wholesaler not found")
	}
	return nil
}
