package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// FinancialSnapshot holds the recorded payout/gross figures for one show.
// There is at most one snapshot per show; re-recording replaces both
// amounts but keeps the original creation time. Snapshots are never
// deleted.
type FinancialSnapshot struct {
	ShowID          uuid.UUID          `json:"show_id"`
	PayoutAfterFees valueobject.Money  `json:"payout_after_fees_amount"`
	GrossSales      *valueobject.Money `json:"gross_sales_amount,omitempty"`
	Currency        valueobject.Currency `json:"currency"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewFinancialSnapshot creates a snapshot for a show. Payout is required
// and must be non-negative; gross is optional and must be non-negative
// when present.
func NewFinancialSnapshot(showID uuid.UUID, payout valueobject.Money, gross *valueobject.Money) (*FinancialSnapshot, error) {
	if showID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOW_ID", "Show ID cannot be empty")
	}
	if payout.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PAYOUT", "Payout after fees cannot be negative")
	}
	if payout.Currency() != valueobject.DefaultCurrency {
		return nil, shared.NewDomainError("UNSUPPORTED_CURRENCY", "Only USD amounts are supported")
	}
	if gross != nil && gross.IsNegative() {
		return nil, shared.NewDomainError("INVALID_GROSS", "Gross sales cannot be negative")
	}
	if gross != nil && gross.Currency() != payout.Currency() {
		return nil, shared.NewDomainError("CURRENCY_MISMATCH", "Gross and payout must use the same currency")
	}

	now := time.Now()
	return &FinancialSnapshot{
		ShowID:          showID,
		PayoutAfterFees: payout,
		GrossSales:      gross,
		Currency:        payout.Currency(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Update replaces both amounts, last write wins. The creation time is
// untouched.
func (s *FinancialSnapshot) Update(payout valueobject.Money, gross *valueobject.Money) error {
	if payout.IsNegative() {
		return shared.NewDomainError("INVALID_PAYOUT", "Payout after fees cannot be negative")
	}
	if payout.Currency() != valueobject.DefaultCurrency {
		return shared.NewDomainError("UNSUPPORTED_CURRENCY", "Only USD amounts are supported")
	}
	if gross != nil && gross.IsNegative() {
		return shared.NewDomainError("INVALID_GROSS", "Gross sales cannot be negative")
	}
	if gross != nil && gross.Currency() != payout.Currency() {
		return shared.NewDomainError("CURRENCY_MISMATCH", "Gross and payout must use the same currency")
	}
	s.PayoutAfterFees = payout
	s.GrossSales = gross
	s.Currency = payout.Currency()
	s.UpdatedAt = time.Now()
	return nil
}
