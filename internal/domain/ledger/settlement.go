package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// ErrSnapshotRequired is raised when a percent-payout settlement is
// requested for a show that has no financial snapshot. The show exists,
// so this is a state conflict rather than a missing resource.
var ErrSnapshotRequired = shared.NewDomainError("SNAPSHOT_REQUIRED", "Show has no financial snapshot to settle against")

// NewManualObligation creates an obligation whose amount was supplied
// directly.
func NewManualObligation(showID, wholesalerID uuid.UUID, amount valueobject.Money, description string, dueDate *time.Time) (*Obligation, error) {
	o := &Obligation{
		BaseEntity:        shared.NewBaseEntity(),
		SoftDeletable:     shared.NewSoftDeletable(),
		ShowID:            showID,
		WholesalerID:      wholesalerID,
		Amount:            amount,
		Description:       description,
		DueDate:           dueDate,
		Status:            ObligationStatusPending,
		CalculationMethod: CalculationMethodManual,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// NewPercentPayoutObligation computes an obligation as a basis-point
// share of the show's payout snapshot. The snapshot's payout is copied
// into the obligation as the base amount, so the result is a frozen
// record of the calculation: updating the snapshot afterwards does not
// change obligations already created from it.
func NewPercentPayoutObligation(showID, wholesalerID uuid.UUID, rate valueobject.Rate, snapshot *FinancialSnapshot, description string, dueDate *time.Time) (*Obligation, error) {
	if snapshot == nil || snapshot.ShowID != showID {
		return nil, ErrSnapshotRequired
	}

	base := snapshot.PayoutAfterFees
	amount := rate.ApplyTo(base)
	bps := rate.BasisPoints()

	o := &Obligation{
		BaseEntity:        shared.NewBaseEntity(),
		SoftDeletable:     shared.NewSoftDeletable(),
		ShowID:            showID,
		WholesalerID:      wholesalerID,
		Amount:            amount,
		Description:       description,
		DueDate:           dueDate,
		Status:            ObligationStatusPending,
		CalculationMethod: CalculationMethodPercentPayout,
		RateBps:           &bps,
		BaseAmount:        &base,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
