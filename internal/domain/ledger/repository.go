package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// SnapshotRepository persists per-show financial snapshots
type SnapshotRepository interface {
	// Upsert inserts or replaces the snapshot for a show in one atomic
	// statement, preserving the original creation time on replace
	Upsert(ctx context.Context, snapshot *FinancialSnapshot) (*FinancialSnapshot, error)

	// FindByShow returns the snapshot for a show
	FindByShow(ctx context.Context, showID uuid.UUID) (*FinancialSnapshot, error)
}

// PercentSettlementRequest carries the parameters of an atomic
// read-snapshot, compute, insert settlement.
type PercentSettlementRequest struct {
	ShowID       uuid.UUID
	WholesalerID uuid.UUID
	Rate         valueobject.Rate
	Description  string
	DueDate      *time.Time
}

// ObligationFilter defines filtering options for obligation queries
type ObligationFilter struct {
	shared.Filter
	ShowID       *uuid.UUID
	WholesalerID *uuid.UUID
	Status       *ObligationStatus
	Method       *CalculationMethod
}

// ObligationRepository persists owed line items
type ObligationRepository interface {
	// Create inserts a fully built obligation. The referenced show and
	// wholesaler must exist and not be soft-deleted.
	Create(ctx context.Context, o *Obligation) error

	// CreatePercentSettlement reads the show's snapshot, computes the
	// obligation and inserts it as one atomic unit: no other write can
	// act on an intermediate state, and a concurrent snapshot update
	// cannot slip between the read and the insert.
	// Returns ErrSnapshotRequired when the show has no snapshot.
	CreatePercentSettlement(ctx context.Context, req PercentSettlementRequest) (*Obligation, error)

	// FindByID finds a non-deleted obligation by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Obligation, error)

	// FindAll finds non-deleted obligations with filtering
	FindAll(ctx context.Context, filter ObligationFilter) ([]Obligation, error)

	// FindByWholesaler finds all non-deleted obligations for a wholesaler
	FindByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]Obligation, error)

	// ListActive returns every non-deleted obligation, for ledger
	// aggregation
	ListActive(ctx context.Context) ([]Obligation, error)

	// Count counts non-deleted obligations matching the filter
	Count(ctx context.Context, filter ObligationFilter) (int64, error)

	// UpdateStatus sets the status of an obligation
	UpdateStatus(ctx context.Context, id uuid.UUID, status ObligationStatus) error

	// Delete soft deletes an obligation
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentFilter defines filtering options for payment queries
type PaymentFilter struct {
	shared.Filter
	WholesalerID *uuid.UUID
	ShowID       *uuid.UUID
	FromDate     *time.Time
	ToDate       *time.Time
}

// PaymentRepository persists wholesaler payments
type PaymentRepository interface {
	// Create inserts a payment. The referenced wholesaler must exist and
	// not be soft-deleted.
	Create(ctx context.Context, p *Payment) error

	// FindByID finds a non-deleted payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindAll finds non-deleted payments with filtering
	FindAll(ctx context.Context, filter PaymentFilter) ([]Payment, error)

	// FindByWholesaler finds all non-deleted payments for a wholesaler
	FindByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]Payment, error)

	// ListActive returns every non-deleted payment, for ledger
	// aggregation
	ListActive(ctx context.Context) ([]Payment, error)

	// Count counts non-deleted payments matching the filter
	Count(ctx context.Context, filter PaymentFilter) (int64, error)

	// Delete soft deletes a payment
	Delete(ctx context.Context, id uuid.UUID) error
}
