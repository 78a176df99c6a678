package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// PaymentService records payments made to wholesalers
type PaymentService struct {
	wholesalerRepo WholesalerChecker
	showRepo       ShowChecker
	paymentRepo    ledger.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(wholesalerRepo WholesalerChecker, showRepo ShowChecker, paymentRepo ledger.PaymentRepository) *PaymentService {
	return &PaymentService{
		wholesalerRepo: wholesalerRepo,
		showRepo:       showRepo,
		paymentRepo:    paymentRepo,
	}
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	WholesalerID uuid.UUID
	ShowID       *uuid.UUID
	Amount       valueobject.Money
	PaymentDate  time.Time
	Method       ledger.PaymentMethod
	Reference    string
	Notes        string
}

// CreatePayment records a payment to a wholesaler. Payments are not
// allocated against specific obligations; they feed the coarse-grained
// per-wholesaler ledger.
func (s *PaymentService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*ledger.Payment, error) {
	exists, err := s.wholesalerRepo.Exists(ctx, req.WholesalerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check wholesaler: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("WHOLESALER_NOT_FOUND", "Wholesaler not found")
	}
	if req.ShowID != nil {
		exists, err := s.showRepo.Exists(ctx, *req.ShowID)
		if err != nil {
			return nil, fmt.Errorf("failed to check show: %w", err)
		}
		if !exists {
			return nil, shared.NewDomainError("SHOW_NOT_FOUND", "Show not found")
		}
	}

	payment, err := ledger.NewPayment(req.WholesalerID, req.Amount, req.PaymentDate, req.Method)
	if err != nil {
		return nil, err
	}
	if req.ShowID != nil {
		payment.WithShow(*req.ShowID)
	}
	if req.Reference != "" {
		payment.WithReference(req.Reference)
	}
	if req.Notes != "" {
		payment.WithNotes(req.Notes)
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

// GetPayment returns a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListPayments returns payments matching the filter with pagination
func (s *PaymentService) ListPayments(ctx context.Context, filter ledger.PaymentFilter) (shared.Paginated[ledger.Payment], error) {
	items, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[ledger.Payment]{}, fmt.Errorf("failed to list payments: %w", err)
	}
	total, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[ledger.Payment]{}, fmt.Errorf("failed to count payments: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.Limit()), nil
}

// DeletePayment soft deletes a payment
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.paymentRepo.Delete(ctx, id)
}
