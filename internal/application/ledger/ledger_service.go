package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared"
)

// LedgerService computes derived wholesaler balances and statements.
// It is pure read-side: nothing is cached and nothing is mutated;
// every call recomputes from the store's current rows.
type LedgerService struct {
	wholesalerRepo WholesalerChecker
	obligationRepo ledger.ObligationRepository
	paymentRepo    ledger.PaymentRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(wholesalerRepo WholesalerChecker, obligationRepo ledger.ObligationRepository, paymentRepo ledger.PaymentRepository) *LedgerService {
	return &LedgerService{
		wholesalerRepo: wholesalerRepo,
		obligationRepo: obligationRepo,
		paymentRepo:    paymentRepo,
	}
}

// Balances returns the derived position of every wholesaler with ledger
// activity: owed total, paid total, balance owed and last payment date.
func (s *LedgerService) Balances(ctx context.Context) ([]ledger.Balance, error) {
	obligations, err := s.obligationRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}
	payments, err := s.paymentRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return ledger.ComputeBalances(obligations, payments), nil
}

// Statement returns the chronological running-balance view for one
// wholesaler. Fails not-found when the wholesaler is absent or deleted.
func (s *LedgerService) Statement(ctx context.Context, wholesalerID uuid.UUID) ([]ledger.StatementEntry, error) {
	exists, err := s.wholesalerRepo.Exists(ctx, wholesalerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check wholesaler: %w", err)
	}
	if !exists {
		return nil, shared.NewDomainError("WHOLESALER_NOT_FOUND", "Wholesaler not found")
	}

	obligations, err := s.obligationRepo.FindByWholesaler(ctx, wholesalerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}
	payments, err := s.paymentRepo.FindByWholesaler(ctx, wholesalerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return ledger.BuildStatement(obligations, payments), nil
}
