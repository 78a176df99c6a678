package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock repositories shared by the ledger application tests
// =============================================================================

type MockShowChecker struct {
	mock.Mock
}

func (m *MockShowChecker) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockWholesalerChecker struct {
	mock.Mock
}

func (m *MockWholesalerChecker) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, snapshot *ledger.FinancialSnapshot) (*ledger.FinancialSnapshot, error) {
	args := m.Called(ctx, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.FinancialSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindByShow(ctx context.Context, showID uuid.UUID) (*ledger.FinancialSnapshot, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.FinancialSnapshot), args.Error(1)
}

type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) Create(ctx context.Context, o *ledger.Obligation) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockObligationRepository) CreatePercentSettlement(ctx context.Context, req ledger.PercentSettlementRequest) (*ledger.Obligation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Obligation), args.Error(1)
}

func (m *MockObligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Obligation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Obligation), args.Error(1)
}

func (m *MockObligationRepository) FindAll(ctx context.Context, filter ledger.ObligationFilter) ([]ledger.Obligation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Obligation), args.Error(1)
}

func (m *MockObligationRepository) FindByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]ledger.Obligation, error) {
	args := m.Called(ctx, wholesalerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Obligation), args.Error(1)
}

func (m *MockObligationRepository) ListActive(ctx context.Context) ([]ledger.Obligation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Obligation), args.Error(1)
}

func (m *MockObligationRepository) Count(ctx context.Context, filter ledger.ObligationFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockObligationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.ObligationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockObligationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *ledger.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter ledger.PaymentFilter) ([]ledger.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]ledger.Payment, error) {
	args := m.Called(ctx, wholesalerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListActive(ctx context.Context) ([]ledger.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter ledger.PaymentFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
