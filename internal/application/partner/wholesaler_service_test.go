package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/partner"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Wholesaler, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Wholesaler), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Wholesaler, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Wholesaler), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, w *partner.Wholesaler) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_CreateWholesaler(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Wholesaler")).Return(nil)

		w, err := svc.CreateWholesaler(ctx, CreateWholesalerRequest{
			Name:         "Pacific Breaks Supply",
			ContactEmail: "orders@pacificbreaks.example",
		})
		require.NoError(t, err)
		assert.Equal(t, "Pacific Breaks Supply", w.Name)
		assert.Equal(t, "orders@pacificbreaks.example", w.ContactEmail)
		repo.AssertExpectations(t)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateWholesaler(ctx, CreateWholesalerRequest{Name: "   "})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_UpdateWholesaler(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	w, err := partner.NewWholesaler("Old Name")
	require.NoError(t, err)
	repo.On("FindByID", ctx, w.ID).Return(w, nil)
	repo.On("Save", ctx, w).Return(nil)

	newName := "New Name"
	notes := "net 30"
	got, err := svc.UpdateWholesaler(ctx, w.ID, UpdateWholesalerRequest{
		Name:  &newName,
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "net 30", got.Notes)
}

func TestService_ListWholesalers(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	w, err := partner.NewWholesaler("Vendor")
	require.NoError(t, err)
	filter := shared.DefaultFilter()
	repo.On("FindAll", ctx, filter).Return([]partner.Wholesaler{*w}, nil)
	repo.On("Count", ctx, filter).Return(int64(1), nil)

	page, err := svc.ListWholesalers(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Vendor", page.Items[0].Name)
}

func TestService_DeleteWholesaler(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)
	id := uuid.New()
	repo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, svc.DeleteWholesaler(ctx, id))
	repo.AssertExpectations(t)
}
