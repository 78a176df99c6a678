package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/partner"
	"github.com/resale/backend/internal/domain/shared"
)

// Service handles wholesaler lifecycle operations
type Service struct {
	repo partner.Repository
}

// NewService creates a new wholesaler Service
func NewService(repo partner.Repository) *Service {
	return &Service{repo: repo}
}

// CreateWholesalerRequest represents a request to create a wholesaler
type CreateWholesalerRequest struct {
	Name         string
	ContactEmail string
	ContactPhone string
	TaxID        string
	Notes        string
}

// CreateWholesaler creates a new wholesaler
func (s *Service) CreateWholesaler(ctx context.Context, req CreateWholesalerRequest) (*partner.Wholesaler, error) {
	w, err := partner.NewWholesaler(req.Name)
	if err != nil {
		return nil, err
	}
	w.ContactEmail = req.ContactEmail
	w.ContactPhone = req.ContactPhone
	w.TaxID = req.TaxID
	w.Notes = req.Notes

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save wholesaler: %w", err)
	}
	return w, nil
}

// GetWholesaler returns a wholesaler by ID
func (s *Service) GetWholesaler(ctx context.Context, id uuid.UUID) (*partner.Wholesaler, error) {
	return s.repo.FindByID(ctx, id)
}

// ListWholesalers returns wholesalers matching the filter with pagination
func (s *Service) ListWholesalers(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Wholesaler], error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.Wholesaler]{}, fmt.Errorf("failed to list wholesalers: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[partner.Wholesaler]{}, fmt.Errorf("failed to count wholesalers: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.Limit()), nil
}

// UpdateWholesalerRequest represents a request to update a wholesaler
type UpdateWholesalerRequest struct {
	Name         *string
	ContactEmail *string
	ContactPhone *string
	TaxID        *string
	Notes        *string
}

// UpdateWholesaler applies a partial update
func (s *Service) UpdateWholesaler(ctx context.Context, id uuid.UUID, req UpdateWholesalerRequest) (*partner.Wholesaler, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := w.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactEmail != nil {
		w.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		w.ContactPhone = *req.ContactPhone
	}
	if req.TaxID != nil {
		w.TaxID = *req.TaxID
	}
	if req.Notes != nil {
		w.Notes = *req.Notes
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save wholesaler: %w", err)
	}
	return w, nil
}

// DeleteWholesaler soft deletes a wholesaler
func (s *Service) DeleteWholesaler(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
