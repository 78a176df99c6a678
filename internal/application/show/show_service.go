package show

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/show"
)

// Service handles show lifecycle operations
type Service struct {
	repo show.Repository
}

// NewService creates a new show Service
func NewService(repo show.Repository) *Service {
	return &Service{repo: repo}
}

// CreateShowRequest represents a request to create a show
type CreateShowRequest struct {
	Name              string
	ShowDate          time.Time
	Platform          show.Platform
	Location          string
	ExternalReference string
	Notes             string
}

// CreateShow creates a new show
func (s *Service) CreateShow(ctx context.Context, req CreateShowRequest) (*show.Show, error) {
	sh, err := show.NewShow(req.Name, req.ShowDate, req.Platform)
	if err != nil {
		return nil, err
	}
	sh.Location = req.Location
	sh.ExternalReference = req.ExternalReference
	sh.Notes = req.Notes

	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, fmt.Errorf("failed to save show: %w", err)
	}
	return sh, nil
}

// GetShow returns a show by ID
func (s *Service) GetShow(ctx context.Context, id uuid.UUID) (*show.Show, error) {
	return s.repo.FindByID(ctx, id)
}

// ListShows returns shows matching the filter with pagination
func (s *Service) ListShows(ctx context.Context, filter show.Filter) (shared.Paginated[show.Show], error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[show.Show]{}, fmt.Errorf("failed to list shows: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[show.Show]{}, fmt.Errorf("failed to count shows: %w", err)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.Limit()), nil
}

// DeleteShow soft deletes a show
func (s *Service) DeleteShow(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// CompleteShow marks a show as completed
func (s *Service) CompleteShow(ctx context.Context, id uuid.UUID) (*show.Show, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sh.Complete(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, fmt.Errorf("failed to save show: %w", err)
	}
	return sh, nil
}

// CancelShow marks a show as cancelled
func (s *Service) CancelShow(ctx context.Context, id uuid.UUID) (*show.Show, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sh.Cancel(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, fmt.Errorf("failed to save show: %w", err)
	}
	return sh, nil
}
