package show

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
)

// Filter defines filtering options for show queries
type Filter struct {
	shared.Filter
	Platform *Platform  // Filter by platform
	Status   *Status    // Filter by status
	FromDate *time.Time // Filter by show date range start
	ToDate   *time.Time // Filter by show date range end
}

// Repository defines the interface for show persistence
type Repository interface {
	// FindByID finds a non-deleted show by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Show, error)

	// FindAll finds all non-deleted shows with filtering
	FindAll(ctx context.Context, filter Filter) ([]Show, error)

	// Count counts non-deleted shows matching the filter
	Count(ctx context.Context, filter Filter) (int64, error)

	// Save creates or updates a show
	Save(ctx context.Context, s *Show) error

	// Delete soft deletes a show
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a non-deleted show exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
