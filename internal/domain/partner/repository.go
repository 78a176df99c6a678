package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
)

// Repository defines the interface for wholesaler persistence
type Repository interface {
	// FindByID finds a non-deleted wholesaler by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Wholesaler, error)

	// FindAll finds all non-deleted wholesalers with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Wholesaler, error)

	// Count counts non-deleted wholesalers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a wholesaler
	Save(ctx context.Context, w *Wholesaler) error

	// Delete soft deletes a wholesaler
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a non-deleted wholesaler exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
