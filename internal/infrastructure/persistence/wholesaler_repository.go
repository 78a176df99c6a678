package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/partner"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWholesalerRepository implements partner.Repository using GORM
type GormWholesalerRepository struct {
	db *gorm.DB
}

// NewGormWholesalerRepository creates a new GormWholesalerRepository
func NewGormWholesalerRepository(db *gorm.DB) *GormWholesalerRepository {
	return &GormWholesalerRepository{db: db}
}

// FindByID finds a non-deleted wholesaler by its ID
func (r *GormWholesalerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Wholesaler, error) {
	var model models.WholesalerModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND record_status = ?", id, shared.RecordStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all non-deleted wholesalers matching the filter
func (r *GormWholesalerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Wholesaler, error) {
	var wholesalerModels []models.WholesalerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.WholesalerModel{}), filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&wholesalerModels).Error; err != nil {
		return nil, err
	}

	wholesalers := make([]partner.Wholesaler, len(wholesalerModels))
	for i, model := range wholesalerModels {
		wholesalers[i] = *model.ToDomain()
	}
	return wholesalers, nil
}

// Count counts non-deleted wholesalers matching the filter
func (r *GormWholesalerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.WholesalerModel{}).
		Where("record_status = ?", shared.RecordStatusActive)
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR contact_email ILIKE ?", searchPattern, searchPattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a wholesaler
func (r *GormWholesalerRepository) Save(ctx context.Context, w *partner.Wholesaler) error {
	model := models.WholesalerModelFromDomain(w)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a wholesaler by flipping its record status
func (r *GormWholesalerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.WholesalerModel{}).
		Where("id = ? AND record_status = ?", id, shared.RecordStatusActive).
		Updates(map[string]any{
			"record_status": shared.RecordStatusDeleted,
			"deleted_at":    now,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Exists reports whether a non-deleted wholesaler exists
func (r *GormWholesalerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.WholesalerModel{}).
		Where("id = ? AND record_status = ?", id, shared.RecordStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// wholesalerSortFields contains allowed sort fields for wholesalers
var wholesalerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

func (r *GormWholesalerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = query.Where("record_status = ?", shared.RecordStatusActive)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR contact_email ILIKE ?", searchPattern, searchPattern)
	}

	orderBy := ValidateSortField(filter.OrderBy, wholesalerSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if filter.OrderBy == "" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}
