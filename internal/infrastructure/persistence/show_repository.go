package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/show"
	"github.com/resale/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormShowRepository implements show.Repository using GORM
type GormShowRepository struct {
	db *gorm.DB
}

// NewGormShowRepository creates a new GormShowRepository
func NewGormShowRepository(db *gorm.DB) *GormShowRepository {
	return &GormShowRepository{db: db}
}

// FindByID finds a non-deleted show by its ID
func (r *GormShowRepository) FindByID(ctx context.Context, id uuid.UUID) (*show.Show, error) {
	var model models.ShowModel
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

// FindAll finds all non-deleted shows matching the filter
func (r *GormShowRepository) FindAll(ctx context.Context, filter show.Filter) ([]show.Show, error) {
	var showModels []models.ShowModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ShowModel{}), filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&showModels).Error; err != nil {
		return nil, err
	}

	shows := make([]show.Show, len(showModels))
	for i, model := range showModels {
		shows[i] = *model.ToDomain()
	}
	return shows, nil
}

// Count counts non-deleted shows matching the filter
func (r *GormShowRepository) Count(ctx context.Context, filter show.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutOrder(r.db.WithContext(ctx).Model(&models.ShowModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a show
func (r *GormShowRepository) Save(ctx context.Context, s *show.Show) error {
	model := models.ShowModelFromDomain(s)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft deletes a show by flipping its record status
func (r *GormShowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.ShowModel{}).
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

// Exists reports whether a non-deleted show exists
func (r *GormShowRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ShowModel{}).
		Where("id = ? AND record_status = ?", id, shared.RecordStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// showSortFields contains allowed sort fields for shows
var showSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"show_date":  true,
	"status":     true,
}

func (r *GormShowRepository) applyFilter(query *gorm.DB, filter show.Filter) *gorm.DB {
	query = r.applyFilterWithoutOrder(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, showSortFields, "show_date")
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormShowRepository) applyFilterWithoutOrder(query *gorm.DB, filter show.Filter) *gorm.DB {
	query = query.Where("record_status = ?", shared.RecordStatusActive)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", searchPattern, searchPattern)
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("show_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("show_date <= ?", *filter.ToDate)
	}
	return query
}
