package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormObligationRepository implements ledger.ObligationRepository using GORM
type GormObligationRepository struct {
	db *gorm.DB
}

// NewGormObligationRepository creates a new GormObligationRepository
func NewGormObligationRepository(db *gorm.DB) *GormObligationRepository {
	return &GormObligationRepository{db: db}
}

// Create inserts a fully built obligation
func (r *GormObligationRepository) Create(ctx context.Context, o *ledger.Obligation) error {
	model := models.ObligationModelFromDomain(o)
	return r.db.WithContext(ctx).Create(model).Error
}

// CreatePercentSettlement reads the show's snapshot, computes the
// obligation and inserts it in one transaction. The snapshot row is
// locked for the duration so a concurrent snapshot update cannot slip
// between the read and the insert.
func (r *GormObligationRepository) CreatePercentSettlement(ctx context.Context, req ledger.PercentSettlementRequest) (*ledger.Obligation, error) {
	var obligation *ledger.Obligation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var snapshotModel models.ShowFinancialsModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("show_id = ?", req.ShowID).
			First(&snapshotModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.ErrSnapshotRequired
			}
			return err
		}

		o, err := ledger.NewPercentPayoutObligation(
			req.ShowID, req.WholesalerID, req.Rate,
			snapshotModel.ToDomain(), req.Description, req.DueDate,
		)
		if err != nil {
			return err
		}

		if err := tx.Create(models.ObligationModelFromDomain(o)).Error; err != nil {
			return err
		}
		obligation = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obligation, nil
}

// FindByID finds a non-deleted obligation by its ID
func (r *GormObligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Obligation, error) {
	var model models.ObligationModel
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

// FindAll finds non-deleted obligations matching the filter
func (r *GormObligationRepository) FindAll(ctx context.Context, filter ledger.ObligationFilter) ([]ledger.Obligation, error) {
	var obligationModels []models.ObligationModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ObligationModel{}), filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&obligationModels).Error; err != nil {
		return nil, err
	}
	return toObligations(obligationModels), nil
}

// FindByWholesaler finds all non-deleted obligations for a wholesaler
func (r *GormObligationRepository) FindByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]ledger.Obligation, error) {
	var obligationModels []models.ObligationModel
	if err := r.db.WithContext(ctx).
		Where("wholesaler_id = ? AND record_status = ?", wholesalerID, shared.RecordStatusActive).
		Order("created_at ASC").
		Find(&obligationModels).Error; err != nil {
		return nil, err
	}
	return toObligations(obligationModels), nil
}

// ListActive returns every non-deleted obligation
func (r *GormObligationRepository) ListActive(ctx context.Context) ([]ledger.Obligation, error) {
	var obligationModels []models.ObligationModel
	if err := r.db.WithContext(ctx).
		Where("record_status = ?", shared.RecordStatusActive).
		Find(&obligationModels).Error; err != nil {
		return nil, err
	}
	return toObligations(obligationModels), nil
}

// Count counts non-deleted obligations matching the filter
func (r *GormObligationRepository) Count(ctx context.Context, filter ledger.ObligationFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutOrder(r.db.WithContext(ctx).Model(&models.ObligationModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus sets the status of a non-deleted obligation
func (r *GormObligationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.ObligationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.ObligationModel{}).
		Where("id = ? AND record_status = ?", id, shared.RecordStatusActive).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete soft deletes an obligation by flipping its record status
func (r *GormObligationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.ObligationModel{}).
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

// obligationSortFields contains allowed sort fields for obligations
var obligationSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"due_date":   true,
	"amount":     true,
	"status":     true,
}

func (r *GormObligationRepository) applyFilter(query *gorm.DB, filter ledger.ObligationFilter) *gorm.DB {
	query = r.applyFilterWithoutOrder(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, obligationSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormObligationRepository) applyFilterWithoutOrder(query *gorm.DB, filter ledger.ObligationFilter) *gorm.DB {
	query = query.Where("record_status = ?", shared.RecordStatusActive)

	if filter.ShowID != nil {
		query = query.Where("show_id = ?", *filter.ShowID)
	}
	if filter.WholesalerID != nil {
		query = query.Where("wholesaler_id = ?", *filter.WholesalerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Method != nil {
		query = query.Where("calculation_method = ?", *filter.Method)
	}
	return query
}

func toObligations(obligationModels []models.ObligationModel) []ledger.Obligation {
	obligations := make([]ledger.Obligation, len(obligationModels))
	for i := range obligationModels {
		obligations[i] = *obligationModels[i].ToDomain()
	}
	return obligations
}
