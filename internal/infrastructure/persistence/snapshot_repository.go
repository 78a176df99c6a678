package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements ledger.SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Upsert inserts or replaces the snapshot for a show in one statement.
// On conflict both amounts and the currency are replaced; created_at is
// left as written by the first insert.
func (r *GormSnapshotRepository) Upsert(ctx context.Context, snapshot *ledger.FinancialSnapshot) (*ledger.FinancialSnapshot, error) {
	model := models.ShowFinancialsModelFromDomain(snapshot)

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "show_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"payout_after_fees", "gross_sales", "currency", "updated_at",
		}),
	}).Create(model).Error; err != nil {
		return nil, err
	}

	return r.FindByShow(ctx, snapshot.ShowID)
}

// FindByShow returns the snapshot for a show
func (r *GormSnapshotRepository) FindByShow(ctx context.Context, showID uuid.UUID) (*ledger.FinancialSnapshot, error) {
	var model models.ShowFinancialsModel
	if err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}
