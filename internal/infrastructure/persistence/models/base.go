package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// SoftDeleteModel provides the explicit record status columns shared by
// soft-deletable models. Deleted rows stay in the table and are
// filtered out by the repositories.
type SoftDeleteModel struct {
	RecordStatus shared.RecordStatus `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
	DeletedAt    *time.Time
}

// ToDomain converts SoftDeleteModel to domain SoftDeletable
func (m *SoftDeleteModel) ToDomain() shared.SoftDeletable {
	return shared.SoftDeletable{
		RecordStatus: m.RecordStatus,
		DeletedAt:    m.DeletedAt,
	}
}

// FromDomainSoftDeletable populates SoftDeleteModel from domain SoftDeletable
func (m *SoftDeleteModel) FromDomainSoftDeletable(s shared.SoftDeletable) {
	m.RecordStatus = s.RecordStatus
	m.DeletedAt = s.DeletedAt
}

// moneyFromColumns rebuilds a Money value object from its persisted
// amount and currency columns.
func moneyFromColumns(amount decimal.Decimal, currency string) valueobject.Money {
	c := valueobject.Currency(currency)
	if c == "" {
		c = valueobject.DefaultCurrency
	}
	m, _ := valueobject.NewMoney(amount, c)
	return m
}
