package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ShowFinancialsModel is the persistence model for a show's financial
// snapshot. One row per show; the show ID is the primary key.
type ShowFinancialsModel struct {
	ShowID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	PayoutAfterFees      decimal.Decimal  `gorm:"type:decimal(19,4);not null"`
	GrossSales           *decimal.Decimal `gorm:"type:decimal(19,4)"`
	Currency             string           `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt            time.Time        `gorm:"not null"`
	UpdatedAt            time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ShowFinancialsModel) TableName() string {
	return "show_financials"
}

// ToDomain converts the persistence model to a domain FinancialSnapshot.
func (m *ShowFinancialsModel) ToDomain() *ledger.FinancialSnapshot {
	snapshot := &ledger.FinancialSnapshot{
		ShowID:          m.ShowID,
		PayoutAfterFees: moneyFromColumns(m.PayoutAfterFees, m.Currency),
		Currency:        valueobject.Currency(m.Currency),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.GrossSales != nil {
		gross := moneyFromColumns(*m.GrossSales, m.Currency)
		snapshot.GrossSales = &gross
	}
	return snapshot
}

// FromDomain populates the persistence model from a domain FinancialSnapshot.
func (m *ShowFinancialsModel) FromDomain(s *ledger.FinancialSnapshot) {
	m.ShowID = s.ShowID
	m.PayoutAfterFees = s.PayoutAfterFees.Amount()
	m.GrossSales = nil
	if s.GrossSales != nil {
		gross := s.GrossSales.Amount()
		m.GrossSales = &gross
	}
	m.Currency = string(s.Currency)
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ShowFinancialsModelFromDomain creates a new persistence model from a
// domain FinancialSnapshot.
func ShowFinancialsModelFromDomain(s *ledger.FinancialSnapshot) *ShowFinancialsModel {
	m := &ShowFinancialsModel{}
	m.FromDomain(s)
	return m
}

// ObligationModel is the persistence model for the Obligation domain entity.
type ObligationModel struct {
	BaseModel
	SoftDeleteModel
	ShowID            uuid.UUID                `gorm:"type:uuid;not null;index"`
	WholesalerID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal          `gorm:"type:decimal(19,4);not null"`
	Currency          string                   `gorm:"type:varchar(3);not null;default:'USD'"`
	Description       string                   `gorm:"type:text"`
	DueDate           *time.Time               `gorm:"index"`
	Status            ledger.ObligationStatus  `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CalculationMethod ledger.CalculationMethod `gorm:"type:varchar(20);not null"`
	RateBps           *int
	BaseAmount        *decimal.Decimal `gorm:"type:decimal(19,4)"`
}

// TableName returns the table name for GORM
func (ObligationModel) TableName() string {
	return "obligations"
}

// ToDomain converts the persistence model to a domain Obligation entity.
func (m *ObligationModel) ToDomain() *ledger.Obligation {
	o := &ledger.Obligation{
		BaseEntity:        m.BaseModel.ToDomain(),
		SoftDeletable:     m.SoftDeleteModel.ToDomain(),
		ShowID:            m.ShowID,
		WholesalerID:      m.WholesalerID,
		Amount:            moneyFromColumns(m.Amount, m.Currency),
		Description:       m.Description,
		DueDate:           m.DueDate,
		Status:            m.Status,
		CalculationMethod: m.CalculationMethod,
		RateBps:           m.RateBps,
	}
	if m.BaseAmount != nil {
		base := moneyFromColumns(*m.BaseAmount, m.Currency)
		o.BaseAmount = &base
	}
	return o
}

// FromDomain populates the persistence model from a domain Obligation entity.
func (m *ObligationModel) FromDomain(o *ledger.Obligation) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.FromDomainSoftDeletable(o.SoftDeletable)
	m.ShowID = o.ShowID
	m.WholesalerID = o.WholesalerID
	m.Amount = o.Amount.Amount()
	m.Currency = string(o.Amount.Currency())
	m.Description = o.Description
	m.DueDate = o.DueDate
	m.Status = o.Status
	m.CalculationMethod = o.CalculationMethod
	m.RateBps = o.RateBps
	m.BaseAmount = nil
	if o.BaseAmount != nil {
		base := o.BaseAmount.Amount()
		m.BaseAmount = &base
	}
}

// ObligationModelFromDomain creates a new persistence model from a domain
// Obligation entity.
func ObligationModelFromDomain(o *ledger.Obligation) *ObligationModel {
	m := &ObligationModel{}
	m.FromDomain(o)
	return m
}

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	BaseModel
	SoftDeleteModel
	WholesalerID uuid.UUID            `gorm:"type:uuid;not null;index"`
	ShowID       *uuid.UUID           `gorm:"type:uuid;index"`
	Amount       decimal.Decimal      `gorm:"type:decimal(19,4);not null"`
	Currency     string               `gorm:"type:varchar(3);not null;default:'USD'"`
	PaymentDate  time.Time            `gorm:"type:date;not null;index"`
	Method       ledger.PaymentMethod `gorm:"type:varchar(20);not null"`
	Reference    string               `gorm:"type:varchar(255)"`
	Notes        string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *ledger.Payment {
	return &ledger.Payment{
		BaseEntity:    m.BaseModel.ToDomain(),
		SoftDeletable: m.SoftDeleteModel.ToDomain(),
		WholesalerID:  m.WholesalerID,
		ShowID:        m.ShowID,
		Amount:        moneyFromColumns(m.Amount, m.Currency),
		PaymentDate:   m.PaymentDate,
		Method:        m.Method,
		Reference:     m.Reference,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *ledger.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.FromDomainSoftDeletable(p.SoftDeletable)
	m.WholesalerID = p.WholesalerID
	m.ShowID = p.ShowID
	m.Amount = p.Amount.Amount()
	m.Currency = string(p.Amount.Currency())
	m.PaymentDate = p.PaymentDate
	m.Method = p.Method
	m.Reference = p.Reference
	m.Notes = p.Notes
}

// PaymentModelFromDomain creates a new persistence model from a domain
// Payment entity.
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
