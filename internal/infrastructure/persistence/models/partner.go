package models

import (
	"github.com/resale/backend/internal/domain/partner"
)

// WholesalerModel is the persistence model for the Wholesaler domain entity.
type WholesalerModel struct {
	BaseModel
	SoftDeleteModel
	Name         string `gorm:"type:varchar(255);not null;index"`
	ContactEmail string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	TaxID        string `gorm:"type:varchar(50)"`
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WholesalerModel) TableName() string {
	return "wholesalers"
}

// ToDomain converts the persistence model to a domain Wholesaler entity.
func (m *WholesalerModel) ToDomain() *partner.Wholesaler {
	return &partner.Wholesaler{
		BaseEntity:    m.BaseModel.ToDomain(),
		SoftDeletable: m.SoftDeleteModel.ToDomain(),
		Name:          m.Name,
		ContactEmail:  m.ContactEmail,
		ContactPhone:  m.ContactPhone,
		TaxID:         m.TaxID,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Wholesaler entity.
func (m *WholesalerModel) FromDomain(w *partner.Wholesaler) {
	m.FromDomainBaseEntity(w.BaseEntity)
	m.FromDomainSoftDeletable(w.SoftDeletable)
	m.Name = w.Name
	m.ContactEmail = w.ContactEmail
	m.ContactPhone = w.ContactPhone
	m.TaxID = w.TaxID
	m.Notes = w.Notes
}

// WholesalerModelFromDomain creates a new persistence model from a domain Wholesaler entity.
func WholesalerModelFromDomain(w *partner.Wholesaler) *WholesalerModel {
	m := &WholesalerModel{}
	m.FromDomain(w)
	return m
}
