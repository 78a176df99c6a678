package models

import (
	"time"

	"github.com/resale/backend/internal/domain/show"
)

// ShowModel is the persistence model for the Show domain entity.
type ShowModel struct {
	BaseModel
	SoftDeleteModel
	Name              string        `gorm:"type:varchar(255);not null"`
	ShowDate          time.Time     `gorm:"not null;index"`
	Platform          show.Platform `gorm:"type:varchar(20);not null"`
	Location          string        `gorm:"type:varchar(255)"`
	ExternalReference string        `gorm:"type:varchar(255)"`
	Notes             string        `gorm:"type:text"`
	Status            show.Status   `gorm:"type:varchar(20);not null;default:'PLANNED';index"`
}

// TableName returns the table name for GORM
func (ShowModel) TableName() string {
	return "shows"
}

// ToDomain converts the persistence model to a domain Show entity.
func (m *ShowModel) ToDomain() *show.Show {
	return &show.Show{
		BaseEntity:        m.BaseModel.ToDomain(),
		SoftDeletable:     m.SoftDeleteModel.ToDomain(),
		Name:              m.Name,
		ShowDate:          m.ShowDate,
		Platform:          m.Platform,
		Location:          m.Location,
		ExternalReference: m.ExternalReference,
		Notes:             m.Notes,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Show entity.
func (m *ShowModel) FromDomain(s *show.Show) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.FromDomainSoftDeletable(s.SoftDeletable)
	m.Name = s.Name
	m.ShowDate = s.ShowDate
	m.Platform = s.Platform
	m.Location = s.Location
	m.ExternalReference = s.ExternalReference
	m.Notes = s.Notes
	m.Status = s.Status
}

// ShowModelFromDomain creates a new persistence model from a domain Show entity.
func ShowModelFromDomain(s *show.Show) *ShowModel {
	m := &ShowModel{}
	m.FromDomain(s)
	return m
}
