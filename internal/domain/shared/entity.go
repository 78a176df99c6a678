package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecordStatus marks whether a record is live or soft-deleted.
// Deleted records are kept for audit but excluded from every query
// and aggregation.
type RecordStatus string

const (
	RecordStatusActive  RecordStatus = "ACTIVE"
	RecordStatusDeleted RecordStatus = "DELETED"
)

// IsValid checks if the status is a valid RecordStatus
func (s RecordStatus) IsValid() bool {
	return s == RecordStatusActive || s == RecordStatusDeleted
}

// String returns the string representation of RecordStatus
func (s RecordStatus) String() string {
	return string(s)
}

// SoftDeletable provides the record status plus deletion timestamp
// shared by all soft-deletable aggregates.
type SoftDeletable struct {
	RecordStatus RecordStatus
	DeletedAt    *time.Time
}

// IsDeleted returns true if the record has been soft-deleted
func (s *SoftDeletable) IsDeleted() bool {
	return s.RecordStatus == RecordStatusDeleted
}

// MarkDeleted soft-deletes the record
func (s *SoftDeletable) MarkDeleted() {
	now := time.Now()
	s.RecordStatus = RecordStatusDeleted
	s.DeletedAt = &now
}

// NewSoftDeletable returns an active, non-deleted marker
func NewSoftDeletable() SoftDeletable {
	return SoftDeletable{RecordStatus: RecordStatusActive}
}
