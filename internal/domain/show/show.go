package show

import (
	"strings"
	"time"

	"github.com/resale/backend/internal/domain/shared"
)

// Platform represents the sales channel a show ran on
type Platform string

const (
	PlatformWhatnot   Platform = "WHATNOT"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformManual    Platform = "MANUAL"
)

// IsValid checks if the platform is a valid Platform
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWhatnot, PlatformInstagram, PlatformManual:
		return true
	}
	return false
}

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// Status represents the lifecycle status of a show
type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Show represents a discrete sales event with its own financial results.
// Obligations and the show's financial snapshot hang off it.
type Show struct {
	shared.BaseEntity
	shared.SoftDeletable
	Name              string     `json:"name"`
	ShowDate          time.Time  `json:"show_date"`
	Platform          Platform   `json:"platform"`
	Location          string     `json:"location,omitempty"`
	ExternalReference string     `json:"external_reference,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	Status            Status     `json:"status"`
}

// NewShow creates a new show
func NewShow(name string, showDate time.Time, platform Platform) (*Show, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SHOW_NAME", "Show name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_SHOW_NAME", "Show name cannot exceed 255 characters")
	}
	if showDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_SHOW_DATE", "Show date is required")
	}
	if !platform.IsValid() {
		return nil, shared.NewDomainError("INVALID_PLATFORM", "Platform is not valid")
	}

	return &Show{
		BaseEntity:    shared.NewBaseEntity(),
		SoftDeletable: shared.NewSoftDeletable(),
		Name:          name,
		ShowDate:      showDate,
		Platform:      platform,
		Status:        StatusPlanned,
	}, nil
}

// Complete marks the show as completed
func (s *Show) Complete() error {
	if s.Status == StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled show cannot be completed")
	}
	s.Status = StatusCompleted
	s.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the show as cancelled
func (s *Show) Cancel() error {
	if s.Status == StatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Completed show cannot be cancelled")
	}
	s.Status = StatusCancelled
	s.UpdatedAt = time.Now()
	return nil
}
