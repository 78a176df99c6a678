package partner

import (
	"strings"
	"time"

	"github.com/resale/backend/internal/domain/shared"
)

// Wholesaler represents an external party owed money for goods sold
// during shows.
type Wholesaler struct {
	shared.BaseEntity
	shared.SoftDeletable
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// NewWholesaler creates a new wholesaler
func NewWholesaler(name string) (*Wholesaler, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_WHOLESALER_NAME", "Wholesaler name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_WHOLESALER_NAME", "Wholesaler name cannot exceed 255 characters")
	}

	return &Wholesaler{
		BaseEntity:    shared.NewBaseEntity(),
		SoftDeletable: shared.NewSoftDeletable(),
		Name:          name,
	}, nil
}

// UpdateContact updates contact details
func (w *Wholesaler) UpdateContact(email, phone string) {
	w.ContactEmail = email
	w.ContactPhone = phone
	w.UpdatedAt = time.Now()
}

// Rename changes the wholesaler name
func (w *Wholesaler) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_WHOLESALER_NAME", "Wholesaler name cannot be empty")
	}
	w.Name = name
	w.UpdatedAt = time.Now()
	return nil
}
