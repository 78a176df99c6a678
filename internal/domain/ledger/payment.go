package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCheck      PaymentMethod = "CHECK"
	PaymentMethodWire       PaymentMethod = "WIRE"
	PaymentMethodACH        PaymentMethod = "ACH"
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodOther      PaymentMethod = "OTHER"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCheck, PaymentMethodWire, PaymentMethodACH,
		PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment records money paid to a wholesaler. A payment may reference the
// show it settles for context, but it is not allocated against specific
// obligations: the ledger sums all payments per wholesaler.
type Payment struct {
	shared.BaseEntity
	shared.SoftDeletable
	WholesalerID uuid.UUID         `json:"wholesaler_id"`
	ShowID       *uuid.UUID        `json:"show_id,omitempty"`
	Amount       valueobject.Money `json:"amount"`
	PaymentDate  time.Time         `json:"payment_date"`
	Method       PaymentMethod     `json:"payment_method"`
	Reference    string            `json:"reference,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}

// NewPayment creates a payment. PaymentDate is a calendar date; any time
// component is dropped.
func NewPayment(wholesalerID uuid.UUID, amount valueobject.Money, paymentDate time.Time, method PaymentMethod) (*Payment, error) {
	if wholesalerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WHOLESALER_ID", "Wholesaler ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.Currency() != valueobject.DefaultCurrency {
		return nil, shared.NewDomainError("UNSUPPORTED_CURRENCY", "Only USD amounts are supported")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		SoftDeletable: shared.NewSoftDeletable(),
		WholesalerID:  wholesalerID,
		Amount:        amount,
		PaymentDate:   truncateToDate(paymentDate),
		Method:        method,
	}, nil
}

// WithShow attaches the show this payment relates to
func (p *Payment) WithShow(showID uuid.UUID) *Payment {
	p.ShowID = &showID
	return p
}

// WithReference attaches an external reference (check number, wire id)
func (p *Payment) WithReference(reference string) *Payment {
	p.Reference = reference
	return p
}

// WithNotes attaches free-text notes
func (p *Payment) WithNotes(notes string) *Payment {
	p.Notes = notes
	return p
}

// truncateToDate keeps the calendar day as seen in t's own location and
// pins it to midnight UTC.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
