package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// ObligationStatus represents the payment status of an owed line item
type ObligationStatus string

const (
	ObligationStatusPending       ObligationStatus = "PENDING"
	ObligationStatusPartiallyPaid ObligationStatus = "PARTIALLY_PAID"
	ObligationStatusPaid          ObligationStatus = "PAID"
	ObligationStatusAdjusted      ObligationStatus = "ADJUSTED"
)

// IsValid checks if the status is a valid ObligationStatus
func (s ObligationStatus) IsValid() bool {
	switch s {
	case ObligationStatusPending, ObligationStatusPartiallyPaid,
		ObligationStatusPaid, ObligationStatusAdjusted:
		return true
	}
	return false
}

// String returns the string representation of ObligationStatus
func (s ObligationStatus) String() string {
	return string(s)
}

// CalculationMethod represents how an obligation amount was derived
type CalculationMethod string

const (
	// CalculationMethodManual means the amount was supplied directly
	CalculationMethodManual CalculationMethod = "MANUAL"
	// CalculationMethodPercentPayout means the amount was computed as a
	// basis-point share of the show's payout snapshot
	CalculationMethodPercentPayout CalculationMethod = "PERCENT_PAYOUT"
)

// IsValid checks if the method is a valid CalculationMethod
func (m CalculationMethod) IsValid() bool {
	return m == CalculationMethodManual || m == CalculationMethodPercentPayout
}

// String returns the string representation of CalculationMethod
func (m CalculationMethod) String() string {
	return string(m)
}

// Obligation is an owed line item: a recorded amount owed to a wholesaler
// for a show. The computed fields (rate, base amount) are frozen at
// creation; a later snapshot change never alters an existing obligation.
type Obligation struct {
	shared.BaseEntity
	shared.SoftDeletable
	ShowID            uuid.UUID          `json:"show_id"`
	WholesalerID      uuid.UUID          `json:"wholesaler_id"`
	Amount            valueobject.Money  `json:"amount"`
	Description       string             `json:"description"`
	DueDate           *time.Time         `json:"due_date,omitempty"`
	Status            ObligationStatus   `json:"status"`
	CalculationMethod CalculationMethod  `json:"calculation_method"`
	RateBps           *int               `json:"rate_bps,omitempty"`
	BaseAmount        *valueobject.Money `json:"base_amount,omitempty"`
}

// Validate enforces the exactly-one-method invariant:
// MANUAL carries no rate or base amount, PERCENT_PAYOUT carries both and
// the amount must equal round(base * bps / 10000, 4). The amount is
// strictly positive and in USD for either method; the ledger aggregates
// in a single currency.
func (o *Obligation) Validate() error {
	if o.ShowID == uuid.Nil {
		return shared.NewDomainError("INVALID_SHOW_ID", "Show ID cannot be empty")
	}
	if o.WholesalerID == uuid.Nil {
		return shared.NewDomainError("INVALID_WHOLESALER_ID", "Wholesaler ID cannot be empty")
	}
	if !o.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Obligation amount must be positive")
	}
	if o.Amount.Currency() != valueobject.DefaultCurrency {
		return shared.NewDomainError("UNSUPPORTED_CURRENCY", "Only USD amounts are supported")
	}
	if !o.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Obligation status is not valid")
	}

	switch o.CalculationMethod {
	case CalculationMethodManual:
		if o.RateBps != nil || o.BaseAmount != nil {
			return shared.NewDomainError("INVALID_CALCULATION", "Manual obligations cannot carry rate or base amount")
		}
	case CalculationMethodPercentPayout:
		if o.RateBps == nil || o.BaseAmount == nil {
			return shared.NewDomainError("INVALID_CALCULATION", "Percent-payout obligations require rate and base amount")
		}
		rate, err := valueobject.NewRate(*o.RateBps)
		if err != nil {
			return shared.NewDomainError("INVALID_RATE", err.Error())
		}
		expected := rate.ApplyTo(*o.BaseAmount)
		if !o.Amount.Equals(expected) {
			return shared.NewDomainError("INVALID_CALCULATION", "Obligation amount does not match rate applied to base amount")
		}
	default:
		return shared.NewDomainError("INVALID_CALCULATION", "Calculation method is not valid")
	}
	return nil
}

// MarkStatus transitions the obligation status. Status is tracked for
// reporting only; the ledger aggregation never consults it.
func (o *Obligation) MarkStatus(status ObligationStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Obligation status is not valid")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}
