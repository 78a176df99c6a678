package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Basis point bounds: 0 bps = 0%, 10000 bps = 100%.
const (
	MinBasisPoints = 0
	MaxBasisPoints = 10000
)

// Rate is a value object representing a percentage rate in basis points
// (hundredths of a percent). It is immutable.
type Rate struct {
	bps int
}

// NewRate creates a Rate from a basis-point value
func NewRate(bps int) (Rate, error) {
	if bps < MinBasisPoints || bps > MaxBasisPoints {
		return Rate{}, fmt.Errorf("rate must be between %d and %d basis points, got %d", MinBasisPoints, MaxBasisPoints, bps)
	}
	return Rate{bps: bps}, nil
}

// NewRateFromPercent creates a Rate from a percentage in [0,100].
// The percentage is converted to the nearest whole basis point, rounding
// half-up, so 12.345% becomes 1235 bps.
func NewRateFromPercent(percent decimal.Decimal) (Rate, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return Rate{}, fmt.Errorf("rate percent must be between 0 and 100, got %s", percent.String())
	}
	bps := percent.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return NewRate(int(bps))
}

// BasisPoints returns the rate in basis points
func (r Rate) BasisPoints() int {
	return r.bps
}

// Percent returns the rate as a percentage decimal
func (r Rate) Percent() decimal.Decimal {
	return decimal.NewFromInt(int64(r.bps)).Div(decimal.NewFromInt(100))
}

// ApplyTo computes the rate's share of a base amount, rounded half-up at
// the ledger scale: round(base * bps / 10000, 4).
func (r Rate) ApplyTo(base Money) Money {
	amount := base.Amount().
		Mul(decimal.NewFromInt(int64(r.bps))).
		Div(decimal.NewFromInt(MaxBasisPoints)).
		Round(LedgerScale)
	return Money{amount: amount, currency: base.Currency()}
}

// IsZero returns true for a 0 bps rate
func (r Rate) IsZero() bool {
	return r.bps == 0
}

// String returns the rate formatted as a percentage
func (r Rate) String() string {
	return fmt.Sprintf("%s%%", r.Percent().String())
}
