package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared"
	"github.com/resale/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObligationStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   ObligationStatus
		expected bool
	}{
		{ObligationStatusPending, true},
		{ObligationStatusPartiallyPaid, true},
		{ObligationStatusPaid, true},
		{ObligationStatusAdjusted, true},
		{ObligationStatus("VOID"), false},
		{ObligationStatus(""), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsValid())
		})
	}
}

func TestCalculationMethod_IsValid(t *testing.T) {
	assert.True(t, CalculationMethodManual.IsValid())
	assert.True(t, CalculationMethodPercentPayout.IsValid())
	assert.False(t, CalculationMethod("FORMULA").IsValid())
}

func TestObligation_Validate(t *testing.T) {
	base := func(t *testing.T) *Obligation {
		o, err := NewManualObligation(uuid.New(), uuid.New(), mustMoney(t, "100"), "d", nil)
		require.NoError(t, err)
		return o
	}

	t.Run("manual with rate fields rejected", func(t *testing.T) {
		o := base(t)
		bps := 2500
		o.RateBps = &bps
		assert.Error(t, o.Validate())
	})

	t.Run("percent without rate fields rejected", func(t *testing.T) {
		o := base(t)
		o.CalculationMethod = CalculationMethodPercentPayout
		assert.Error(t, o.Validate())
	})

	t.Run("percent with mismatched amount rejected", func(t *testing.T) {
		o := base(t)
		o.CalculationMethod = CalculationMethodPercentPayout
		bps := 2500
		baseAmount := mustMoney(t, "10000")
		o.RateBps = &bps
		o.BaseAmount = &baseAmount
		// amount stays 100, expected 2500
		assert.Error(t, o.Validate())
	})

	t.Run("percent with out-of-range rate rejected", func(t *testing.T) {
		o := base(t)
		o.CalculationMethod = CalculationMethodPercentPayout
		bps := 10001
		baseAmount := mustMoney(t, "10000")
		o.RateBps = &bps
		o.BaseAmount = &baseAmount
		assert.Error(t, o.Validate())
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		o := base(t)
		o.CalculationMethod = CalculationMethod("FORMULA")
		err := o.Validate()
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CALCULATION", domainErr.Code)
	})

	// The balance and statement aggregators sum in a single currency, so a
	// non-USD amount must never survive validation.
	t.Run("non-USD amount rejected", func(t *testing.T) {
		eur, err := valueobject.NewMoneyFromString("100", valueobject.EUR)
		require.NoError(t, err)
		_, err = NewManualObligation(uuid.New(), uuid.New(), eur, "d", nil)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNSUPPORTED_CURRENCY", domainErr.Code)
	})
}

func TestObligation_MarkStatus(t *testing.T) {
	o, err := NewManualObligation(uuid.New(), uuid.New(), mustMoney(t, "100"), "", nil)
	require.NoError(t, err)

	require.NoError(t, o.MarkStatus(ObligationStatusPaid))
	assert.Equal(t, ObligationStatusPaid, o.Status)

	assert.Error(t, o.MarkStatus(ObligationStatus("VOID")))
}
