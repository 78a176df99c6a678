package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObligation(t *testing.T, wholesalerID uuid.UUID, amount string, createdAt time.Time) Obligation {
	t.Helper()
	o, err := NewManualObligation(uuid.New(), wholesalerID, mustMoney(t, amount), "", nil)
	require.NoError(t, err)
	o.CreatedAt = createdAt
	return *o
}

func newPayment(t *testing.T, wholesalerID uuid.UUID, amount string, date time.Time) Payment {
	t.Helper()
	p, err := NewPayment(wholesalerID, mustMoney(t, amount), date, PaymentMethodCheck)
	require.NoError(t, err)
	p.CreatedAt = date
	return *p
}

func TestComputeBalances(t *testing.T) {
	wholesalerID := uuid.New()
	day1 := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	day15 := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("single obligation and payment", func(t *testing.T) {
		balances := ComputeBalances(
			[]Obligation{newObligation(t, wholesalerID, "2500.0000", day1)},
			[]Payment{newPayment(t, wholesalerID, "1000.0000", day15)},
		)
		require.Len(t, balances, 1)
		b := balances[0]
		assert.Equal(t, wholesalerID, b.WholesalerID)
		assert.Equal(t, "2500.0000", b.OwedTotal.StringFixed())
		assert.Equal(t, "1000.0000", b.PaidTotal.StringFixed())
		assert.Equal(t, "1500.0000", b.BalanceOwed.StringFixed())
		require.NotNil(t, b.LastPaymentDate)
		assert.True(t, day15.Equal(*b.LastPaymentDate))
	})

	t.Run("no payments means no last payment date", func(t *testing.T) {
		balances := ComputeBalances([]Obligation{newObligation(t, wholesalerID, "100", day1)}, nil)
		require.Len(t, balances, 1)
		assert.Nil(t, balances[0].LastPaymentDate)
		assert.Equal(t, "100.0000", balances[0].BalanceOwed.StringFixed())
	})

	t.Run("overpayment yields negative balance", func(t *testing.T) {
		balances := ComputeBalances(
			[]Obligation{newObligation(t, wholesalerID, "100", day1)},
			[]Payment{newPayment(t, wholesalerID, "150", day15)},
		)
		require.Len(t, balances, 1)
		assert.Equal(t, "-50.0000", balances[0].BalanceOwed.StringFixed())
	})

	t.Run("deleted rows excluded", func(t *testing.T) {
		o := newObligation(t, wholesalerID, "100", day1)
		o.MarkDeleted()
		p := newPayment(t, wholesalerID, "40", day15)
		p.MarkDeleted()
		kept := newObligation(t, wholesalerID, "60", day1)

		balances := ComputeBalances([]Obligation{o, kept}, []Payment{p})
		require.Len(t, balances, 1)
		assert.Equal(t, "60.0000", balances[0].OwedTotal.StringFixed())
		assert.True(t, balances[0].PaidTotal.IsZero())
		assert.Nil(t, balances[0].LastPaymentDate)
	})

	t.Run("multiple wholesalers ordered deterministically", func(t *testing.T) {
		w1, w2 := uuid.New(), uuid.New()
		balances := ComputeBalances(
			[]Obligation{
				newObligation(t, w1, "100", day1),
				newObligation(t, w2, "200", day1),
			},
			[]Payment{
				newPayment(t, w2, "50", day15),
				newPayment(t, w2, "25", day1),
			},
		)
		require.Len(t, balances, 2)
		assert.True(t, balances[0].WholesalerID.String() < balances[1].WholesalerID.String())

		for _, b := range balances {
			if b.WholesalerID == w2 {
				assert.Equal(t, "75.0000", b.PaidTotal.StringFixed())
				require.NotNil(t, b.LastPaymentDate)
				assert.True(t, day15.Equal(*b.LastPaymentDate), "max payment date wins")
			}
		}
	})
}

func TestBuildStatement(t *testing.T) {
	wholesalerID := uuid.New()
	day1 := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	day15 := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("owed then payment with running balance", func(t *testing.T) {
		o := newObligation(t, wholesalerID, "2500.0000", day1)
		p := newPayment(t, wholesalerID, "1000.0000", day15)

		entries := BuildStatement([]Obligation{o}, []Payment{p})
		require.Len(t, entries, 2)

		assert.Equal(t, EntryTypeOwed, entries[0].Type)
		assert.Equal(t, "2500.0000", entries[0].Amount.StringFixed())
		assert.Equal(t, "2500.0000", entries[0].RunningBalance.StringFixed())
		require.NotNil(t, entries[0].ShowID)
		assert.Equal(t, o.ShowID, *entries[0].ShowID)

		assert.Equal(t, EntryTypePayment, entries[1].Type)
		assert.Equal(t, "1000.0000", entries[1].Amount.StringFixed())
		assert.Equal(t, "1500.0000", entries[1].RunningBalance.StringFixed())
		assert.Nil(t, entries[1].ShowID, "payment entries carry no show reference")
	})

	t.Run("final running balance equals balance owed", func(t *testing.T) {
		obligations := []Obligation{
			newObligation(t, wholesalerID, "2500", day1),
			newObligation(t, wholesalerID, "750.25", day15),
		}
		payments := []Payment{
			newPayment(t, wholesalerID, "1000", day15),
			newPayment(t, wholesalerID, "500.50", day15.AddDate(0, 0, 3)),
		}

		entries := BuildStatement(obligations, payments)
		require.NotEmpty(t, entries)
		balances := ComputeBalances(obligations, payments)
		require.Len(t, balances, 1)

		final := entries[len(entries)-1].RunningBalance
		assert.True(t, final.Equals(balances[0].BalanceOwed))
	})

	t.Run("date ties preserve creation order", func(t *testing.T) {
		first := newObligation(t, wholesalerID, "10", day1)
		second := newObligation(t, wholesalerID, "20", day1.Add(time.Second))
		third := newObligation(t, wholesalerID, "30", day1.Add(2*time.Second))

		entries := BuildStatement([]Obligation{third, first, second}, nil)
		require.Len(t, entries, 3)
		assert.Equal(t, first.ID, entries[0].EntryID)
		assert.Equal(t, second.ID, entries[1].EntryID)
		assert.Equal(t, third.ID, entries[2].EntryID)
	})

	t.Run("identical timestamps fall back to entry id order", func(t *testing.T) {
		a := newObligation(t, wholesalerID, "10", day1)
		b := newObligation(t, wholesalerID, "20", day1)

		forward := BuildStatement([]Obligation{a, b}, nil)
		reversed := BuildStatement([]Obligation{b, a}, nil)
		require.Len(t, forward, 2)
		assert.Equal(t, forward[0].EntryID, reversed[0].EntryID)
		assert.Equal(t, forward[1].EntryID, reversed[1].EntryID)
	})

	t.Run("deleted entries excluded", func(t *testing.T) {
		o := newObligation(t, wholesalerID, "100", day1)
		deleted := newObligation(t, wholesalerID, "999", day1)
		deleted.MarkDeleted()

		entries := BuildStatement([]Obligation{o, deleted}, nil)
		require.Len(t, entries, 1)
		assert.Equal(t, o.ID, entries[0].EntryID)
	})

	t.Run("empty inputs produce empty statement", func(t *testing.T) {
		assert.Empty(t, BuildStatement(nil, nil))
	})
}
