package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// EntryType distinguishes the two sides of a wholesaler statement
type EntryType string

const (
	EntryTypeOwed    EntryType = "OWED"
	EntryTypePayment EntryType = "PAYMENT"
)

// Balance is the derived per-wholesaler position. It is recomputed from
// the live rows on every query; nothing is cached.
type Balance struct {
	WholesalerID    uuid.UUID         `json:"wholesaler_id"`
	OwedTotal       valueobject.Money `json:"owed_total"`
	PaidTotal       valueobject.Money `json:"paid_total"`
	BalanceOwed     valueobject.Money `json:"balance_owed"`
	LastPaymentDate *time.Time        `json:"last_payment_date,omitempty"`
}

// StatementEntry is one line of the chronological running-balance view.
// OWED entries carry the originating show; PAYMENT entries do not.
type StatementEntry struct {
	EntryID        uuid.UUID         `json:"entry_id"`
	Type           EntryType         `json:"type"`
	Date           time.Time         `json:"date"`
	Amount         valueobject.Money `json:"amount"`
	Description    string            `json:"description,omitempty"`
	ShowID         *uuid.UUID        `json:"show_id,omitempty"`
	RunningBalance valueobject.Money `json:"running_balance"`

	createdAt time.Time
}

// ComputeBalances sums non-deleted obligations and payments per
// wholesaler. Balance owed may be negative: overpayment is representable.
// Results are ordered by wholesaler ID for determinism.
func ComputeBalances(obligations []Obligation, payments []Payment) []Balance {
	byWholesaler := make(map[uuid.UUID]*Balance)

	get := func(id uuid.UUID) *Balance {
		b, ok := byWholesaler[id]
		if !ok {
			b = &Balance{
				WholesalerID: id,
				OwedTotal:    valueobject.ZeroUSD(),
				PaidTotal:    valueobject.ZeroUSD(),
			}
			byWholesaler[id] = b
		}
		return b
	}

	for i := range obligations {
		o := &obligations[i]
		if o.IsDeleted() {
			continue
		}
		b := get(o.WholesalerID)
		b.OwedTotal = b.OwedTotal.MustAdd(o.Amount)
	}

	for i := range payments {
		p := &payments[i]
		if p.IsDeleted() {
			continue
		}
		b := get(p.WholesalerID)
		b.PaidTotal = b.PaidTotal.MustAdd(p.Amount)
		if b.LastPaymentDate == nil || p.PaymentDate.After(*b.LastPaymentDate) {
			d := p.PaymentDate
			b.LastPaymentDate = &d
		}
	}

	balances := make([]Balance, 0, len(byWholesaler))
	for _, b := range byWholesaler {
		b.BalanceOwed = b.OwedTotal.MustSubtract(b.PaidTotal)
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].WholesalerID.String() < balances[j].WholesalerID.String()
	})
	return balances
}

// BuildStatement merges one wholesaler's non-deleted obligations (OWED,
// dated by creation time) and payments (PAYMENT, dated by payment date)
// into a chronological sequence with a running balance. Entries are
// ordered by (date, creation time, entry ID) so ties resolve the same
// way on every call.
func BuildStatement(obligations []Obligation, payments []Payment) []StatementEntry {
	entries := make([]StatementEntry, 0, len(obligations)+len(payments))

	for i := range obligations {
		o := &obligations[i]
		if o.IsDeleted() {
			continue
		}
		showID := o.ShowID
		entries = append(entries, StatementEntry{
			EntryID:     o.ID,
			Type:        EntryTypeOwed,
			Date:        o.CreatedAt,
			Amount:      o.Amount,
			Description: o.Description,
			ShowID:      &showID,
			createdAt:   o.CreatedAt,
		})
	}

	for i := range payments {
		p := &payments[i]
		if p.IsDeleted() {
			continue
		}
		entries = append(entries, StatementEntry{
			EntryID:   p.ID,
			Type:      EntryTypePayment,
			Date:      p.PaymentDate,
			Amount:    p.Amount,
			createdAt: p.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.EntryID.String() < b.EntryID.String()
	})

	running := valueobject.ZeroUSD()
	for i := range entries {
		switch entries[i].Type {
		case EntryTypeOwed:
			running = running.MustAdd(entries[i].Amount)
		case EntryTypePayment:
			running = running.MustSubtract(entries[i].Amount)
		}
		entries[i].RunningBalance = running
	}
	return entries
}
