package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ledgerapp "github.com/resale/backend/internal/application/ledger"
	"github.com/resale/backend/internal/domain/ledger"
)

// LedgerHandler handles derived balance and statement endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledgerapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *ledgerapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// BalanceResponse is one wholesaler's derived position
type BalanceResponse struct {
	WholesalerID    uuid.UUID  `json:"wholesaler_id"`
	OwedTotal       string     `json:"owed_total"`
	PaidTotal       string     `json:"paid_total"`
	BalanceOwed     string     `json:"balance_owed"`
	LastPaymentDate *time.Time `json:"last_payment_date,omitempty"`
}

// StatementEntryResponse is one line of a wholesaler statement
type StatementEntryResponse struct {
	EntryID        uuid.UUID  `json:"entry_id"`
	Type           string     `json:"type"`
	Date           time.Time  `json:"date"`
	Amount         string     `json:"amount"`
	Description    string     `json:"description,omitempty"`
	ShowID         *uuid.UUID `json:"show_id,omitempty"`
	RunningBalance string     `json:"running_balance"`
}

func toBalanceResponse(b *ledger.Balance) BalanceResponse {
	return BalanceResponse{
		WholesalerID:    b.WholesalerID,
		OwedTotal:       b.OwedTotal.StringFixed(),
		PaidTotal:       b.PaidTotal.StringFixed(),
		BalanceOwed:     b.BalanceOwed.StringFixed(),
		LastPaymentDate: b.LastPaymentDate,
	}
}

func toStatementEntryResponse(e *ledger.StatementEntry) StatementEntryResponse {
	return StatementEntryResponse{
		EntryID:        e.EntryID,
		Type:           string(e.Type),
		Date:           e.Date,
		Amount:         e.Amount.StringFixed(),
		Description:    e.Description,
		ShowID:         e.ShowID,
		RunningBalance: e.RunningBalance.StringFixed(),
	}
}

// Balances returns the derived position of every wholesaler with
// ledger activity, recomputed from the live rows
func (h *LedgerHandler) Balances(c *gin.Context) {
	balances, err := h.ledgerService.Balances(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]BalanceResponse, 0, len(balances))
	for i := range balances {
		items = append(items, toBalanceResponse(&balances[i]))
	}
	h.Success(c, items)
}

// Statement returns the chronological running-balance view for one
// wholesaler
func (h *LedgerHandler) Statement(c *gin.Context) {
	wholesalerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid wholesaler ID format")
		return
	}

	entries, err := h.ledgerService.Statement(c.Request.Context(), wholesalerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]StatementEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toStatementEntryResponse(&entries[i]))
	}
	h.Success(c, items)
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledgerGroup := rg.Group("/ledger")
	{
		ledgerGroup.GET("/balances", h.Balances)
	}

	wholesalers := rg.Group("/wholesalers")
	{
		wholesalers.GET("/:id/statement", h.Statement)
	}
}
