package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ledgerapp "github.com/resale/backend/internal/application/ledger"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// FinancialsHandler handles per-show financial snapshot endpoints
type FinancialsHandler struct {
	BaseHandler
	financialsService *ledgerapp.FinancialsService
}

// NewFinancialsHandler creates a new FinancialsHandler
func NewFinancialsHandler(financialsService *ledgerapp.FinancialsService) *FinancialsHandler {
	return &FinancialsHandler{financialsService: financialsService}
}

// UpsertFinancialsRequest records the payout snapshot for a show.
// Amounts are decimal strings; a repeated call replaces both figures.
type UpsertFinancialsRequest struct {
	PayoutAfterFees string  `json:"payout_after_fees" binding:"required,decimal"`
	GrossSales      *string `json:"gross_sales" binding:"omitempty,decimal"`
	Currency        string  `json:"currency" binding:"omitempty,oneof=USD"`
}

// FinancialsResponse is the API representation of a show's snapshot
type FinancialsResponse struct {
	ShowID          uuid.UUID `json:"show_id"`
	PayoutAfterFees string    `json:"payout_after_fees"`
	GrossSales      *string   `json:"gross_sales,omitempty"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toFinancialsResponse(s *ledger.FinancialSnapshot) FinancialsResponse {
	resp := FinancialsResponse{
		ShowID:          s.ShowID,
		PayoutAfterFees: s.PayoutAfterFees.StringFixed(),
		Currency:        string(s.Currency),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.GrossSales != nil {
		gross := s.GrossSales.StringFixed()
		resp.GrossSales = &gross
	}
	return resp
}

// Upsert records or replaces the financial snapshot for a show
func (h *FinancialsHandler) Upsert(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid show ID format")
		return
	}

	var req UpsertFinancialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payout, err := parseMoney(req.PayoutAfterFees, req.Currency)
	if err != nil {
		h.BadRequest(c, "Invalid payout_after_fees amount")
		return
	}

	var gross *valueobject.Money
	if req.GrossSales != nil {
		g, err := parseMoney(*req.GrossSales, req.Currency)
		if err != nil {
			h.BadRequest(c, "Invalid gross_sales amount")
			return
		}
		gross = &g
	}

	snapshot, err := h.financialsService.UpsertFinancials(c.Request.Context(), ledgerapp.UpsertFinancialsRequest{
		ShowID:          showID,
		PayoutAfterFees: payout,
		GrossSales:      gross,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toFinancialsResponse(snapshot))
}

// Get returns the financial snapshot for a show
func (h *FinancialsHandler) Get(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid show ID format")
		return
	}

	snapshot, err := h.financialsService.GetFinancials(c.Request.Context(), showID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toFinancialsResponse(snapshot))
}

// RegisterRoutes registers financial snapshot routes under shows
func (h *FinancialsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shows := rg.Group("/shows")
	{
		shows.PUT("/:id/financials", h.Upsert)
		shows.GET("/:id/financials", h.Get)
	}
}
