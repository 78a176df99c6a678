package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ledgerapp "github.com/resale/backend/internal/application/ledger"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/infrastructure/auth"
	"github.com/resale/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// SettlementHandler handles settlement and obligation API endpoints
type SettlementHandler struct {
	BaseHandler
	settlementService *ledgerapp.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler
func NewSettlementHandler(settlementService *ledgerapp.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// CreateSettlementRequest settles a show with a wholesaler. MANUAL
// requires amount and forbids rate_percent; PERCENT_PAYOUT requires
// rate_percent and forbids amount.
type CreateSettlementRequest struct {
	ShowID       uuid.UUID  `json:"show_id" binding:"required"`
	WholesalerID uuid.UUID  `json:"wholesaler_id" binding:"required"`
	Method       string     `json:"method" binding:"required,oneof=MANUAL PERCENT_PAYOUT"`
	RatePercent  *string    `json:"rate_percent" binding:"omitempty,decimal"`
	Amount       *string    `json:"amount" binding:"omitempty,decimal"`
	Currency     string     `json:"currency" binding:"omitempty,oneof=USD"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
}

// CreateObligationRequest records a manually priced owed line item
type CreateObligationRequest struct {
	ShowID       uuid.UUID  `json:"show_id" binding:"required"`
	WholesalerID uuid.UUID  `json:"wholesaler_id" binding:"required"`
	Amount       string     `json:"amount" binding:"required,decimal"`
	Currency     string     `json:"currency" binding:"omitempty,oneof=USD"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
}

// UpdateObligationStatusRequest sets the reporting status
type UpdateObligationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PARTIALLY_PAID PAID ADJUSTED"`
}

// ObligationResponse is the API representation of an owed line item
type ObligationResponse struct {
	ID                uuid.UUID  `json:"id"`
	ShowID            uuid.UUID  `json:"show_id"`
	WholesalerID      uuid.UUID  `json:"wholesaler_id"`
	Amount            string     `json:"amount"`
	Currency          string     `json:"currency"`
	Description       string     `json:"description,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Status            string     `json:"status"`
	CalculationMethod string     `json:"calculation_method"`
	RateBps           *int       `json:"rate_bps,omitempty"`
	BaseAmount        *string    `json:"base_amount,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toObligationResponse(o *ledger.Obligation) ObligationResponse {
	resp := ObligationResponse{
		ID:                o.ID,
		ShowID:            o.ShowID,
		WholesalerID:      o.WholesalerID,
		Amount:            o.Amount.StringFixed(),
		Currency:          string(o.Amount.Currency()),
		Description:       o.Description,
		DueDate:           o.DueDate,
		Status:            o.Status.String(),
		CalculationMethod: o.CalculationMethod.String(),
		RateBps:           o.RateBps,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.BaseAmount != nil {
		base := o.BaseAmount.StringFixed()
		resp.BaseAmount = &base
	}
	return resp
}

// CreateSettlement creates an obligation via the settlement flow
func (h *SettlementHandler) CreateSettlement(c *gin.Context) {
	var req CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := ledgerapp.CreateSettlementRequest{
		ShowID:       req.ShowID,
		WholesalerID: req.WholesalerID,
		Method:       ledger.CalculationMethod(req.Method),
		Description:  req.Description,
		DueDate:      req.DueDate,
	}

	if req.RatePercent != nil {
		rate, err := decimal.NewFromString(*req.RatePercent)
		if err != nil {
			h.BadRequest(c, "Invalid rate_percent")
			return
		}
		appReq.RatePercent = &rate
	}
	if req.Amount != nil {
		amount, err := parseMoney(*req.Amount, req.Currency)
		if err != nil {
			h.BadRequest(c, "Invalid amount")
			return
		}
		appReq.Amount = &amount
	}

	obligation, err := h.settlementService.CreateSettlement(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toObligationResponse(obligation))
}

// CreateObligation records a manually priced obligation directly
func (h *SettlementHandler) CreateObligation(c *gin.Context) {
	var req CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		h.BadRequest(c, "Invalid amount")
		return
	}

	obligation, err := h.settlementService.CreateObligation(c.Request.Context(), ledgerapp.CreateObligationRequest{
		ShowID:       req.ShowID,
		WholesalerID: req.WholesalerID,
		Amount:       amount,
		Description:  req.Description,
		DueDate:      req.DueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toObligationResponse(obligation))
}

// GetObligation retrieves an obligation by ID
func (h *SettlementHandler) GetObligation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid obligation ID format")
		return
	}

	obligation, err := h.settlementService.GetObligation(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toObligationResponse(obligation))
}

// ListObligations retrieves a paginated list of obligations
func (h *SettlementHandler) ListObligations(c *gin.Context) {
	filter := ledger.ObligationFilter{Filter: parseFilter(c)}

	if v := c.Query("show_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "Invalid show_id filter")
			return
		}
		filter.ShowID = &id
	}
	if v := c.Query("wholesaler_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "Invalid wholesaler_id filter")
			return
		}
		filter.WholesalerID = &id
	}
	if v := c.Query("status"); v != "" {
		status := ledger.ObligationStatus(v)
		if !status.IsValid() {
			h.BadRequest(c, "Invalid status filter")
			return
		}
		filter.Status = &status
	}
	if v := c.Query("method"); v != "" {
		method := ledger.CalculationMethod(v)
		if !method.IsValid() {
			h.BadRequest(c, "Invalid method filter")
			return
		}
		filter.Method = &method
	}

	page, err := h.settlementService.ListObligations(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]ObligationResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toObligationResponse(&page.Items[i]))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// UpdateObligationStatus sets the reporting status of an obligation
func (h *SettlementHandler) UpdateObligationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid obligation ID format")
		return
	}

	var req UpdateObligationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.settlementService.UpdateObligationStatus(c.Request.Context(), id, ledger.ObligationStatus(req.Status)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteObligation soft deletes an obligation
func (h *SettlementHandler) DeleteObligation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid obligation ID format")
		return
	}

	if err := h.settlementService.DeleteObligation(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers settlement and obligation routes
func (h *SettlementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settlements := rg.Group("/settlements")
	{
		settlements.POST("", h.CreateSettlement)
	}

	obligations := rg.Group("/obligations")
	{
		obligations.GET("", h.ListObligations)
		obligations.GET("/:id", h.GetObligation)
		obligations.POST("", h.CreateObligation)
		obligations.PATCH("/:id/status", h.UpdateObligationStatus)
		obligations.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteObligation)
	}
}
