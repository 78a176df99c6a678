package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ledgerapp "github.com/resale/backend/internal/application/ledger"
	"github.com/resale/backend/internal/domain/ledger"
	"github.com/resale/backend/internal/infrastructure/auth"
	"github.com/resale/backend/internal/interfaces/http/middleware"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *ledgerapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *ledgerapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest records a payment to a wholesaler. The payment
// is not tied to specific obligations; show_id is optional context.
type CreatePaymentRequest struct {
	WholesalerID uuid.UUID  `json:"wholesaler_id" binding:"required"`
	ShowID       *uuid.UUID `json:"show_id"`
	Amount       string     `json:"amount" binding:"required,decimal"`
	Currency     string     `json:"currency" binding:"omitempty,oneof=USD"`
	PaymentDate  time.Time  `json:"payment_date" binding:"required"`
	Method       string     `json:"payment_method" binding:"required,oneof=CHECK WIRE ACH CASH CREDIT_CARD OTHER"`
	Reference    string     `json:"reference" binding:"max=255"`
	Notes        string     `json:"notes"`
}

// PaymentResponse is the API representation of a payment
type PaymentResponse struct {
	ID           uuid.UUID  `json:"id"`
	WholesalerID uuid.UUID  `json:"wholesaler_id"`
	ShowID       *uuid.UUID `json:"show_id,omitempty"`
	Amount       string     `json:"amount"`
	Currency     string     `json:"currency"`
	PaymentDate  time.Time  `json:"payment_date"`
	Method       string     `json:"payment_method"`
	Reference    string     `json:"reference,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toPaymentResponse(p *ledger.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		WholesalerID: p.WholesalerID,
		ShowID:       p.ShowID,
		Amount:       p.Amount.StringFixed(),
		Currency:     string(p.Amount.Currency()),
		PaymentDate:  p.PaymentDate,
		Method:       p.Method.String(),
		Reference:    p.Reference,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// Create records a payment
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		h.BadRequest(c, "Invalid amount")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), ledgerapp.CreatePaymentRequest{
		WholesalerID: req.WholesalerID,
		ShowID:       req.ShowID,
		Amount:       amount,
		PaymentDate:  req.PaymentDate,
		Method:       ledger.PaymentMethod(req.Method),
		Reference:    req.Reference,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toPaymentResponse(payment))
}

// GetByID retrieves a payment by ID
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPaymentResponse(payment))
}

// List retrieves a paginated list of payments
func (h *PaymentHandler) List(c *gin.Context) {
	filter := ledger.PaymentFilter{Filter: parseFilter(c)}

	if v := c.Query("wholesaler_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "Invalid wholesaler_id filter")
			return
		}
		filter.WholesalerID = &id
	}
	if v := c.Query("show_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "Invalid show_id filter")
			return
		}
		filter.ShowID = &id
	}
	if v := c.Query("from_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.BadRequest(c, "Invalid from_date format")
			return
		}
		filter.FromDate = &t
	}
	if v := c.Query("to_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.BadRequest(c, "Invalid to_date format")
			return
		}
		filter.ToDate = &t
	}

	page, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]PaymentResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPaymentResponse(&page.Items[i]))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Delete soft deletes a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.GET("", h.List)
		payments.GET("/:id", h.GetByID)
		payments.POST("", h.Create)
		payments.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.Delete)
	}
}
