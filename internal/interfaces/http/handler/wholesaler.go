package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/resale/backend/internal/application/partner"
	"github.com/resale/backend/internal/domain/partner"
	"github.com/resale/backend/internal/infrastructure/auth"
	"github.com/resale/backend/internal/interfaces/http/middleware"
)

// WholesalerHandler handles wholesaler-related API endpoints
type WholesalerHandler struct {
	BaseHandler
	wholesalerService *partnerapp.Service
}

// NewWholesalerHandler creates a new WholesalerHandler
func NewWholesalerHandler(wholesalerService *partnerapp.Service) *WholesalerHandler {
	return &WholesalerHandler{wholesalerService: wholesalerService}
}

// CreateWholesalerRequest represents a request to create a new wholesaler
type CreateWholesalerRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=255"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	TaxID        string `json:"tax_id" binding:"max=50"`
	Notes        string `json:"notes"`
}

// UpdateWholesalerRequest represents a partial update to a wholesaler
type UpdateWholesalerRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email,max=255"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=50"`
	TaxID        *string `json:"tax_id" binding:"omitempty,max=50"`
	Notes        *string `json:"notes"`
}

// WholesalerResponse is the API representation of a wholesaler
type WholesalerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	TaxID        string    `json:"tax_id,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toWholesalerResponse(w *partner.Wholesaler) WholesalerResponse {
	return WholesalerResponse{
		ID:           w.ID,
		Name:         w.Name,
		ContactEmail: w.ContactEmail,
		ContactPhone: w.ContactPhone,
		TaxID:        w.TaxID,
		Notes:        w.Notes,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// Create creates a new wholesaler
func (h *WholesalerHandler) Create(c *gin.Context) {
	var req CreateWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.wholesalerService.CreateWholesaler(c.Request.Context(), partnerapp.CreateWholesalerRequest{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		TaxID:        req.TaxID,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toWholesalerResponse(created))
}

// GetByID retrieves a wholesaler by ID
func (h *WholesalerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid wholesaler ID format")
		return
	}

	w, err := h.wholesalerService.GetWholesaler(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toWholesalerResponse(w))
}

// List retrieves a paginated list of wholesalers
func (h *WholesalerHandler) List(c *gin.Context) {
	page, err := h.wholesalerService.ListWholesalers(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]WholesalerResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toWholesalerResponse(&page.Items[i]))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Update applies a partial update to a wholesaler
func (h *WholesalerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid wholesaler ID format")
		return
	}

	var req UpdateWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	w, err := h.wholesalerService.UpdateWholesaler(c.Request.Context(), id, partnerapp.UpdateWholesalerRequest{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		TaxID:        req.TaxID,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toWholesalerResponse(w))
}

// Delete soft deletes a wholesaler
func (h *WholesalerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid wholesaler ID format")
		return
	}

	if err := h.wholesalerService.DeleteWholesaler(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all wholesaler routes
func (h *WholesalerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wholesalers := rg.Group("/wholesalers")
	{
		wholesalers.GET("", h.List)
		wholesalers.GET("/:id", h.GetByID)
		wholesalers.POST("", h.Create)
		wholesalers.PUT("/:id", h.Update)
		wholesalers.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.Delete)
	}
}
