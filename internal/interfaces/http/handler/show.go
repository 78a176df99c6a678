package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	showapp "github.com/resale/backend/internal/application/show"
	"github.com/resale/backend/internal/domain/show"
	"github.com/resale/backend/internal/infrastructure/auth"
	"github.com/resale/backend/internal/interfaces/http/middleware"
)

// ShowHandler handles show-related API endpoints
type ShowHandler struct {
	BaseHandler
	showService *showapp.Service
}

// NewShowHandler creates a new ShowHandler
func NewShowHandler(showService *showapp.Service) *ShowHandler {
	return &ShowHandler{showService: showService}
}

// CreateShowRequest represents a request to create a new show
type CreateShowRequest struct {
	Name              string    `json:"name" binding:"required,min=1,max=255"`
	ShowDate          time.Time `json:"show_date" binding:"required"`
	Platform          string    `json:"platform" binding:"required,oneof=WHATNOT INSTAGRAM MANUAL"`
	Location          string    `json:"location" binding:"max=255"`
	ExternalReference string    `json:"external_reference" binding:"max=255"`
	Notes             string    `json:"notes"`
}

// ShowResponse is the API representation of a show
type ShowResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	ShowDate          time.Time `json:"show_date"`
	Platform          string    `json:"platform"`
	Location          string    `json:"location,omitempty"`
	ExternalReference string    `json:"external_reference,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toShowResponse(s *show.Show) ShowResponse {
	return ShowResponse{
		ID:                s.ID,
		Name:              s.Name,
		ShowDate:          s.ShowDate,
		Platform:          s.Platform.String(),
		Location:          s.Location,
		ExternalReference: s.ExternalReference,
		Notes:             s.Notes,
		Status:            s.Status.String(),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// Create creates a new show
func (h *ShowHandler) Create(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.showService.CreateShow(c.Request.Context(), showapp.CreateShowRequest{
		Name:              req.Name,
		ShowDate:          req.ShowDate,
		Platform:          show.Platform(req.Platform),
		Location:          req.Location,
		ExternalReference: req.ExternalReference,
		Notes:             req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toShowResponse(created))
}

// GetByID retrieves a show by ID
func (h *ShowHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid show ID format")
		return
	}

	s, err := h.showService.GetShow(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toShowResponse(s))
}

// List retrieves a paginated list of shows
func (h *ShowHandler) List(c *gin.Context) {
	filter := show.Filter{Filter: parseFilter(c)}

	if v := c.Query("platform"); v != "" {
		p := show.Platform(v)
		if !p.IsValid() {
			h.BadRequest(c, "Invalid platform filter")
			return
		}
		filter.Platform = &p
	}
	if v := c.Query("status"); v != "" {
		s := show.Status(v)
		if !s.IsValid() {
			h.BadRequest(c, "Invalid status filter")
			return
		}
		filter.Status = &s
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

	page, err := h.showService.ListShows(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]ShowResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toShowResponse(&page.Items[i]))
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Complete marks a show as completed
func (h *ShowHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid show ID format")
		return
	}

	s, err := h.showService.CompleteShow(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toShowResponse(s))
}

// Cancel marks a show as cancelled
func (h *ShowHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid show ID format")
		return
	}

	s, err := h.showService.CancelShow(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toShowResponse(s))
}

// Delete soft deletes a show
func (h *ShowHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid show ID format")
		return
	}

	if err := h.showService.DeleteShow(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all show routes
func (h *ShowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shows := rg.Group("/shows")
	{
		shows.GET("", h.List)
		shows.GET("/:id", h.GetByID)
		shows.POST("", h.Create)
		shows.POST("/:id/complete", h.Complete)
		shows.POST("/:id/cancel", h.Cancel)
		shows.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.Delete)
	}
}
