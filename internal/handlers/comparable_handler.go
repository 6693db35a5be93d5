package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/services"
)

// ComparableHandler handles market reference endpoints.
type ComparableHandler struct {
	service services.ComparableService
}

// NewComparableHandler creates a new ComparableHandler instance.
func NewComparableHandler(service services.ComparableService) *ComparableHandler {
	return &ComparableHandler{service: service}
}

// ComparableRequest is a market reference for a document.
type ComparableRequest struct {
	PhotoURL          *string `json:"photo_url" binding:"omitempty,url"`
	SourceLink        string  `json:"source_link" binding:"required"`
	TotalValue        float64 `json:"total_value" binding:"required,gt=0"`
	LandAreaM2        float64 `json:"land_area_m2" binding:"required,gt=0"`
	BuiltAreaM2       float64 `json:"built_area_m2" binding:"gte=0"`
	ConstructionValue float64 `json:"construction_value" binding:"gte=0,ltefield=TotalValue"`
}

// ComparableResponse wraps a single comparable.
type ComparableResponse struct {
	Comparable *models.Comparable `json:"comparable"`
}

// Create handles POST /api/v1/comparables/documents/:id.
func (h *ComparableHandler) Create(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ComparableRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.service.Create(c.Request.Context(), documentID, services.ComparableInput{
		SourceLink:        req.SourceLink,
		TotalValue:        req.TotalValue,
		LandAreaM2:        req.LandAreaM2,
		BuiltAreaM2:       req.BuiltAreaM2,
		ConstructionValue: req.ConstructionValue,
		PhotoURL:          req.PhotoURL,
	}, callerID(c))
	if err != nil {
		writeServiceError(c, err, "Failed to create comparable")
		return
	}

	c.JSON(http.StatusCreated, ComparableResponse{Comparable: saved})
}

// List handles GET /api/v1/comparables/documents/:id.
func (h *ComparableHandler) List(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.service.List(c.Request.Context(), documentID)
	if err != nil {
		writeServiceError(c, err, "Failed to list comparables")
		return
	}
	if list.Items == nil {
		list.Items = []models.Comparable{}
	}

	c.JSON(http.StatusOK, list)
}

// Delete handles DELETE /api/v1/comparables/:id.
func (h *ComparableHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Failed to delete comparable")
		return
	}

	c.Status(http.StatusNoContent)
}
