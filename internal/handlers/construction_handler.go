package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/services"
)

// ConstructionHandler handles construction record endpoints.
type ConstructionHandler struct {
	service services.ConstructionService
}

// NewConstructionHandler creates a new ConstructionHandler instance.
func NewConstructionHandler(service services.ConstructionService) *ConstructionHandler {
	return &ConstructionHandler{service: service}
}

// ConstructionRequest describes a building on the parcel. adjustment_factor
// defaults to 1 when omitted.
type ConstructionRequest struct {
	AdjustmentFactor *float64 `json:"adjustment_factor" binding:"omitempty,gt=0"`
	Description      *string  `json:"description"`
	PhotoURL         *string  `json:"photo_url" binding:"omitempty,url"`
	Kind             string   `json:"kind" binding:"required"`
	AreaM2           float64  `json:"area_m2" binding:"required,gt=0"`
	ValuePerM2       float64  `json:"value_per_m2" binding:"required,gt=0"`
	AgeYears         int      `json:"age_years" binding:"gte=0"`
}

// ConstructionResponse wraps a single construction.
type ConstructionResponse struct {
	Construction *models.Construction `json:"construction"`
}

// Create handles POST /api/v1/constructions/documents/:id.
func (h *ConstructionHandler) Create(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ConstructionRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.service.Create(c.Request.Context(), documentID, services.ConstructionInput{
		Kind:             req.Kind,
		AreaM2:           req.AreaM2,
		ValuePerM2:       req.ValuePerM2,
		AgeYears:         req.AgeYears,
		AdjustmentFactor: req.AdjustmentFactor,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
	}, callerID(c))
	if err != nil {
		writeServiceError(c, err, "Failed to create construction")
		return
	}

	c.JSON(http.StatusCreated, ConstructionResponse{Construction: saved})
}

// List handles GET /api/v1/constructions/documents/:id.
func (h *ConstructionHandler) List(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.service.List(c.Request.Context(), documentID)
	if err != nil {
		writeServiceError(c, err, "Failed to list constructions")
		return
	}
	if list.Items == nil {
		list.Items = []models.Construction{}
	}

	c.JSON(http.StatusOK, list)
}

// Delete handles DELETE /api/v1/constructions/:id.
func (h *ConstructionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Failed to delete construction")
		return
	}

	c.Status(http.StatusNoContent)
}
