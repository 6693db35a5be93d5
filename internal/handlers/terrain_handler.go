package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/factors"
	"github.com/avaluo/landval/internal/middleware"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/services"
)

// TerrainHandler handles the factor computation endpoints of a legal document.
type TerrainHandler struct {
	service services.TerrainService
}

// NewTerrainHandler creates a new TerrainHandler instance.
func NewTerrainHandler(service services.TerrainService) *TerrainHandler {
	return &TerrainHandler{
		service: service,
	}
}

// TerrainRequest is the body of PUT /api/v1/documents/:id/terrain.
// The area is never accepted here; it always comes from the document.
type TerrainRequest struct {
	InteriorDistanceM  *float64 `json:"interior_distance_m" binding:"omitempty,gte=0"`
	Position           string   `json:"position" binding:"required,parcel_position"`
	Shape              string   `json:"shape" binding:"required,parcel_shape"`
	ElevationDirection string   `json:"elevation_direction" binding:"required,elevation_direction"`
	FrontageM          float64  `json:"frontage_m" binding:"required,gt=0"`
	DepthM             float64  `json:"depth_m" binding:"required,gt=0"`
	SlopePct           *float64 `json:"slope_pct" binding:"required,gte=0"`
	ElevationM         *float64 `json:"elevation_m" binding:"required,gte=0"`
}

// TerrainResponse wraps the stored terrain record.
type TerrainResponse struct {
	Terrain *models.DocumentTerrainRecord `json:"terrain"`
}

func (r TerrainRequest) measurement() factors.Measurement {
	return factors.Measurement{
		Position:           r.Position,
		FrontageM:          r.FrontageM,
		DepthM:             r.DepthM,
		InteriorDistanceM:  r.InteriorDistanceM,
		Shape:              r.Shape,
		SlopePct:           r.SlopePct,
		ElevationDirection: r.ElevationDirection,
		ElevationM:         r.ElevationM,
	}
}

// Compute handles PUT /api/v1/documents/:id/terrain.
// It resolves every factor and overwrites the document's terrain record.
func (h *TerrainHandler) Compute(c *gin.Context) {
	log := middleware.GetLogger(c)

	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req TerrainRequest
	if !bindJSON(c, &req) {
		return
	}

	if log != nil {
		log.Info("Processing terrain factor request", map[string]interface{}{
			"document_id": documentID,
			"position":    req.Position,
			"shape":       req.Shape,
		})
	}

	record, err := h.service.ComputeAndPersistFactors(c.Request.Context(), documentID, req.measurement(), callerID(c))
	if err != nil {
		writeServiceError(c, err, "Failed to compute terrain factors")
		return
	}

	c.JSON(http.StatusOK, TerrainResponse{Terrain: record})
}

// Get handles GET /api/v1/documents/:id/terrain.
func (h *TerrainHandler) Get(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	record, err := h.service.GetTerrainRecord(c.Request.Context(), documentID)
	if err != nil {
		writeServiceError(c, err, "Failed to read terrain factors")
		return
	}

	c.JSON(http.StatusOK, TerrainResponse{Terrain: record})
}
