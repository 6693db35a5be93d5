package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/services"
)

// DocumentHandler handles legal document endpoints.
type DocumentHandler struct {
	service services.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler instance.
func NewDocumentHandler(service services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// AreaRequest is a two-triangle survey of the parcel.
type AreaRequest struct {
	DiagonalM float64 `json:"diagonal_m" binding:"required,gt=0"`
	Front1M   float64 `json:"front_1_m" binding:"required,gt=0"`
	Depth1M   float64 `json:"depth_1_m" binding:"required,gt=0"`
	Front2M   float64 `json:"front_2_m" binding:"required,gt=0"`
	Depth2M   float64 `json:"depth_2_m" binding:"required,gt=0"`
	Force     bool    `json:"force"`
}

// DocumentResponse wraps a single legal document.
type DocumentResponse struct {
	Document *models.LegalDocument `json:"document"`
}

// DocumentListResponse is a list of legal documents.
type DocumentListResponse struct {
	Documents []models.LegalDocument `json:"documents"`
	Count     int                    `json:"count"`
}

// CalculateArea handles POST /api/v1/documents/:id/area.
func (h *DocumentHandler) CalculateArea(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AreaRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.service.CalculateArea(c.Request.Context(), documentID, services.AreaInput{
		DiagonalM: req.DiagonalM,
		Front1M:   req.Front1M,
		Depth1M:   req.Depth1M,
		Front2M:   req.Front2M,
		Depth2M:   req.Depth2M,
		Force:     req.Force,
	})
	if err != nil {
		writeServiceError(c, err, "Failed to calculate area")
		return
	}

	c.JSON(http.StatusOK, DocumentResponse{Document: doc})
}

// ListAppraised handles GET /api/v1/documents/appraised.
func (h *DocumentHandler) ListAppraised(c *gin.Context) {
	docs, err := h.service.ListAppraised(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to list appraised documents")
		return
	}
	if docs == nil {
		docs = []models.LegalDocument{}
	}

	c.JSON(http.StatusOK, DocumentListResponse{Documents: docs, Count: len(docs)})
}
