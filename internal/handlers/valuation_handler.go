package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/middleware"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/services"
)

// ValuationHandler handles valuation summary and appraisal completion.
type ValuationHandler struct {
	service services.ValuationService
}

// NewValuationHandler creates a new ValuationHandler instance.
func NewValuationHandler(service services.ValuationService) *ValuationHandler {
	return &ValuationHandler{service: service}
}

// ValuationResponse wraps a valuation summary.
type ValuationResponse struct {
	Summary *models.ValuationSummary `json:"summary"`
}

// FinalizeResponse confirms an appraisal was marked complete.
type FinalizeResponse struct {
	DocumentID int64 `json:"document_id"`
	Appraised  bool  `json:"appraised"`
}

// Summary handles GET /api/v1/valuations/documents/:id.
func (h *ValuationHandler) Summary(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.service.ComputeValuationSummary(c.Request.Context(), documentID)
	if err != nil {
		writeServiceError(c, err, "Failed to compute valuation summary")
		return
	}

	c.JSON(http.StatusOK, ValuationResponse{Summary: summary})
}

// Finalize handles POST /api/v1/valuations/documents/:id/finalize.
func (h *ValuationHandler) Finalize(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.FinalizeAppraisal(c.Request.Context(), documentID); err != nil {
		writeServiceError(c, err, "Failed to finalize appraisal")
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Appraisal finalized by caller", map[string]interface{}{
			"document_id": documentID,
		})
	}

	c.JSON(http.StatusOK, FinalizeResponse{DocumentID: documentID, Appraised: true})
}
