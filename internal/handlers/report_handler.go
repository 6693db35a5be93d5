package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/services"
)

// ReportHandler serves the data behind an appraisal report.
type ReportHandler struct {
	service services.ReportService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Get handles GET /api/v1/reports/documents/:id.
func (h *ReportHandler) Get(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	report, err := h.service.BuildReport(c.Request.Context(), documentID)
	if err != nil {
		writeServiceError(c, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, report)
}
