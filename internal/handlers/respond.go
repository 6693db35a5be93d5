package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/avaluo/landval/internal/errors"
	"github.com/avaluo/landval/internal/factors"
	"github.com/avaluo/landval/internal/middleware"
	"github.com/avaluo/landval/internal/services"
)

// bindJSON binds the request body into req and writes the error response on
// failure. It reports whether the handler should continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return false
	}
	return true
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		apierrors.BadRequest(c, "Invalid "+name, map[string]interface{}{
			name: "must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

// callerID is the authenticated user id, or "" outside Auth.
func callerID(c *gin.Context) string {
	if identity := middleware.GetIdentity(c); identity != nil {
		return identity.UserID
	}
	return ""
}

// writeServiceError maps service sentinels to responses. Anything unrecognised
// is a dependency failure and becomes a 500 with fallback as the message.
func writeServiceError(c *gin.Context, err error, fallback string) {
	var unresolved *factors.ValidationError
	switch {
	case errors.As(err, &unresolved):
		apierrors.UnresolvedFactors(c, unresolved.Fields)
	case errors.Is(err, services.ErrValidation):
		apierrors.BadRequest(c, err.Error(), nil)
	case errors.Is(err, services.ErrDocumentNotFound):
		apierrors.NotFound(c, "Document not found")
	case errors.Is(err, services.ErrTerrainNotFound):
		apierrors.NotFound(c, "No terrain factors recorded for this document")
	case errors.Is(err, services.ErrComparableNotFound):
		apierrors.NotFound(c, "Comparable not found")
	case errors.Is(err, services.ErrConstructionNotFound):
		apierrors.NotFound(c, "Construction not found")
	case errors.Is(err, services.ErrAreaAlreadySet):
		apierrors.Conflict(c, "Document already has an area; send force=true to replace it")
	default:
		apierrors.InternalServerError(c, fallback, err)
	}
}
