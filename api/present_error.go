package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// presentError renders err on the response and reports whether it did, so
// handlers can early-return. Sentinel wraps map to their http status, anything
// else is a 500 with the detail kept server side.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
	}
	return true
}
