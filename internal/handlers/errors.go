package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/dto"
	"github.com/razalrahmanp/palaka-sub003/internal/middleware"
)

// respondWithError maps service errors to HTTP responses.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var ineligible *apperrors.IneligibleFinanceError
	switch {
	case errors.As(err, &ineligible):
		logger.Info("Finance amount outside plan bounds", slog.String("plan_id", ineligible.PlanID), slog.String("bound", string(ineligible.Bound)))
		c.JSON(http.StatusUnprocessableEntity, dto.IneligibleFinanceResponse{
			Error:         ineligible.Error(),
			PlanID:        ineligible.PlanID,
			Bound:         string(ineligible.Bound),
			FinanceAmount: ineligible.FinanceAmount,
			Limit:         ineligible.Limit,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		resp := gin.H{"error": failureMsg}
		if requestID := middleware.GetRequestIDFromCtx(c.Request.Context()); requestID != "" {
			resp["requestID"] = requestID
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
