package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/razalrahmanp/palaka-sub003/internal/dto"
	"github.com/razalrahmanp/palaka-sub003/internal/middleware"
)

// ScopePayrollRead is required to read employee ledgers.
const ScopePayrollRead = "payroll:read"

// ledgerHandler handles HTTP requests for counter-party ledgers
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

func newLedgerHandler(ls portssvc.LedgerService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers the ledger routes on the given group.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledgers")
	{
		ledgers.GET("/:counterparty_type/:counterparty_id", h.getLedger)
	}
}

// getLedger godoc
// @Summary Get a counter-party ledger
// @Description Merges every record source of the counter-party into one chronologically ordered ledger with running balances, summary totals and period breakdowns
// @Tags ledgers
// @Produce json
// @Param counterparty_type path string true "customer, supplier or employee"
// @Param counterparty_id path string true "Counter-party ID"
// @Param asOf query string false "Reference date for period buckets (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /ledgers/{counterparty_type}/{counterparty_id} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	counterpartyType, err := domain.ParseCounterpartyType(c.Param("counterparty_type"))
	if err != nil {
		logger.Warn("Invalid counterparty type", slog.String("counterparty_type", c.Param("counterparty_type")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	counterpartyID := c.Param("counterparty_id")

	if counterpartyType == domain.Employee && !middleware.HasScope(c, ScopePayrollRead) {
		err := fmt.Errorf("%w: employee ledgers require the %s scope", apperrors.ErrForbidden, ScopePayrollRead)
		respondWithError(c, logger.With(slog.String("user_id", userID), slog.String("counterparty_id", counterpartyID)), err, "Failed to build ledger")
		return
	}

	var asOf time.Time
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		asOf, err = time.Parse("2006-01-02", asOfStr)
		if err != nil {
			logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	logger = logger.With(
		slog.String("counterparty_type", string(counterpartyType)),
		slog.String("counterparty_id", counterpartyID),
	)
	logger.Info("Received request to build ledger")

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), counterpartyID, counterpartyType, asOf)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build ledger")
		return
	}

	if ledger.Incomplete {
		logger.Warn("Serving incomplete ledger", slog.Any("failed_sources", ledger.FailedSources))
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
