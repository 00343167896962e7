package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/razalrahmanp/palaka-sub003/internal/dto"
	"github.com/razalrahmanp/palaka-sub003/internal/middleware"
)

type emiHandler struct {
	emiService portssvc.EMIService
}

func newEMIHandler(es portssvc.EMIService) *emiHandler {
	return &emiHandler{emiService: es}
}

// RegisterEMIRoutes registers the EMI catalog and quote routes on the given group.
func RegisterEMIRoutes(rg *gin.RouterGroup, emiService portssvc.EMIService) {
	h := newEMIHandler(emiService)

	emi := rg.Group("/emi")
	{
		emi.GET("/plans", h.listPlans)
		emi.POST("/quote", h.quote)
		emi.POST("/quotes", h.quoteAll)
		emi.POST("/accept-preview", h.previewAcceptance)
	}
}

// listPlans godoc
// @Summary List EMI plans
// @Tags emi
// @Produce json
// @Success 200 {object} dto.ListEMIPlansResponse
// @Failure 500 {object} map[string]string "Failed to list EMI plans"
// @Security BearerAuth
// @Router /emi/plans [get]
func (h *emiHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plans, err := h.emiService.ListPlans(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list EMI plans")
		return
	}
	c.JSON(http.StatusOK, dto.ListEMIPlansResponse{Plans: plans})
}

// quote godoc
// @Summary Quote an EMI plan
// @Description Computes the monthly installment, total payable and total interest of one plan for an order
// @Tags emi
// @Accept json
// @Produce json
// @Param request body dto.EMIQuoteRequest true "Quote request"
// @Success 200 {object} domain.EMIQuote
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 422 {object} dto.IneligibleFinanceResponse "Finance amount outside plan bounds"
// @Security BearerAuth
// @Router /emi/quote [post]
func (h *emiHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EMIQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind EMI quote request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	quote, err := h.emiService.QuotePlan(c.Request.Context(), req.PlanID, req.OrderAmount, req.DownPayment)
	if err != nil {
		respondWithError(c, logger.With(slog.String("plan_id", req.PlanID)), err, "Failed to compute EMI quote")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// quoteAll godoc
// @Summary Quote every EMI plan
// @Description Quotes every catalog plan for an order; plans whose bounds exclude the finance amount are reported as ineligible
// @Tags emi
// @Accept json
// @Produce json
// @Param request body dto.EMIQuotesRequest true "Quotes request"
// @Success 200 {object} dto.EMIQuotesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /emi/quotes [post]
func (h *emiHandler) quoteAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EMIQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind EMI quotes request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	quotes, err := h.emiService.QuoteAll(c.Request.Context(), req.OrderAmount, req.DownPayment)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute EMI quotes")
		return
	}
	c.JSON(http.StatusOK, dto.EMIQuotesResponse{
		OrderAmount: req.OrderAmount,
		DownPayment: req.DownPayment,
		Quotes:      quotes,
	})
}

// previewAcceptance godoc
// @Summary Preview EMI acceptance
// @Description Returns the emi_finance ledger entry accepting the plan would add to the customer ledger. Nothing is persisted.
// @Tags emi
// @Accept json
// @Produce json
// @Param request body dto.AcceptPreviewRequest true "Acceptance preview request"
// @Success 200 {object} domain.AcceptancePreview
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 422 {object} dto.IneligibleFinanceResponse "Finance amount outside plan bounds"
// @Security BearerAuth
// @Router /emi/accept-preview [post]
func (h *emiHandler) previewAcceptance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AcceptPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind EMI acceptance preview request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var at time.Time
	if req.AcceptedAt != nil {
		at = *req.AcceptedAt
	}

	preview, err := h.emiService.PreviewAcceptance(c.Request.Context(), req.PlanID, req.CustomerID, req.OrderReference, req.OrderAmount, req.DownPayment, at)
	if err != nil {
		respondWithError(c, logger.With(slog.String("plan_id", req.PlanID), slog.String("customer_id", req.CustomerID)), err, "Failed to preview EMI acceptance")
		return
	}
	c.JSON(http.StatusOK, preview)
}
