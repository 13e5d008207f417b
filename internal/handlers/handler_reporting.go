package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the recomputed report views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/profit-loss", h.getProfitAndLoss)
	}
}

// reportWindow resolves the [from, to) window from query params. With no
// params the window is today; with only from it is that single day.
func reportWindow(c *gin.Context) (from, to time.Time, ok bool) {
	var params dto.ReportWindowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}

	if params.From != nil {
		from = *params.From
	} else {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if params.To != nil {
		to = *params.To
	} else {
		to = from.AddDate(0, 0, 1)
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Cash in/out, sales count and low-stock count over the window; defaults to today
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := reportWindow(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// getCashFlow godoc
// @Summary Cash flow by category
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} dto.CategoryCashFlowResponse
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := reportWindow(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.GetCategoryCashFlow(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build cash flow report")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryCashFlowResponses(rows))
}

// getProfitAndLoss godoc
// @Summary Profit and loss
// @Description Derived from ledger entries over the window; personal movements are excluded
// @Tags reports
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Security BearerAuth
// @Router /reports/profit-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := reportWindow(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build profit and loss report")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}
