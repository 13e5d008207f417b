package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// stockHandler handles HTTP requests for inventory views and adjustments.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers routes related to stock.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stocks := rg.Group("/stocks")
	{
		stocks.GET("", h.listStocks)
		stocks.GET("/low", h.listLowStocks)
		stocks.GET("/:productID", h.getStock)
		stocks.GET("/:productID/adjustments", h.listAdjustments)
		stocks.POST("/adjustments", h.adjustStock)
	}
}

// listStocks godoc
// @Summary List stock levels
// @Tags stocks
// @Produce json
// @Success 200 {array} dto.StockResponse
// @Security BearerAuth
// @Router /stocks [get]
func (h *stockHandler) listStocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stocks, err := h.stockService.ListStocks(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list stocks")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponses(stocks))
}

// listLowStocks godoc
// @Summary List products at or below the low-stock threshold
// @Tags stocks
// @Produce json
// @Success 200 {array} dto.StockResponse
// @Security BearerAuth
// @Router /stocks/low [get]
func (h *stockHandler) listLowStocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stocks, err := h.stockService.ListLowStocks(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list low stocks")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponses(stocks))
}

// getStock godoc
// @Summary Get the stock row for a product
// @Tags stocks
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} ErrorResponse "Stock not found"
// @Security BearerAuth
// @Router /stocks/{productID} [get]
func (h *stockHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	stock, err := h.stockService.GetStockByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

// listAdjustments godoc
// @Summary List a product's stock adjustment audit trail
// @Description Newest first; every stock movement has a row here
// @Tags stocks
// @Produce json
// @Param productID path int true "Product ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.StockAdjustmentResponse
// @Security BearerAuth
// @Router /stocks/{productID}/adjustments [get]
func (h *stockHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}
	limit, offset := parseLimitOffset(c)

	adjustments, err := h.stockService.ListAdjustments(c.Request.Context(), productID, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list adjustments")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockAdjustmentResponses(adjustments))
}

// adjustStock godoc
// @Summary Manually adjust stock
// @Description Applies a signed quantity delta with an audit row; posts a ledger entry only when the adjustment has financial impact
// @Tags stocks
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustStockRequest true "Adjustment details"
// @Success 201 {object} dto.StockAdjustmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /stocks/adjustments [post]
func (h *stockHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adjustment, err := h.stockService.AdjustStock(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to adjust stock")
		return
	}

	logger.Info("Stock adjusted",
		slog.Int64("product_id", req.ProductID),
		slog.String("direction", req.Direction),
		slog.String("quantity", req.Quantity.String()))
	c.JSON(http.StatusCreated, dto.ToStockAdjustmentResponse(adjustment))
}
