package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// purchaseHandler handles HTTP requests for incoming trade.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.recordPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
	}
}

// recordPurchase godoc
// @Summary Record a purchase
// @Description Atomically persists the purchase, its lines, stock IN deltas and the optional payment with its ledger entry
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.RecordPurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Supplier inactive"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Purchase recorded",
		slog.Int64("purchase_id", purchase.PurchaseID),
		slog.Int64("supplier_id", purchase.SupplierID),
		slog.String("total", purchase.TotalAmount.String()))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase, nil))
}

// getPurchase godoc
// @Summary Get a purchase with its lines
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	purchase, items, err := h.purchaseService.GetPurchaseWithItems(c.Request.Context(), purchaseID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve purchase")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase, items))
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Param supplierID query int false "Filter by supplier"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.PurchaseResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseLimitOffset(c)

	var supplierID *int64
	if raw := c.Query("supplierID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid supplierID"})
			return
		}
		supplierID = &id
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), supplierID, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponses(purchases))
}
