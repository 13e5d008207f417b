package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// orderHandler handles HTTP requests for reservation-style orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.POST("/:id/convert", h.convertOrder)
		orders.POST("/:id/cancel", h.cancelOrder)
	}
}

// createOrder godoc
// @Summary Create an order
// @Description Records the reservation and posts the advance if any; no stock moves until conversion
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create order")
		return
	}

	logger.Info("Order created", slog.Int64("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order, nil))
}

// convertOrder godoc
// @Summary Convert a pending order into a sale
// @Description Deducts the reserved stock and posts only the remaining balance; converting twice fails
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param conversion body dto.ConvertOrderRequest true "Conversion details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Order not pending or invalid input"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/convert [post]
func (h *orderHandler) convertOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ConvertOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.orderService.ConvertOrderToSale(c.Request.Context(), orderID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to convert order")
		return
	}

	logger.Info("Order converted",
		slog.Int64("order_id", orderID),
		slog.Int64("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale, nil, nil))
}

// cancelOrder godoc
// @Summary Cancel a pending order
// @Description Flips the order to CANCELLED; any advance already posted stays in the ledger
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Order not pending"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, logger, err, "Failed to cancel order")
		return
	}

	logger.Info("Order cancelled", slog.Int64("order_id", orderID))
	c.Status(http.StatusNoContent)
}

// getOrder godoc
// @Summary Get an order with its reserved lines
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, items, err := h.orderService.GetOrderWithItems(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order, items))
}

// listOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param status query string false "PENDING, COMPLETED or CANCELLED"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.OrderResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseLimitOffset(c)

	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.OrderStatus(raw)
		switch s {
		case domain.OrderPending, domain.OrderCompleted, domain.OrderCancelled:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
			return
		}
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}
