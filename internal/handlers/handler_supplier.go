package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// supplierHandler handles HTTP requests for supplier master data, payments
// and the recomputed due/ledger views.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deactivateSupplier)
		suppliers.POST("/:id/reactivate", h.reactivateSupplier)
		suppliers.POST("/:id/payments", h.paySupplier)
		suppliers.GET("/:id/payments", h.listPayments)
		suppliers.GET("/:id/due", h.getDue)
		suppliers.GET("/:id/ledger", h.getLedger)
	}
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create supplier")
		return
	}

	logger.Info("Supplier created", slog.Int64("supplier_id", supplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// getSupplier godoc
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve supplier")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param activeOnly query bool false "Only active suppliers"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.SupplierResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseLimitOffset(c)
	activeOnly := c.Query("activeOnly") == "true"

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), activeOnly, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list suppliers")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update supplier")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deactivateSupplier godoc
// @Summary Deactivate a supplier
// @Tags suppliers
// @Param id path int true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deactivateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.DeactivateSupplier(c.Request.Context(), supplierID); err != nil {
		respondError(c, logger, err, "Failed to deactivate supplier")
		return
	}

	c.Status(http.StatusNoContent)
}

// reactivateSupplier godoc
// @Summary Reactivate a supplier
// @Tags suppliers
// @Param id path int true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id}/reactivate [post]
func (h *supplierHandler) reactivateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.ReactivateSupplier(c.Request.Context(), supplierID); err != nil {
		respondError(c, logger, err, "Failed to reactivate supplier")
		return
	}

	c.Status(http.StatusNoContent)
}

// paySupplier godoc
// @Summary Pay a supplier
// @Description Atomically persists the payment and its ledger entry; purchases' frozen snapshots are never rewritten
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param payment body dto.PaySupplierRequest true "Payment details"
// @Success 201 {object} dto.SupplierPaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Supplier inactive"
// @Security BearerAuth
// @Router /suppliers/{id}/payments [post]
func (h *supplierHandler) paySupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PaySupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.supplierService.PaySupplier(c.Request.Context(), supplierID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to pay supplier")
		return
	}

	logger.Info("Supplier payment recorded",
		slog.Int64("supplier_id", supplierID),
		slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToSupplierPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a supplier's payments
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.SupplierPaymentResponse
// @Security BearerAuth
// @Router /suppliers/{id}/payments [get]
func (h *supplierHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, offset := parseLimitOffset(c)

	payments, err := h.supplierService.ListSupplierPayments(c.Request.Context(), supplierID, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list supplier payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierPaymentResponses(payments))
}

// getDue godoc
// @Summary Get a supplier's outstanding due
// @Description Recomputed from purchase and payment sums on every call
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} dto.SupplierDueResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id}/due [get]
func (h *supplierHandler) getDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	due, err := h.supplierService.GetSupplierDue(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute supplier due")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierDueResponse(due))
}

// getLedger godoc
// @Summary Get a supplier's merged purchase/payment ledger
// @Description Time-ordered sequence with a running due figure
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {array} dto.SupplierLedgerEntryResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id}/ledger [get]
func (h *supplierHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.supplierService.GetSupplierLedger(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, logger, err, "Failed to build supplier ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierLedgerEntryResponses(entries))
}
