package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// personalHandler handles HTTP requests for the owner's private cash
// movements.
type personalHandler struct {
	personalService portssvc.PersonalSvcFacade
}

func newPersonalHandler(ps portssvc.PersonalSvcFacade) *personalHandler {
	return &personalHandler{personalService: ps}
}

// registerPersonalRoutes registers routes related to personal transactions.
func registerPersonalRoutes(rg *gin.RouterGroup, personalService portssvc.PersonalSvcFacade) {
	h := newPersonalHandler(personalService)

	personal := rg.Group("/personal-transactions")
	{
		personal.POST("", h.recordTransaction)
		personal.GET("", h.listTransactions)
	}
}

// recordTransaction godoc
// @Summary Record a personal transaction
// @Description Persists the private movement and mirrors it into the ledger under category PERSONAL
// @Tags personal
// @Accept json
// @Produce json
// @Param transaction body dto.RecordPersonalTxnRequest true "Transaction details"
// @Success 201 {object} dto.PersonalTxnResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /personal-transactions [post]
func (h *personalHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPersonalTxnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	personal, err := h.personalService.RecordPersonalTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record personal transaction")
		return
	}

	logger.Info("Personal transaction recorded", slog.Int64("personal_txn_id", personal.PersonalTxnID))
	c.JSON(http.StatusCreated, dto.ToPersonalTxnResponse(personal))
}

// listTransactions godoc
// @Summary List personal transactions
// @Tags personal
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.PersonalTxnResponse
// @Security BearerAuth
// @Router /personal-transactions [get]
func (h *personalHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseLimitOffset(c)

	personals, err := h.personalService.ListPersonalTransactions(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list personal transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonalTxnResponses(personals))
}
