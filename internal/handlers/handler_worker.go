package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

// workerHandler handles HTTP requests for worker master data, attendance,
// salary estimation and payments.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

// registerWorkerRoutes registers routes related to workers.
func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("", h.listWorkers)
		workers.GET("/:id", h.getWorker)
		workers.PUT("/:id", h.updateWorker)
		workers.DELETE("/:id", h.deactivateWorker)
		workers.POST("/:id/reactivate", h.reactivateWorker)
		workers.POST("/:id/attendance", h.markAttendance)
		workers.GET("/:id/attendance", h.listAttendance)
		workers.GET("/:id/salary-estimate", h.estimateSalary)
		workers.POST("/:id/payments", h.payWorker)
		workers.GET("/:id/payments", h.listPayments)
		workers.GET("/:id/ledger", h.getLedger)
	}
}

// createWorker godoc
// @Summary Create a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create worker")
		return
	}

	logger.Info("Worker created", slog.Int64("worker_id", worker.WorkerID))
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// getWorker godoc
// @Summary Get a worker
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve worker")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// listWorkers godoc
// @Summary List workers
// @Tags workers
// @Produce json
// @Param activeOnly query bool false "Only active workers"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.WorkerResponse
// @Security BearerAuth
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := parseLimitOffset(c)
	activeOnly := c.Query("activeOnly") == "true"

	workers, err := h.workerService.ListWorkers(c.Request.Context(), activeOnly, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list workers")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponses(workers))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param worker body dto.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), workerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update worker")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// deactivateWorker godoc
// @Summary Deactivate a worker
// @Tags workers
// @Param id path int true "Worker ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [delete]
func (h *workerHandler) deactivateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerService.DeactivateWorker(c.Request.Context(), workerID); err != nil {
		respondError(c, logger, err, "Failed to deactivate worker")
		return
	}

	c.Status(http.StatusNoContent)
}

// reactivateWorker godoc
// @Summary Reactivate a worker
// @Tags workers
// @Param id path int true "Worker ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/reactivate [post]
func (h *workerHandler) reactivateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerService.ReactivateWorker(c.Request.Context(), workerID); err != nil {
		respondError(c, logger, err, "Failed to reactivate worker")
		return
	}

	c.Status(http.StatusNoContent)
}

// markAttendance godoc
// @Summary Mark attendance for a date
// @Description Upserts the (worker, date) fact; re-marking the same date replaces the prior status
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param attendance body dto.MarkAttendanceRequest true "Attendance details"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Worker inactive"
// @Security BearerAuth
// @Router /workers/{id}/attendance [post]
func (h *workerHandler) markAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	attendance, err := h.workerService.MarkAttendance(c.Request.Context(), workerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to mark attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}

// listAttendance godoc
// @Summary List attendance within a period
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Security BearerAuth
// @Router /workers/{id}/attendance [get]
func (h *workerHandler) listAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	from, to, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	attendance, err := h.workerService.ListAttendance(c.Request.Context(), workerID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponses(attendance))
}

// estimateSalary godoc
// @Summary Estimate salary for a period
// @Description Derives the earned amount from the worker's salary type and attendance facts
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.SalaryEstimateResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/salary-estimate [get]
func (h *workerHandler) estimateSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	from, to, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	estimate, err := h.workerService.EstimateSalary(c.Request.Context(), workerID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to estimate salary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryEstimateResponse(estimate))
}

// payWorker godoc
// @Summary Pay a worker
// @Description Atomically persists the disbursement and its ledger entry; inactive workers are rejected before any write
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param payment body dto.PayWorkerRequest true "Payment details"
// @Success 201 {object} dto.WorkerPaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Worker inactive"
// @Security BearerAuth
// @Router /workers/{id}/payments [post]
func (h *workerHandler) payWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PayWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.workerService.PayWorker(c.Request.Context(), workerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to pay worker")
		return
	}

	logger.Info("Worker payment recorded",
		slog.Int64("worker_id", workerID),
		slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToWorkerPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a worker's payments
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.WorkerPaymentResponse
// @Security BearerAuth
// @Router /workers/{id}/payments [get]
func (h *workerHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, offset := parseLimitOffset(c)

	payments, err := h.workerService.ListWorkerPayments(c.Request.Context(), workerID, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list worker payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerPaymentResponses(payments))
}

// getLedger godoc
// @Summary Get accrued-vs-paid for a worker over a period
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.WorkerLedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/ledger [get]
func (h *workerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	from, to, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	ledger, err := h.workerService.GetWorkerLedger(c.Request.Context(), workerID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build worker ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerLedgerResponse(ledger))
}

// parsePeriodQuery reads the required from/to date query parameters.
func parsePeriodQuery(c *gin.Context) (from, to time.Time, ok bool) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
