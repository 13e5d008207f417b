package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
)

type authHandler struct {
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{tokenService: ts}
}

// registerAuthRoutes sets up the public login route with its own tight rate
// limit, separate from the API-wide one.
func registerAuthRoutes(r *gin.Engine, tokenService portssvc.TokenSvcFacade) {
	h := newAuthHandler(tokenService)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth", limitergin.NewMiddleware(ipLimiter))
	{
		auth.POST("/login", h.login)
	}
}

// login godoc
// @Summary Operator login
// @Description Verifies the configured operator credentials and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.tokenService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Login failed")
		return
	}

	logger.Info("Operator logged in", slog.String("username", req.Username))
	c.JSON(http.StatusOK, resp)
}
