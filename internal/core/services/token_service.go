package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
	"github.com/shopledger/shop_ledger_app/internal/platform/config"
	"github.com/shopledger/shop_ledger_app/internal/utils"
)

type tokenService struct {
	BaseService
	cfg *config.Config
	clk clock.Clock
}

// NewTokenService creates the single-operator authentication service. There
// is no user table; credentials come from configuration.
func NewTokenService(cfg *config.Config, clk clock.Clock) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg: cfg,
		clk: clk,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.cfg.AdminUsername || !utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash) {
		return nil, apperrors.NewAppError(401, "invalid credentials", apperrors.ErrValidation)
	}

	token, err := utils.GenerateJWT(req.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: s.clk.Now().Add(s.cfg.JWTExpiryDuration),
	}, nil
}
