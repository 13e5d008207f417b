package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
	"github.com/shopledger/shop_ledger_app/internal/platform/config"
	"github.com/shopledger/shop_ledger_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTestConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "test-secret-key-for-signing",
		JWTExpiryDuration: 12 * time.Hour,
		JWTIssuer:         "shop-ledger-app",
		AdminUsername:     "owner",
		AdminPasswordHash: hash,
	}
}

func TestLogin_Success(t *testing.T) {
	cfg := tokenTestConfig(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	service := services.NewTokenService(cfg, clock.Fixed{Instant: now})

	resp, err := service.Login(context.Background(), dto.LoginRequest{Username: "owner", Password: "correct horse"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, now.Add(cfg.JWTExpiryDuration), resp.ExpiresAt)

	claims, err := utils.ParseAndValidateJWT(resp.Token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	cfg := tokenTestConfig(t)
	service := services.NewTokenService(cfg, clock.NewSystemClock())

	resp, err := service.Login(context.Background(), dto.LoginRequest{Username: "owner", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin_UnknownUsername(t *testing.T) {
	cfg := tokenTestConfig(t)
	service := services.NewTokenService(cfg, clock.NewSystemClock())

	resp, err := service.Login(context.Background(), dto.LoginRequest{Username: "intruder", Password: "correct horse"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
