package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// TokenSvcFacade handles the single-operator login and token issuance.
type TokenSvcFacade interface {
	// Login verifies credentials against the configured operator account and
	// issues a signed bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
