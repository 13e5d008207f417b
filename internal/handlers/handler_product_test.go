package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/handlers"
	"github.com/shopledger/shop_ledger_app/internal/platform/config"
	"github.com/shopledger/shop_ledger_app/internal/utils"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) DeactivateProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductService) ReactivateProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Test Suite ---
type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockProductService
	jwtSecret   string
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockProductService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps the swagger UI out of the test router
	}
	container := &portssvc.ServiceContainer{Product: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ProductHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateJWT("owner", suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return "Bearer " + token
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	req := dto.CreateProductRequest{
		Name:         "Tall Tubular Battery",
		Brand:        "Volta",
		SellingPrice: decimal.RequireFromString("11200"),
	}
	created := &domain.Product{
		ProductID:    7,
		Name:         req.Name,
		Brand:        req.Brand,
		SellingPrice: req.SellingPrice,
		Status:       domain.StatusActive,
	}

	suite.mockService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(r dto.CreateProductRequest) bool {
		return r.Name == req.Name
	})).Return(created, nil).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	httpReq.Header.Set("Authorization", suite.authHeader())
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ProductID)
	suite.Equal("ACTIVE", resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_MissingName() {
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte(`{"brand":"Volta"}`)))
	httpReq.Header.Set("Authorization", suite.authHeader())
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	suite.mockService.On("GetProductByID", mock.Anything, int64(404)).Return(nil, apperrors.NewNotFoundError("product 404 not found")).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/products/404", nil)
	httpReq.Header.Set("Authorization", suite.authHeader())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestGetProduct_BadIDParam() {
	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
	httpReq.Header.Set("Authorization", suite.authHeader())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetProductByID", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestListProducts_ActiveOnly() {
	products := []domain.Product{{ProductID: 1, Name: "Battery", Status: domain.StatusActive}}

	suite.mockService.On("ListProducts", mock.Anything, true, 50, 0).Return(products, nil).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/products?activeOnly=true", nil)
	httpReq.Header.Set("Authorization", suite.authHeader())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestMissingToken_Unauthorized() {
	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/products", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
