package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
	"github.com/jefremassingue/sales-plat-backend/internal/handlers"
	"github.com/jefremassingue/sales-plat-backend/internal/platform/config"
	"github.com/jefremassingue/sales-plat-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, limit int, nextToken string) ([]domain.Sale, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Sale), args.String(1), args.Error(2)
}
func (m *MockSaleService) ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockSaleService) GetSaleDocument(ctx context.Context, saleID string) (*dto.DocumentResponse, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DocumentResponse), args.Error(1)
}
func (m *MockSaleService) UpdateSaleStatus(ctx context.Context, saleID string, status domain.SaleStatus, updaterUserID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, status, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) RegisterPayment(ctx context.Context, saleID string, req dto.RegisterPaymentRequest, creatorUserID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *SaleHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "salesplat-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockSaleService = new(MockSaleService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger route setup
	}
	container := &portssvc.ServiceContainer{
		Sale: suite.mockSaleService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *SaleHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	return req
}

// --- Test Cases ---

func (suite *SaleHandlerTestSuite) TestGetSaleDocument_Success() {
	saleID := uuid.NewString()
	expected := &dto.DocumentResponse{
		DocumentNumber: "VD-20260830-A1B2C3",
		CustomerName:   "Construtora Maputo Lda",
		CurrencyCode:   "MZN",
		IssuedAt:       time.Now(),
		Subtotal:       "MT 1.234.567,89",
		DiscountAmount: "MT 0,00",
		TaxAmount:      "MT 0,00",
		ShippingAmount: "MT 0,00",
		Total:          "MT 1.234.567,89",
		AmountPaid:     "MT 0,00",
		AmountDue:      "MT 1.234.567,89",
	}

	suite.mockSaleService.On("GetSaleDocument", mock.Anything, saleID).Return(expected, nil).Once()

	req := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/sales/%s/document", saleID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.DocumentNumber, body.DocumentNumber)
	suite.Equal("MT 1.234.567,89", body.Total)
	suite.Equal("MT 1.234.567,89", body.AmountDue)

	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestGetSaleByID_NotFound() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("GetSaleByID", mock.Anything, saleID).Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/sales/"+saleID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_ValidationError() {
	reqBody := dto.CreateSaleRequest{
		CustomerName: "Cliente Teste",
		CurrencyCode: "MZN",
		Lines: []dto.SaleLineRequest{
			{Description: "Capacete", Quantity: money.MustAmount("1"), UnitPrice: money.MustAmount("100"), DiscountPercentage: money.MustAmount("150")},
		},
	}
	payload, _ := json.Marshal(reqBody)

	suite.mockSaleService.On("CreateSale", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: discount percentage must be between 0 and 100", apperrors.ErrValidation)).Once()

	req := suite.authedRequest(http.MethodPost, "/api/v1/sales", payload)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestRegisterPayment_Success() {
	saleID := uuid.NewString()
	updated := &domain.Sale{
		SaleID:     saleID,
		SaleNumber: "VD-20260830-D4E5F6",
		Status:     domain.SalePaid,
		Total:      money.MustAmount("1044"),
		AmountPaid: money.MustAmount("1044"),
		AmountDue:  money.Zero,
	}
	suite.mockSaleService.On("RegisterPayment", mock.Anything, saleID,
		mock.MatchedBy(func(r dto.RegisterPaymentRequest) bool {
			return r.Amount.Equal(money.MustAmount("1044")) && r.Method == "CASH"
		}), mock.Anything).Return(updated, nil).Once()

	payload, _ := json.Marshal(dto.RegisterPaymentRequest{
		Amount: money.MustAmount("1044"),
		Method: "CASH",
	})
	req := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/sales/%s/payments", saleID), payload)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.SaleResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.SalePaid, body.Status)
	suite.True(body.AmountDue.IsZero())

	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListSales_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "ListSales")
}

// --- Run Test Suite ---
func TestSaleHandler(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
