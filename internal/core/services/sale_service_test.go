package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/core/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, issuedBefore *time.Time, createdBefore *time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, issuedBefore, createdBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) UpdateSaleStatus(ctx context.Context, saleID string, status domain.SaleStatus, updatedBy string) error {
	args := m.Called(ctx, saleID, status, updatedBy)
	return args.Error(0)
}

func (m *MockSaleRepository) SavePayment(ctx context.Context, payment domain.Payment, sale domain.Sale) error {
	args := m.Called(ctx, payment, sale)
	return args.Error(0)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) GetDefaultCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func meticalProfile() *domain.Currency {
	return &domain.Currency{
		CurrencyCode:      "MZN",
		Symbol:            "MT",
		Name:              "Metical",
		ExchangeRate:      money.MustAmount("1"),
		DecimalPlaces:     2,
		DecimalSeparator:  ",",
		ThousandSeparator: ".",
		IsDefault:         true,
	}
}

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockSaleRepository
	mockCurrency *MockCurrencyReader
	service      portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSaleRepository)
	suite.mockCurrency = new(MockCurrencyReader)
	suite.service = services.NewSaleService(suite.mockRepo, suite.mockCurrency)
}

// --- Test Cases ---

func (suite *SaleServiceTestSuite) TestCreateSale_ComputesAllFigures() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateSaleRequest{
		CustomerName: "Construtora Maputo Lda",
		CurrencyCode: "MZN",
		IncludeTax:   true,
		Lines: []dto.SaleLineRequest{
			{
				Description:        "Capacete de seguranca",
				Quantity:           money.MustAmount("10"),
				UnitPrice:          money.MustAmount("100"),
				DiscountPercentage: money.MustAmount("10"),
				TaxPercentage:      money.MustAmount("16"),
			},
		},
	}

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()
	suite.mockRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.True(sale.Subtotal.Equal(money.MustAmount("1000")), "subtotal %s", sale.Subtotal)
	suite.True(sale.DiscountAmount.Equal(money.MustAmount("100")), "discount %s", sale.DiscountAmount)
	suite.True(sale.TaxAmount.Equal(money.MustAmount("144")), "tax %s", sale.TaxAmount)
	suite.True(sale.Total.Equal(money.MustAmount("1044")), "total %s", sale.Total)
	suite.True(sale.AmountPaid.IsZero())
	suite.True(sale.AmountDue.Equal(sale.Total))
	suite.Equal(domain.SaleDraft, sale.Status)
	suite.True(sale.ExchangeRate.Equal(money.MustAmount("1")))
	suite.Require().Len(sale.Lines, 1)
	suite.True(sale.Lines[0].Total.Equal(money.MustAmount("1044")))
	suite.NotEmpty(sale.SaleNumber)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_TaxExcludedFromTotal() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		CustomerName: "Cliente Avulso",
		CurrencyCode: "MZN",
		IncludeTax:   false,
		Lines: []dto.SaleLineRequest{
			{
				Description:   "Luvas de protecao",
				Quantity:      money.MustAmount("10"),
				UnitPrice:     money.MustAmount("100"),
				TaxPercentage: money.MustAmount("16"),
			},
		},
	}

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()
	suite.mockRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	// The tax figure stays visible on the document even when it does not
	// enter the payable total.
	suite.True(sale.TaxAmount.Equal(money.MustAmount("160")), "tax %s", sale.TaxAmount)
	suite.True(sale.Total.Equal(money.MustAmount("1000")), "total %s", sale.Total)
}

func (suite *SaleServiceTestSuite) TestCreateSale_ShippingEntersTotal() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		CustomerName:   "Cliente Avulso",
		CurrencyCode:   "MZN",
		IncludeTax:     true,
		ShippingAmount: money.MustAmount("250"),
		Lines: []dto.SaleLineRequest{
			{
				Description: "Botas de biqueira",
				Quantity:    money.MustAmount("2"),
				UnitPrice:   money.MustAmount("500"),
			},
		},
	}

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()
	suite.mockRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(sale.Total.Equal(money.MustAmount("1250")), "total %s", sale.Total)
	suite.True(sale.AmountDue.Equal(money.MustAmount("1250")))
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		CustomerName: "Cliente Avulso",
		CurrencyCode: "XXX",
		Lines:        []dto.SaleLineRequest{{Description: "x", Quantity: money.MustAmount("1"), UnitPrice: money.MustAmount("1")}},
	}

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_DiscountOutOfRange() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		CustomerName: "Cliente Avulso",
		CurrencyCode: "MZN",
		Lines: []dto.SaleLineRequest{
			{
				Description:        "x",
				Quantity:           money.MustAmount("1"),
				UnitPrice:          money.MustAmount("1"),
				DiscountPercentage: money.MustAmount("101"),
			},
		},
	}

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()

	sale, err := suite.service.CreateSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestRegisterPayment_PartialLeavesBalance() {
	ctx := context.Background()
	saleID := uuid.NewString()
	stored := &domain.Sale{
		SaleID:     saleID,
		Status:     domain.SaleIssued,
		Total:      money.MustAmount("1044"),
		AmountPaid: money.Zero,
		AmountDue:  money.MustAmount("1044"),
	}

	suite.mockRepo.On("FindSaleByID", ctx, saleID).Return(stored, nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.MatchedBy(func(s domain.Sale) bool {
		return s.AmountPaid.Equal(money.MustAmount("1000")) && s.AmountDue.Equal(money.MustAmount("44"))
	})).Return(nil).Once()

	sale, err := suite.service.RegisterPayment(ctx, saleID, dto.RegisterPaymentRequest{
		Amount: money.MustAmount("1000"),
		Method: "TRANSFERENCIA",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(sale.AmountDue.Equal(money.MustAmount("44")))
	suite.Equal(domain.SaleIssued, sale.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRegisterPayment_OverpaymentGoesNegative() {
	ctx := context.Background()
	saleID := uuid.NewString()
	stored := &domain.Sale{
		SaleID:     saleID,
		Status:     domain.SaleIssued,
		Total:      money.MustAmount("1044"),
		AmountPaid: money.Zero,
		AmountDue:  money.MustAmount("1044"),
	}

	suite.mockRepo.On("FindSaleByID", ctx, saleID).Return(stored, nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	sale, err := suite.service.RegisterPayment(ctx, saleID, dto.RegisterPaymentRequest{
		Amount: money.MustAmount("2000"),
		Method: "NUMERARIO",
	}, uuid.NewString())

	suite.Require().NoError(err)
	// Overpayment stays visible as a negative balance owed back.
	suite.True(sale.AmountDue.Equal(money.MustAmount("-956")), "due %s", sale.AmountDue)
	suite.Equal(domain.SalePaid, sale.Status)
}

func (suite *SaleServiceTestSuite) TestRegisterPayment_RejectsNonPositive() {
	ctx := context.Background()

	sale, err := suite.service.RegisterPayment(ctx, uuid.NewString(), dto.RegisterPaymentRequest{
		Amount: money.MustAmount("0"),
		Method: "NUMERARIO",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSaleByID", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRegisterPayment_CancelledSale() {
	ctx := context.Background()
	saleID := uuid.NewString()
	stored := &domain.Sale{SaleID: saleID, Status: domain.SaleCancelled}

	suite.mockRepo.On("FindSaleByID", ctx, saleID).Return(stored, nil).Once()

	sale, err := suite.service.RegisterPayment(ctx, saleID, dto.RegisterPaymentRequest{
		Amount: money.MustAmount("10"),
		Method: "NUMERARIO",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestUpdateSaleStatus_CancelledIsFinal() {
	ctx := context.Background()
	saleID := uuid.NewString()
	stored := &domain.Sale{SaleID: saleID, Status: domain.SaleCancelled}

	suite.mockRepo.On("FindSaleByID", ctx, saleID).Return(stored, nil).Once()

	sale, err := suite.service.UpdateSaleStatus(ctx, saleID, domain.SaleIssued, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSaleStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestGetSaleDocument_FormatsWithCurrencyRules() {
	ctx := context.Background()
	saleID := uuid.NewString()
	issuedAt := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	stored := &domain.Sale{
		SaleID:         saleID,
		SaleNumber:     "VD-20260314-ABC123",
		CustomerName:   "Construtora Maputo Lda",
		CurrencyCode:   "MZN",
		Status:         domain.SaleIssued,
		IncludeTax:     true,
		ShippingAmount: money.Zero,
		Subtotal:       money.MustAmount("1234567.89"),
		DiscountAmount: money.Zero,
		TaxAmount:      money.Zero,
		Total:          money.MustAmount("1234567.89"),
		AmountPaid:     money.Zero,
		AmountDue:      money.MustAmount("1234567.89"),
		IssuedAt:       issuedAt,
		Lines: []domain.SaleLine{
			{
				Description: "Fornecimento de EPI",
				Quantity:    money.MustAmount("1"),
				UnitPrice:   money.MustAmount("1234567.89"),
				Subtotal:    money.MustAmount("1234567.89"),
				Total:       money.MustAmount("1234567.89"),
			},
		},
	}

	suite.mockRepo.On("FindSaleByID", ctx, saleID).Return(stored, nil).Once()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()

	doc, err := suite.service.GetSaleDocument(ctx, saleID)

	suite.Require().NoError(err)
	suite.Equal("VD-20260314-ABC123", doc.DocumentNumber)
	suite.Equal("MT 1.234.567,89", doc.Total)
	suite.Equal("MT 1.234.567,89", doc.AmountDue)
	suite.Equal("MT 0,00", doc.AmountPaid)
	suite.Require().Len(doc.Lines, 1)
	suite.Equal("MT 1.234.567,89", doc.Lines[0].UnitPrice)
	suite.Equal(issuedAt, doc.IssuedAt)
}

func (suite *SaleServiceTestSuite) TestListSales_PagesWithToken() {
	ctx := context.Background()
	now := time.Now()
	sales := []domain.Sale{
		{SaleID: "a", IssuedAt: now, AuditFields: domain.AuditFields{CreatedAt: now}},
		{SaleID: "b", IssuedAt: now.Add(-time.Hour), AuditFields: domain.AuditFields{CreatedAt: now.Add(-time.Hour)}},
		{SaleID: "c", IssuedAt: now.Add(-2 * time.Hour), AuditFields: domain.AuditFields{CreatedAt: now.Add(-2 * time.Hour)}},
	}

	suite.mockRepo.On("ListSales", ctx, 3, (*time.Time)(nil), (*time.Time)(nil)).Return(sales, nil).Once()

	page, token, err := suite.service.ListSales(ctx, 2, "")

	suite.Require().NoError(err)
	suite.Len(page, 2)
	suite.NotEmpty(token)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
