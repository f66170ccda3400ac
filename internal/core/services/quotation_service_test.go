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

// --- Mock QuotationRepository ---
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) ListQuotations(ctx context.Context, limit int, createdBefore *time.Time) ([]domain.Quotation, error) {
	args := m.Called(ctx, limit, createdBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updatedBy string) error {
	args := m.Called(ctx, quotationID, status, updatedBy)
	return args.Error(0)
}

func (m *MockQuotationRepository) MarkConverted(ctx context.Context, quotationID string, sale domain.Sale, updatedBy string) error {
	args := m.Called(ctx, quotationID, sale, updatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type QuotationServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockQuotationRepository
	mockCurrency *MockCurrencyReader
	service      portssvc.QuotationSvcFacade
}

func (suite *QuotationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockQuotationRepository)
	suite.mockCurrency = new(MockCurrencyReader)
	suite.service = services.NewQuotationService(suite.mockRepo, suite.mockCurrency)
}

func acceptedQuotation() *domain.Quotation {
	return &domain.Quotation{
		QuotationID:  uuid.NewString(),
		CustomerName: "Construtora Maputo Lda",
		CurrencyCode: "MZN",
		ExchangeRate: money.MustAmount("1"),
		Status:       domain.QuotationAccepted,
		IncludeTax:   true,
		Subtotal:     money.MustAmount("1000"),
		TaxAmount:    money.MustAmount("144"),
		Total:        money.MustAmount("1044"),
		ValidUntil:   time.Now().Add(48 * time.Hour),
		Lines: []domain.QuotationLine{
			{
				Description:        "Capacete de seguranca",
				Quantity:           money.MustAmount("10"),
				UnitPrice:          money.MustAmount("100"),
				DiscountPercentage: money.MustAmount("10"),
				TaxPercentage:      money.MustAmount("16"),
			},
		},
	}
}

// --- Test Cases ---

func (suite *QuotationServiceTestSuite) TestCreateQuotation_ComputesFigures() {
	ctx := context.Background()
	req := dto.CreateQuotationRequest{
		CustomerName: "Construtora Maputo Lda",
		CurrencyCode: "MZN",
		IncludeTax:   true,
		ValidUntil:   time.Now().Add(72 * time.Hour),
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
	suite.mockRepo.On("SaveQuotation", ctx, mock.AnythingOfType("domain.Quotation")).Return(nil).Once()

	quotation, err := suite.service.CreateQuotation(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(quotation.Subtotal.Equal(money.MustAmount("1000")))
	suite.True(quotation.DiscountAmount.Equal(money.MustAmount("100")))
	suite.True(quotation.TaxAmount.Equal(money.MustAmount("144")))
	suite.True(quotation.Total.Equal(money.MustAmount("1044")))
	suite.Equal(domain.QuotationDraft, quotation.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_PastValidUntil() {
	ctx := context.Background()
	req := dto.CreateQuotationRequest{
		CustomerName: "Cliente Avulso",
		CurrencyCode: "MZN",
		ValidUntil:   time.Now().Add(-time.Hour),
		Lines:        []dto.SaleLineRequest{{Description: "x", Quantity: money.MustAmount("1"), UnitPrice: money.MustAmount("1")}},
	}

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()

	quotation, err := suite.service.CreateQuotation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuotationServiceTestSuite) TestConvertToSale_ReproducesQuotationTotals() {
	ctx := context.Background()
	quotation := acceptedQuotation()
	creatorUserID := uuid.NewString()

	suite.mockRepo.On("FindQuotationByID", ctx, quotation.QuotationID).Return(quotation, nil).Once()
	suite.mockRepo.On("MarkConverted", ctx, quotation.QuotationID, mock.MatchedBy(func(s domain.Sale) bool {
		return s.Total.Equal(quotation.Total) && s.Status == domain.SaleDraft
	}), creatorUserID).Return(nil).Once()

	sale, err := suite.service.ConvertToSale(ctx, quotation.QuotationID, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	// Re-running the same inputs through the calculator lands on the same
	// stored totals, so conversion never changes what the customer accepted.
	suite.True(sale.Subtotal.Equal(quotation.Subtotal))
	suite.True(sale.TaxAmount.Equal(quotation.TaxAmount))
	suite.True(sale.Total.Equal(quotation.Total))
	suite.True(sale.AmountDue.Equal(quotation.Total))
	suite.True(sale.ExchangeRate.Equal(quotation.ExchangeRate))
	suite.Equal(quotation.CustomerName, sale.CustomerName)
	suite.Require().Len(sale.Lines, 1)
	suite.Equal(quotation.Lines[0].Description, sale.Lines[0].Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestConvertToSale_AlreadyConverted() {
	ctx := context.Background()
	quotation := acceptedQuotation()
	quotation.Status = domain.QuotationConverted

	suite.mockRepo.On("FindQuotationByID", ctx, quotation.QuotationID).Return(quotation, nil).Once()

	sale, err := suite.service.ConvertToSale(ctx, quotation.QuotationID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkConverted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestConvertToSale_RejectedQuotation() {
	ctx := context.Background()
	quotation := acceptedQuotation()
	quotation.Status = domain.QuotationRejected

	suite.mockRepo.On("FindQuotationByID", ctx, quotation.QuotationID).Return(quotation, nil).Once()

	sale, err := suite.service.ConvertToSale(ctx, quotation.QuotationID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuotationServiceTestSuite) TestUpdateQuotationStatus_ConvertedViaStatusRejected() {
	ctx := context.Background()

	quotation, err := suite.service.UpdateQuotationStatus(ctx, uuid.NewString(), domain.QuotationConverted, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateQuotationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestGetQuotationDocument_CarriesValidity() {
	ctx := context.Background()
	quotation := acceptedQuotation()
	quotation.QuotationNumber = "CT-20260314-XYZ001"
	quotation.Lines[0].Subtotal = money.MustAmount("1000")
	quotation.Lines[0].Total = money.MustAmount("1044")

	suite.mockRepo.On("FindQuotationByID", ctx, quotation.QuotationID).Return(quotation, nil).Once()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MZN").Return(meticalProfile(), nil).Once()

	doc, err := suite.service.GetQuotationDocument(ctx, quotation.QuotationID)

	suite.Require().NoError(err)
	suite.Equal("CT-20260314-XYZ001", doc.DocumentNumber)
	suite.Equal("MT 1.044,00", doc.Total)
	suite.Require().NotNil(doc.ValidUntil)
	suite.Equal(quotation.ValidUntil, *doc.ValidUntil)
	suite.Empty(doc.AmountPaid)
	suite.Empty(doc.AmountDue)
}

func TestQuotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationServiceTestSuite))
}
