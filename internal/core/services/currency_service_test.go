package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/core/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindDefaultCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetDefaultCurrency(ctx context.Context, currencyCode string, updatedBy string) error {
	args := m.Called(ctx, currencyCode, updatedBy)
	return args.Error(0)
}

func validCurrencyRequest() dto.CreateCurrencyRequest {
	return dto.CreateCurrencyRequest{
		CurrencyCode:      "MZN",
		Symbol:            "MT",
		Name:              "Metical",
		ExchangeRate:      money.MustAmount("1"),
		DecimalPlaces:     2,
		DecimalSeparator:  ",",
		ThousandSeparator: ".",
	}
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validCurrencyRequest()

	suite.mockRepo.On("FindCurrencyByCode", ctx, req.CurrencyCode).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == req.CurrencyCode && c.Symbol == req.Symbol && c.CreatedBy == creatorUserID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(req.CurrencyCode, currency.CurrencyCode)
	suite.Equal(req.Symbol, currency.Symbol)
	suite.False(currency.IsDefault)
	suite.Equal(creatorUserID, currency.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_AsDefault() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validCurrencyRequest()
	req.IsDefault = true

	suite.mockRepo.On("FindCurrencyByCode", ctx, req.CurrencyCode).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockRepo.On("SetDefaultCurrency", ctx, req.CurrencyCode, creatorUserID).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.True(currency.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := validCurrencyRequest()

	suite.mockRepo.On("FindCurrencyByCode", ctx, req.CurrencyCode).Return(&domain.Currency{CurrencyCode: req.CurrencyCode}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_NonPositiveRate() {
	ctx := context.Background()
	req := validCurrencyRequest()
	req.ExchangeRate = money.MustAmount("0")

	suite.mockRepo.On("FindCurrencyByCode", ctx, req.CurrencyCode).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrInvalidExchangeRate)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DecimalPlacesOutOfRange() {
	ctx := context.Background()
	req := validCurrencyRequest()
	req.DecimalPlaces = 5

	suite.mockRepo.On("FindCurrencyByCode", ctx, req.CurrencyCode).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrInvalidDecimalPlaces)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_EqualSeparators() {
	ctx := context.Background()
	req := validCurrencyRequest()
	req.DecimalSeparator = "."
	req.ThousandSeparator = "."

	suite.mockRepo.On("FindCurrencyByCode", ctx, req.CurrencyCode).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	stored := &domain.Currency{
		CurrencyCode:      "USD",
		Symbol:            "$",
		Name:              "US Dollar",
		ExchangeRate:      money.MustAmount("1"),
		DecimalPlaces:     2,
		DecimalSeparator:  ".",
		ThousandSeparator: ",",
	}
	newRate := money.MustAmount("0.0157")
	req := dto.UpdateCurrencyRequest{ExchangeRate: &newRate}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.ExchangeRate.Equal(newRate) && c.Symbol == "$" && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "usd", req, updaterUserID)

	suite.Require().NoError(err)
	suite.True(currency.ExchangeRate.Equal(newRate))
	suite.Equal("$", currency.Symbol)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	stored := &domain.Currency{CurrencyCode: "EUR"}
	flipped := &domain.Currency{CurrencyCode: "EUR", IsDefault: true}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(stored, nil).Once()
	suite.mockRepo.On("SetDefaultCurrency", ctx, "EUR", updaterUserID).Return(nil).Once()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(flipped, nil).Once()

	currency, err := suite.service.SetDefaultCurrency(ctx, "eur", updaterUserID)

	suite.Require().NoError(err)
	suite.True(currency.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalizesCase() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "MZN"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "MZN").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "mzn")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_BadLength() {
	ctx := context.Background()

	currency, err := suite.service.GetCurrencyByCode(ctx, "MZ")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "NTF")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return([]domain.Currency(nil), nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_UsesBothRates() {
	ctx := context.Background()
	mzn := &domain.Currency{CurrencyCode: "MZN", ExchangeRate: money.MustAmount("1")}
	usd := &domain.Currency{CurrencyCode: "USD", ExchangeRate: money.MustAmount("0.0157")}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "MZN").Return(mzn, nil).Once()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()

	converted, err := suite.service.ConvertAmount(ctx, money.MustAmount("6400"), "MZN", "USD")

	suite.Require().NoError(err)
	suite.True(converted.Equal(money.MustAmount("100.48")), "got %s", converted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_SourceMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ConvertAmount(ctx, money.MustAmount("10"), "XXX", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestConvertAmount_InvalidStoredRate() {
	ctx := context.Background()
	mzn := &domain.Currency{CurrencyCode: "MZN", ExchangeRate: money.MustAmount("1")}
	bad := &domain.Currency{CurrencyCode: "BAD", ExchangeRate: money.MustAmount("0")}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "MZN").Return(mzn, nil).Once()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "BAD").Return(bad, nil).Once()

	_, err := suite.service.ConvertAmount(ctx, money.MustAmount("10"), "MZN", "BAD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidExchangeRate)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_SaveError() {
	ctx := context.Background()
	stored := &domain.Currency{
		CurrencyCode:      "USD",
		Symbol:            "$",
		ExchangeRate:      money.MustAmount("1"),
		DecimalPlaces:     2,
		DecimalSeparator:  ".",
		ThousandSeparator: ",",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(expectedErr).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "USD", dto.UpdateCurrencyRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
