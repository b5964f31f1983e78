package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/core/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
)

type ForexServiceTestSuite struct {
	suite.Suite
	mockForexRepo    *MockForexRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ForexSvcFacade

	usd domain.Currency
	eur domain.Currency
}

func (suite *ForexServiceTestSuite) SetupTest() {
	suite.mockForexRepo = new(MockForexRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewForexService(suite.mockForexRepo, suite.mockCurrencyRepo, 7*24*time.Hour)

	suite.usd = domain.Currency{CurrencyCode: "USD", Name: "United States Dollar", Symbol: "$", IsoDigits: 2}
	suite.eur = domain.Currency{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", IsoDigits: 2}
}

func (suite *ForexServiceTestSuite) TestLatestRates_WindowEndsNow() {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&suite.usd, nil)

	var window domain.RateWindow
	suite.mockForexRepo.On("FindLatestRates", mock.Anything, "USD", []string{"EUR"}, mock.AnythingOfType("domain.RateWindow")).
		Run(func(args mock.Arguments) {
			window = args.Get(3).(domain.RateWindow)
		}).
		Return(map[string]domain.RateObservation{
			"EUR": {BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: decimal.RequireFromString("1.08")},
		}, nil)

	rates, err := suite.service.LatestRates(context.Background(), "USD", []string{"EUR"})

	suite.Require().NoError(err)
	suite.Require().Contains(rates, "EUR")
	suite.True(rates["EUR"].Rate.Equal(decimal.RequireFromString("1.08")))

	suite.WithinDuration(time.Now().UTC(), window.End, 5*time.Second)
	suite.Equal(7*24*time.Hour, window.End.Sub(window.Start))
}

func (suite *ForexServiceTestSuite) TestLatestRates_NoTargets() {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&suite.usd, nil)

	rates, err := suite.service.LatestRates(context.Background(), "USD", nil)

	suite.Require().NoError(err)
	suite.Empty(rates)
	suite.mockForexRepo.AssertNotCalled(suite.T(), "FindLatestRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ForexServiceTestSuite) TestLatestRates_UnknownBase() {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.LatestRates(context.Background(), "XXX", []string{"EUR"})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCurrencyNotFound)
}

func (suite *ForexServiceTestSuite) TestRecordRates_Success() {
	req := dto.RecordRatesRequest{
		Observations: []dto.RateObservationInsert{
			{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "1.0812345678999"},
		},
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&suite.usd, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "EUR").Return(&suite.eur, nil)

	var saved []domain.RateObservation
	suite.mockForexRepo.On("SaveRateObservations", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.RateObservation)
		}).Return(nil)

	err := suite.service.RecordRates(context.Background(), req)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 1)
	suite.NotEmpty(saved[0].ObservationID)
	// Rates are frozen at ten digits.
	suite.True(saved[0].Rate.Equal(decimal.RequireFromString("1.0812345679")), "got %s", saved[0].Rate)
}

func (suite *ForexServiceTestSuite) TestRecordRates_IdenticalPairRejected() {
	req := dto.RecordRatesRequest{
		Observations: []dto.RateObservationInsert{
			{BaseCurrencyCode: "USD", TargetCurrencyCode: "USD", Rate: "1.0"},
		},
	}

	err := suite.service.RecordRates(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockForexRepo.AssertNotCalled(suite.T(), "SaveRateObservations", mock.Anything, mock.Anything)
}

func (suite *ForexServiceTestSuite) TestRecordRates_NonPositiveRate() {
	req := dto.RecordRatesRequest{
		Observations: []dto.RateObservationInsert{
			{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "0"},
		},
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&suite.usd, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "EUR").Return(&suite.eur, nil)

	err := suite.service.RecordRates(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidFxRate)
	suite.mockForexRepo.AssertNotCalled(suite.T(), "SaveRateObservations", mock.Anything, mock.Anything)
}

func TestForexServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ForexServiceTestSuite))
}
