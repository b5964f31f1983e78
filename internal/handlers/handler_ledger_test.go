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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/core/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
	"github.com/moneta-app/moneta_backend/internal/handlers"
	"github.com/moneta-app/moneta_backend/internal/platform/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), nextToken, args.Error(2)
}

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

func (m *MockSummaryService) GetSummary(ctx context.Context, from, to time.Time, baseCurrencyCode string) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, from, to, baseCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByCountry(ctx context.Context, groupType domain.AccountGroupType) (map[string][]domain.AccountGroup, error) {
	args := m.Called(ctx, groupType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.AccountGroup), args.Error(1)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCountryByCode(ctx context.Context, countryCode string) (*domain.Country, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCurrencyService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

// --- Mock ForexService ---
type MockForexService struct {
	mock.Mock
}

var _ portssvc.ForexSvcFacade = (*MockForexService)(nil)

func (m *MockForexService) LatestRates(ctx context.Context, baseCurrencyCode string, targetCurrencyCodes []string) (map[string]domain.RateObservation, error) {
	args := m.Called(ctx, baseCurrencyCode, targetCurrencyCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.RateObservation), args.Error(1)
}

func (m *MockForexService) RecordRates(ctx context.Context, req dto.RecordRatesRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockLedgerSvc  *MockLedgerService
	mockSummarySvc *MockSummaryService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockSummarySvc = new(MockSummaryService)

	container := &portssvc.ServiceContainer{
		LedgerSvc:   suite.mockLedgerSvc,
		SummarySvc:  suite.mockSummarySvc,
		AccountSvc:  new(MockAccountService),
		CurrencySvc: new(MockCurrencyService),
		ForexSvc:    new(MockForexService),
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.AppConfig{}, container)
}

func (suite *HandlerTestSuite) validPostBody() map[string]any {
	return map[string]any{
		"type":            "expense",
		"date":            "2025-03-14",
		"time":            "18:30",
		"title":           "Weekly shop",
		"debitAccountID":  uuid.NewString(),
		"creditAccountID": uuid.NewString(),
		"currencyCode":    "USD",
		"amount":          "20.00",
	}
}

func (suite *HandlerTestSuite) TestPostTransaction_Created() {
	entry := &domain.JournalEntry{
		EntryID:      uuid.NewString(),
		Type:         domain.EntryTypeExpense,
		Title:        "Weekly shop",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("20.00"),
	}
	suite.mockLedgerSvc.On("PostTransaction", mock.Anything, mock.AnythingOfType("dto.PostTransactionRequest")).Return(entry, nil)

	body, _ := json.Marshal(suite.validPostBody())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal("expense", resp.Type)
}

func (suite *HandlerTestSuite) TestPostTransaction_BindingRejectsBadAmount() {
	payload := suite.validPostBody()
	payload["amount"] = "not-a-number"

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostTransaction_UnknownAccountIs404() {
	suite.mockLedgerSvc.On("PostTransaction", mock.Anything, mock.Anything).Return(nil, services.ErrAccountNotFound)

	body, _ := json.Marshal(suite.validPostBody())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetSummary_OK() {
	summary := &domain.PeriodSummary{
		BaseCurrencyCode: "USD",
		Income:           decimal.RequireFromString("145.45"),
		Expense:          decimal.RequireFromString("99.99"),
	}
	suite.mockSummarySvc.On("GetSummary", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "USD").Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?from=2025-03-01&to=2025-03-31&baseCurrencyCode=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.BaseCurrencyCode)
	suite.True(resp.Income.Equal(summary.Income))
	suite.False(resp.Partial)
}

func (suite *HandlerTestSuite) TestGetSummary_MissingParamsIs400() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?from=2025-03-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSummarySvc.AssertNotCalled(suite.T(), "GetSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetSummary_InvertedRangeIs400() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?from=2025-03-31&to=2025-03-01&baseCurrencyCode=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
