package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/core/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AccountSvcFacade

	usd domain.Currency
	us  domain.Country
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCurrencyRepo)

	suite.usd = domain.Currency{CurrencyCode: "USD", Name: "United States Dollar", Symbol: "$", IsoDigits: 2}
	suite.us = domain.Country{CountryCode: "US", Name: "United States", DefaultCurrencyCode: "USD"}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  "ASSET",
		CurrencyCode: "USD",
		CountryCode:  "US",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&suite.usd, nil)
	suite.mockCurrencyRepo.On("FindCountryByCode", mock.Anything, "US").Return(&suite.us, nil)
	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := suite.service.CreateAccount(context.Background(), req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(domain.Asset, account.AccountType)
	suite.Equal("USD", account.CurrencyCode)
	suite.Equal("US", account.CountryCode)
	suite.True(account.IsActive)
	suite.NotNil(account.Currency)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  "ASSET",
		CurrencyCode: "XXX",
		CountryCode:  "US",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateAccount(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCurrencyNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCountry() {
	req := dto.CreateAccountRequest{
		Name:         "Checking",
		AccountType:  "ASSET",
		CurrencyCode: "USD",
		CountryCode:  "ZZ",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&suite.usd, nil)
	suite.mockCurrencyRepo.On("FindCountryByCode", mock.Anything, "ZZ").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateAccount(context.Background(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCountryNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountsByCountry_GroupsAndFilters() {
	groupID := uuid.NewString()
	usAccount := domain.Account{AccountID: uuid.NewString(), Name: "US Groceries", CountryCode: "US", GroupID: &groupID}
	inAccount := domain.Account{AccountID: uuid.NewString(), Name: "IN Groceries", CountryCode: "IN", GroupID: &groupID}
	groups := []domain.AccountGroup{
		{
			GroupID:  groupID,
			Name:     "Daily Living",
			Type:     domain.GroupTypeExpense,
			Accounts: []domain.Account{usAccount, inAccount},
		},
	}

	suite.mockAccountRepo.On("FindGroupsWithAccountsByType", mock.Anything, domain.GroupTypeExpense, false, true).Return(groups, nil)

	grouped, err := suite.service.GetAccountsByCountry(context.Background(), domain.GroupTypeExpense)

	suite.Require().NoError(err)
	suite.Require().Len(grouped, 2)

	suite.Require().Len(grouped["US"], 1)
	suite.Require().Len(grouped["US"][0].Accounts, 1)
	suite.Equal("US Groceries", grouped["US"][0].Accounts[0].Name)

	suite.Require().Len(grouped["IN"], 1)
	suite.Require().Len(grouped["IN"][0].Accounts, 1)
	suite.Equal("IN Groceries", grouped["IN"][0].Accounts[0].Name)
}

func (suite *AccountServiceTestSuite) TestGetAccountsByCountry_OmitsEmptyGroups() {
	groups := []domain.AccountGroup{
		{GroupID: uuid.NewString(), Name: "Empty Group", Type: domain.GroupTypeExpense},
	}

	suite.mockAccountRepo.On("FindGroupsWithAccountsByType", mock.Anything, domain.GroupTypeExpense, false, true).Return(groups, nil)

	grouped, err := suite.service.GetAccountsByCountry(context.Background(), domain.GroupTypeExpense)

	suite.Require().NoError(err)
	suite.Empty(grouped)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
