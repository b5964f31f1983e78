package services

import (
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.AppConfig) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.EntryRepo, repos.AccountRepo, repos.CurrencyRepo, cfg.PostingTimeout)
	summarySvc := NewSummaryService(repos.EntryRepo, repos.CurrencyRepo, repos.ForexRepo, cfg.RateLookback, cfg.QueryTimeout)
	accountSvc := NewAccountService(repos.AccountRepo, repos.CurrencyRepo)
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	forexSvc := NewForexService(repos.ForexRepo, repos.CurrencyRepo, cfg.RateLookback)

	return &portssvc.ServiceContainer{
		LedgerSvc:   ledgerSvc,
		SummarySvc:  summarySvc,
		AccountSvc:  accountSvc,
		CurrencySvc: currencySvc,
		ForexSvc:    forexSvc,
	}
}
