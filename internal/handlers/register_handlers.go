package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.AppConfig,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerLedgerRoutes(v1, services.LedgerSvc)
	registerSummaryRoutes(v1, services.SummarySvc)
	registerAccountRoutes(v1, services.AccountSvc)
	registerCurrencyRoutes(v1, services.CurrencySvc)
	registerForexRoutes(v1, services.ForexSvc)
}
