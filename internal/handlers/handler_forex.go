package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/core/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
	"github.com/moneta-app/moneta_backend/internal/middleware"
)

// forexHandler handles HTTP requests for the FX rate history.
type forexHandler struct {
	forexService portssvc.ForexSvcFacade
}

// newForexHandler creates a new forexHandler.
func newForexHandler(fs portssvc.ForexSvcFacade) *forexHandler {
	return &forexHandler{
		forexService: fs,
	}
}

// registerForexRoutes registers routes related to FX rates.
func registerForexRoutes(rg *gin.RouterGroup, forexService portssvc.ForexSvcFacade) {
	h := newForexHandler(forexService)

	fxRates := rg.Group("/fx-rates")
	{
		fxRates.POST("", h.recordRates)
		fxRates.GET("/latest", h.latestRates)
	}
}

func (h *forexHandler) recordRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.forexService.RecordRates(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, services.ErrCurrencyNotFound),
			errors.Is(err, services.ErrInvalidFxRate),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record fx rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record fx rates"})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *forexHandler) latestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base := c.Query("base")
	if len(base) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base must be a 3-letter currency code"})
		return
	}
	var targets []string
	if raw := c.Query("targets"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			t = strings.TrimSpace(t)
			if len(t) != 3 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "targets must be 3-letter currency codes"})
				return
			}
			targets = append(targets, t)
		}
	}

	rates, err := h.forexService.LatestRates(c.Request.Context(), base, targets)
	if err != nil {
		if errors.Is(err, services.ErrCurrencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch latest fx rates", slog.String("base", base), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch latest fx rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLatestRatesResponse(base, rates, time.Now().UTC()))
}
