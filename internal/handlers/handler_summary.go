package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/core/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
	"github.com/moneta-app/moneta_backend/internal/middleware"
)

const dateLayout = "2006-01-02"

// summaryHandler handles HTTP requests for period summaries.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// newSummaryHandler creates a new summaryHandler.
func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{
		summaryService: ss,
	}
}

// registerSummaryRoutes registers the summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)
	rg.GET("/summary", h.getSummary)
}

func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := time.ParseInLocation(dateLayout, c.Query("from"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'from' date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.ParseInLocation(dateLayout, c.Query("to"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'to' date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' date must not be before 'from' date"})
		return
	}
	baseCurrencyCode := c.Query("baseCurrencyCode")
	if len(baseCurrencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseCurrencyCode must be a 3-letter currency code"})
		return
	}

	// The range is inclusive of the whole 'to' day.
	toEnd := to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	summary, err := h.summaryService.GetSummary(c.Request.Context(), from, toEnd, baseCurrencyCode)
	if err != nil {
		if errors.Is(err, services.ErrCurrencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute summary",
			slog.String("base_currency_code", baseCurrencyCode),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
