package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// AnalyticsHandler handles analytics procedures
type AnalyticsHandler struct {
	repos *repository.Repositories
	cfg   *config.Config
	log   zerolog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("handler", "analytics").Logger(),
	}
}

// CreateAnalyticsEvent handles POST /rpc/createAnalyticsEvent
func (h *AnalyticsHandler) CreateAnalyticsEvent(c *gin.Context) {
	var input models.CreateAnalyticsEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.ApplyDefaults()
	if errs := validation.ValidateCreateAnalyticsEvent(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	event := &models.AnalyticsEvent{
		EventType:  input.EventType,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		UserID:     input.UserID,
		SessionID:  input.SessionID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Referrer:   input.Referrer,
		Metadata:   input.Metadata,
	}

	if err := h.repos.Analytics.Create(c.Request.Context(), event); err != nil {
		respondStoreError(c, h.log, "createAnalyticsEvent", err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetAnalyticsSummary handles GET /rpc/getAnalyticsSummary?days=
// The window defaults to the configured number of trailing days.
func (h *AnalyticsHandler) GetAnalyticsSummary(c *gin.Context) {
	days := h.cfg.Analytics.DefaultWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	summary, err := h.repos.Analytics.Summary(c.Request.Context(), since, h.cfg.Analytics.TopProductsLimit)
	if err != nil {
		respondStoreError(c, h.log, "getAnalyticsSummary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
