package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/events-api/internal/models"
	"github.com/campusdesk/events-api/pkg/response"
)

type analyticsProvider interface {
	Snapshot() models.EventAnalytics
}

// AnalyticsHandler exposes the derived analytics snapshot.
type AnalyticsHandler struct {
	service analyticsProvider
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(service analyticsProvider) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Snapshot godoc
// @Summary Return the current analytics snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics [get]
func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Snapshot())
}
