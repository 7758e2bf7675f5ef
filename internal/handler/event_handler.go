package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
	"github.com/campusdesk/events-api/pkg/response"
)

type eventService interface {
	SubmitEvent(req dto.SubmitEventRequest) (*models.Event, error)
	EventsByClub(club string) []models.Event
	UpcomingEvents() []models.Event
	PastEvents() []models.Event
	PendingApprovals() []models.Event
	ApprovedEvents() []models.Event
}

// EventHandler exposes event submission and the read-only event projections.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the event handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// Submit godoc
// @Summary Submit an event scheduling request
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.SubmitEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Submit(c *gin.Context) {
	var req dto.SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.SubmitEvent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitResponse{ID: event.ID, Status: string(event.Status)})
}

// ListByClub godoc
// @Summary List a club's events in submission order
// @Tags Events
// @Produce json
// @Param club query string true "Club name"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) ListByClub(c *gin.Context) {
	club := requireClub(c)
	if club == "" {
		return
	}
	response.JSON(c, http.StatusOK, h.service.EventsByClub(club))
}

// Upcoming godoc
// @Summary List approved events that have not started yet
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events/upcoming [get]
func (h *EventHandler) Upcoming(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.UpcomingEvents())
}

// Past godoc
// @Summary List approved events that already took place
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events/past [get]
func (h *EventHandler) Past(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.PastEvents())
}

// Pending godoc
// @Summary List events awaiting an admin decision
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events/pending [get]
func (h *EventHandler) Pending(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.PendingApprovals())
}

// Approved godoc
// @Summary List approved events, most recently updated first
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events/approved [get]
func (h *EventHandler) Approved(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ApprovedEvents())
}

func requireClub(c *gin.Context) string {
	club := strings.TrimSpace(c.Query("club"))
	if club == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "club is required"))
		return ""
	}
	return club
}
