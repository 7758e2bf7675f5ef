package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
	"github.com/campusdesk/events-api/pkg/response"
)

type ticketService interface {
	SubmitTicket(req dto.SubmitTicketRequest) (*models.Ticket, error)
	TicketsByClub(club string) []models.Ticket
}

// TicketHandler exposes overlap/issue ticket submission and listing.
type TicketHandler struct {
	service ticketService
}

// NewTicketHandler constructs the ticket handler.
func NewTicketHandler(service ticketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Submit godoc
// @Summary Report an overlap or venue issue
// @Tags Tickets
// @Accept json
// @Produce json
// @Param payload body dto.SubmitTicketRequest true "Ticket payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tickets [post]
func (h *TicketHandler) Submit(c *gin.Context) {
	var req dto.SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid ticket payload"))
		return
	}
	ticket, err := h.service.SubmitTicket(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitResponse{ID: ticket.ID, Status: string(ticket.Status)})
}

// ListByClub godoc
// @Summary List a club's tickets in submission order
// @Tags Tickets
// @Produce json
// @Param club query string true "Club name"
// @Success 200 {object} response.Envelope
// @Router /tickets [get]
func (h *TicketHandler) ListByClub(c *gin.Context) {
	club := requireClub(c)
	if club == "" {
		return
	}
	response.JSON(c, http.StatusOK, h.service.TicketsByClub(club))
}
