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

type inviteService interface {
	SubmitStaffInvite(req dto.SubmitStaffInviteRequest) (*models.StaffInvite, error)
	InvitesByClub(club string) []models.StaffInvite
	InvitesByCategory(category models.InviteCategory) []models.StaffInvite
}

// InviteHandler exposes staff-coordinator invitation submission and listing.
type InviteHandler struct {
	service inviteService
}

// NewInviteHandler constructs the invite handler.
func NewInviteHandler(service inviteService) *InviteHandler {
	return &InviteHandler{service: service}
}

// Submit godoc
// @Summary Invite a staff member to coordinate club events
// @Tags Invites
// @Accept json
// @Produce json
// @Param payload body dto.SubmitStaffInviteRequest true "Invite payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /invites [post]
func (h *InviteHandler) Submit(c *gin.Context) {
	var req dto.SubmitStaffInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid invite payload"))
		return
	}
	invite, err := h.service.SubmitStaffInvite(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitResponse{ID: invite.ID, Status: string(invite.Status)})
}

// List godoc
// @Summary List staff invites filtered by club or by category
// @Tags Invites
// @Produce json
// @Param club query string false "Club name"
// @Param category query string false "pending or approved"
// @Success 200 {object} response.Envelope
// @Router /invites [get]
func (h *InviteHandler) List(c *gin.Context) {
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if category != string(models.InviteCategoryPending) && category != string(models.InviteCategoryApproved) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "category must be pending or approved"))
			return
		}
		response.JSON(c, http.StatusOK, h.service.InvitesByCategory(models.InviteCategory(category)))
		return
	}
	club := requireClub(c)
	if club == "" {
		return
	}
	response.JSON(c, http.StatusOK, h.service.InvitesByClub(club))
}
