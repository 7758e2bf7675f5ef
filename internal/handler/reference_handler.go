package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/events-api/internal/models"
	"github.com/campusdesk/events-api/pkg/response"
)

type referenceProvider interface {
	Buildings() []models.Building
	Departments() []models.Department
}

// ReferenceHandler serves the static venue and staff catalog for the
// dashboard dropdowns.
type ReferenceHandler struct {
	service referenceProvider
}

// NewReferenceHandler constructs the reference handler.
func NewReferenceHandler(service referenceProvider) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// Buildings godoc
// @Summary List buildings and their venues
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/buildings [get]
func (h *ReferenceHandler) Buildings(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Buildings())
}

// Departments godoc
// @Summary List departments and their staff
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/departments [get]
func (h *ReferenceHandler) Departments(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Departments())
}
