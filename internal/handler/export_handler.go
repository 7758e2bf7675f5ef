package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	"github.com/campusdesk/events-api/internal/service"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
	"github.com/campusdesk/events-api/pkg/response"
)

type exportService interface {
	CreateJob(req dto.CreateExportRequest) (*dto.ExportJobResponse, error)
	Status(id string) (*dto.ExportJobResponse, error)
	ResolveDownload(token string) (*service.ExportDownload, error)
}

// ExportHandler exposes the asynchronous analytics export pipeline.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the export handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Create godoc
// @Summary Request an analytics snapshot export
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body dto.CreateExportRequest true "Export request"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /analytics/exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req dto.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}
	job, err := h.service.CreateJob(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job)
}

// Status godoc
// @Summary Poll an export job
// @Tags Analytics
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /analytics/exports/{id} [get]
func (h *ExportHandler) Status(c *gin.Context) {
	job, err := h.service.Status(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Download godoc
// @Summary Download a finished export via signed token
// @Tags Analytics
// @Produce octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Router /exports/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	download, err := h.service.ResolveDownload(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close() //nolint:errcheck

	contentType := "text/csv"
	if download.Format == models.ExportFormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.Header("Content-Type", contentType)
	http.ServeContent(c.Writer, c.Request, download.Filename, time.Time{}, download.File)
}
