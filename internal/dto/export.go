package dto

import "github.com/campusdesk/events-api/internal/models"

// CreateExportRequest asks for an analytics snapshot export.
type CreateExportRequest struct {
	Format string `json:"format" validate:"required,oneof=csv pdf"`
}

// ExportJobResponse exposes export job state to the dashboard.
type ExportJobResponse struct {
	ID        string              `json:"id"`
	Format    models.ExportFormat `json:"format"`
	Status    models.ExportStatus `json:"status"`
	Progress  int                 `json:"progress"`
	ResultURL *string             `json:"resultUrl,omitempty"`
	Error     *string             `json:"error,omitempty"`
}
