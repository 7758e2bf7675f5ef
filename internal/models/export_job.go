package models

import "time"

// ExportFormat selects the rendered output of an analytics export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportStatus tracks an export job through the worker queue.
type ExportStatus string

const (
	ExportStatusQueued     ExportStatus = "queued"
	ExportStatusProcessing ExportStatus = "processing"
	ExportStatusFinished   ExportStatus = "finished"
	ExportStatusFailed     ExportStatus = "failed"
)

// ExportJob is an asynchronous analytics snapshot export. Jobs live in
// memory only, like the collections they are derived from.
type ExportJob struct {
	ID           string       `json:"id"`
	Format       ExportFormat `json:"format"`
	Status       ExportStatus `json:"status"`
	Progress     int          `json:"progress"`
	ResultURL    *string      `json:"resultUrl,omitempty"`
	ErrorMessage *string      `json:"error,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	FinishedAt   *time.Time   `json:"finishedAt,omitempty"`
}
