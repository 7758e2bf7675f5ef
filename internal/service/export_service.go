package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
	"github.com/campusdesk/events-api/pkg/export"
	"github.com/campusdesk/events-api/pkg/jobs"
	"github.com/campusdesk/events-api/pkg/storage"
)

type snapshotProvider interface {
	Snapshot() models.EventAnalytics
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File      *os.File
	Filename  string
	Format    models.ExportFormat
	ExpiresAt time.Time
}

// ExportService renders the analytics snapshot into downloadable CSV/PDF
// files through a background worker queue. Jobs are tracked in memory.
type ExportService struct {
	analytics snapshotProvider
	storage   *storage.LocalStorage
	signer    *storage.SignedURLSigner
	queue     jobDispatcher
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time

	downloadPath string

	mu      sync.RWMutex
	jobByID map[string]*models.ExportJob
}

// ExportServiceParams groups constructor dependencies.
type ExportServiceParams struct {
	Analytics    snapshotProvider
	Storage      *storage.LocalStorage
	Signer       *storage.SignedURLSigner
	Queue        jobDispatcher
	Validator    *validator.Validate
	Logger       *zap.Logger
	DownloadPath string
}

// NewExportService constructs the export pipeline.
func NewExportService(params ExportServiceParams) *ExportService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	downloadPath := params.DownloadPath
	if downloadPath == "" {
		downloadPath = "/api/v1/exports/download"
	}
	return &ExportService{
		analytics:    params.Analytics,
		storage:      params.Storage,
		signer:       params.Signer,
		queue:        params.Queue,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		validator:    validate,
		logger:       logger,
		now:          time.Now,
		downloadPath: downloadPath,
		jobByID:      make(map[string]*models.ExportJob),
	}
}

// SetQueue injects the dispatcher after construction; the queue handler
// needs the service, so wiring is circular.
func (s *ExportService) SetQueue(queue jobDispatcher) {
	s.queue = queue
}

// CreateJob validates the request, records the job, and enqueues rendering.
func (s *ExportService) CreateJob(req dto.CreateExportRequest) (*dto.ExportJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}
	if s.queue == nil || s.storage == nil || s.signer == nil {
		return nil, appErrors.Clone(appErrors.ErrMisconfigured, "export pipeline unavailable")
	}

	job := &models.ExportJob{
		ID:        uuid.NewString(),
		Format:    models.ExportFormat(req.Format),
		Status:    models.ExportStatusQueued,
		CreatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.jobByID[job.ID] = job
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: "analytics_export"}); err != nil {
		s.failJob(job.ID, "failed to enqueue export")
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}
	return s.response(job), nil
}

// Status returns the job state for polling clients.
func (s *ExportService) Status(id string) (*dto.ExportJobResponse, error) {
	s.mu.RLock()
	job, ok := s.jobByID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return s.response(job), nil
}

// Process is the queue handler: it renders the current snapshot and stores
// the result under a signed download URL.
func (s *ExportService) Process(ctx context.Context, job jobs.Job) error {
	s.mu.Lock()
	tracked, ok := s.jobByID[job.ID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown export job %s", job.ID)
	}
	tracked.Status = models.ExportStatusProcessing
	tracked.Progress = 10
	format := tracked.Format
	s.mu.Unlock()

	dataset := snapshotDataset(s.analytics.Snapshot())

	var (
		payload []byte
		err     error
	)
	switch format {
	case models.ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, "Event Analytics")
	default:
		payload, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.failJob(job.ID, err.Error())
		return err
	}

	filename := filepath.Join("analytics", fmt.Sprintf("analytics-%s.%s", job.ID, format))
	if _, err := s.storage.Save(filename, payload); err != nil {
		s.failJob(job.ID, err.Error())
		return err
	}

	token, _, err := s.signer.Generate(job.ID, filename)
	if err != nil {
		s.failJob(job.ID, err.Error())
		return err
	}
	resultURL := s.downloadPath + "?token=" + token

	now := s.now().UTC()
	s.mu.Lock()
	tracked.Status = models.ExportStatusFinished
	tracked.Progress = 100
	tracked.ResultURL = &resultURL
	tracked.FinishedAt = &now
	s.mu.Unlock()

	s.logger.Info("analytics export finished", zap.String("job_id", job.ID), zap.String("format", string(format)))
	return nil
}

// ResolveDownload validates the token and opens the stored export file.
func (s *ExportService) ResolveDownload(token string) (*ExportDownload, error) {
	jobID, relPath, expiresAt, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	s.mu.RLock()
	job, ok := s.jobByID[jobID]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	if job.Status != models.ExportStatusFinished || job.ResultURL == nil || !strings.HasSuffix(*job.ResultURL, token) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "export not ready")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export file")
	}
	return &ExportDownload{
		File:      file,
		Filename:  filepath.Base(relPath),
		Format:    job.Format,
		ExpiresAt: expiresAt,
	}, nil
}

// StartCleanup boots a goroutine that purges expired export files.
func (s *ExportService) StartCleanup(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 || s.storage == nil {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if deleted, err := s.storage.CleanupOlderThan(ttl); err != nil {
					s.logger.Warn("export cleanup failed", zap.Error(err))
				} else if len(deleted) > 0 {
					s.logger.Info("expired exports removed", zap.Int("count", len(deleted)))
				}
			}
		}
	}()
}

// WithClock overrides the time source; tests use it to fix "now".
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *ExportService) failJob(id, message string) {
	now := s.now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobByID[id]
	if !ok {
		return
	}
	job.Status = models.ExportStatusFailed
	job.Progress = 100
	job.ErrorMessage = &message
	job.FinishedAt = &now
}

func (s *ExportService) response(job *models.ExportJob) *dto.ExportJobResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &dto.ExportJobResponse{
		ID:        job.ID,
		Format:    job.Format,
		Status:    job.Status,
		Progress:  job.Progress,
		ResultURL: job.ResultURL,
		Error:     job.ErrorMessage,
	}
}

// snapshotDataset flattens the analytics snapshot into section/label/count
// rows shared by the CSV and PDF renderers.
func snapshotDataset(snapshot models.EventAnalytics) export.Dataset {
	rows := make([]map[string]string, 0, 16)
	row := func(section, label string, count int) map[string]string {
		return map[string]string{"section": section, "label": label, "count": strconv.Itoa(count)}
	}

	rows = append(rows, row("totals", "events", snapshot.TotalEvents))
	rows = append(rows, row("totals", "pending approvals", snapshot.PendingApprovals))
	rows = append(rows, row("totals", "upcoming events", len(snapshot.UpcomingEvents)))
	for _, c := range snapshot.ClubEvents {
		rows = append(rows, row("club events", c.Club, c.Count))
	}
	for _, c := range snapshot.BuildingUsage {
		rows = append(rows, row("building usage", c.Building, c.Count))
	}
	for _, c := range snapshot.TicketsByPriority {
		rows = append(rows, row("tickets by priority", c.Priority, c.Count))
	}
	for _, c := range snapshot.InvitesByDepartment {
		rows = append(rows, row("invites by department", c.Department, c.Count))
	}
	for _, c := range snapshot.EventsByStatus {
		rows = append(rows, row("events by status", c.Status, c.Count))
	}
	for _, c := range snapshot.MonthlyEventCount {
		rows = append(rows, row("monthly events", c.Month, c.Count))
	}

	return export.Dataset{Headers: []string{"section", "label", "count"}, Rows: rows}
}
