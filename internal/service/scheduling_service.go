package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	"github.com/campusdesk/events-api/internal/store"
	"github.com/campusdesk/events-api/internal/validation"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
)

type referenceCatalog interface {
	VenueExists(building, venue string) bool
	StaffExists(id string) bool
}

type submissionRecorder interface {
	RecordSubmission(kind, outcome string)
}

type analyticsRebuilder interface {
	Rebuild()
}

// SchedulingService orchestrates event admission: field validation, the
// conflict gate, identity assignment, append, and the synchronous analytics
// rebuild. It is the sole writer of the store.
type SchedulingService struct {
	store      *store.Memory
	conflicts  *ConflictChecker
	analytics  analyticsRebuilder
	references referenceCatalog
	rules      validation.EventRules
	strictRefs bool
	metrics    submissionRecorder
	logger     *zap.Logger
	now        func() time.Time

	// mu serializes the three mutation operations so the admission check and
	// the append are one atomic step. Reads do not take it; they work on
	// store snapshots.
	mu sync.Mutex
}

// SchedulingServiceParams groups constructor dependencies.
type SchedulingServiceParams struct {
	Store            *store.Memory
	Conflicts        *ConflictChecker
	Analytics        analyticsRebuilder
	References       referenceCatalog
	Rules            validation.EventRules
	StrictReferences bool
	Metrics          submissionRecorder
	Logger           *zap.Logger
}

// NewSchedulingService constructs a SchedulingService with sane defaults.
func NewSchedulingService(params SchedulingServiceParams) *SchedulingService {
	rules := params.Rules
	if rules.LeadTime <= 0 {
		rules = validation.DefaultEventRules()
	}
	conflicts := params.Conflicts
	if conflicts == nil {
		conflicts = NewConflictChecker(rules.LeadTime)
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := params.Store
	if st == nil {
		st = store.NewMemory()
	}
	return &SchedulingService{
		store:      st,
		conflicts:  conflicts,
		analytics:  params.Analytics,
		references: params.References,
		rules:      rules,
		strictRefs: params.StrictReferences,
		metrics:    params.Metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// SubmitEvent validates the candidate, runs the conflict gate, and appends
// the event with a fresh identity and pending status. An aborted submission
// leaves the collections and the analytics snapshot untouched.
func (s *SchedulingService) SubmitEvent(req dto.SubmitEventRequest) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	fields := s.rules.Event(now, req)
	if s.strictRefs {
		refFields, err := s.checkReferences(req)
		if err != nil {
			return nil, err
		}
		fields = append(fields, refFields...)
	}
	if len(fields) > 0 {
		s.recordSubmission("event", "validation_rejected")
		return nil, appErrors.WithFields(appErrors.ErrValidation, fields)
	}

	if s.conflicts.Blocked(now, s.store.Events(), req.Date, req.StartTime, req.EndTime, req.Venue) {
		s.recordSubmission("event", "conflict_rejected")
		return nil, appErrors.ErrConflict
	}

	event := models.Event{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Club:              req.Club,
		Date:              req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Venue:             req.Venue,
		Building:          req.Building,
		Description:       req.Description,
		Status:            models.EventStatusPending,
		ClubLogo:          req.ClubLogo,
		EventPoster:       req.EventPoster,
		StaffCoordinator:  req.StaffCoordinator,
		Requirements:      req.Requirements,
		ExpectedAttendees: req.ExpectedAttendees,
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}
	s.store.AppendEvent(event)
	s.rebuildAnalytics()
	s.recordSubmission("event", "accepted")
	s.logger.Info("event submitted",
		zap.String("event_id", event.ID),
		zap.String("club", event.Club),
		zap.String("venue", event.Venue),
		zap.String("date", event.Date))
	return &event, nil
}

// SubmitTicket validates and appends an issue report. Tickets never go
// through conflict detection.
func (s *SchedulingService) SubmitTicket(req dto.SubmitTicketRequest) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields := validation.Ticket(req); len(fields) > 0 {
		s.recordSubmission("ticket", "validation_rejected")
		return nil, appErrors.WithFields(appErrors.ErrValidation, fields)
	}

	ticket := models.Ticket{
		ID:          uuid.NewString(),
		Club:        req.Club,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TicketStatusPending,
		Priority:    models.TicketPriority(req.Priority),
		Category:    models.TicketCategory(req.Category),
		Attachments: req.Attachments,
		CreatedAt:   s.now().UTC(),
	}
	s.store.AppendTicket(ticket)
	s.rebuildAnalytics()
	s.recordSubmission("ticket", "accepted")
	s.logger.Info("ticket submitted", zap.String("ticket_id", ticket.ID), zap.String("club", ticket.Club))
	return &ticket, nil
}

// SubmitStaffInvite validates and appends a coordinator invitation.
func (s *SchedulingService) SubmitStaffInvite(req dto.SubmitStaffInviteRequest) (*models.StaffInvite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := validation.StaffInvite(req)
	if s.strictRefs && req.StaffID != "" {
		if s.references == nil {
			return nil, appErrors.Clone(appErrors.ErrMisconfigured, "staff directory unavailable")
		}
		if !s.references.StaffExists(req.StaffID) {
			fields = append(fields, appErrors.FieldError{Field: "staff", Message: "Unknown staff member"})
		}
	}
	if len(fields) > 0 {
		s.recordSubmission("invite", "validation_rejected")
		return nil, appErrors.WithFields(appErrors.ErrValidation, fields)
	}

	invite := models.StaffInvite{
		ID:          uuid.NewString(),
		Club:        req.Club,
		StaffID:     req.StaffID,
		StaffName:   req.StaffName,
		Department:  req.Department,
		Role:        req.Role,
		Status:      models.InviteStatusPending,
		Category:    models.InviteCategoryPending,
		Description: req.Description,
		CreatedAt:   s.now().UTC(),
	}
	s.store.AppendInvite(invite)
	s.rebuildAnalytics()
	s.recordSubmission("invite", "accepted")
	s.logger.Info("staff invite submitted", zap.String("invite_id", invite.ID), zap.String("club", invite.Club))
	return &invite, nil
}

// EventsByClub returns the club's events in insertion order.
func (s *SchedulingService) EventsByClub(club string) []models.Event {
	events := s.store.Events()
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Club == club {
			out = append(out, e)
		}
	}
	return out
}

// TicketsByClub returns the club's tickets in insertion order.
func (s *SchedulingService) TicketsByClub(club string) []models.Ticket {
	tickets := s.store.Tickets()
	out := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Club == club {
			out = append(out, t)
		}
	}
	return out
}

// InvitesByClub returns the club's invites in insertion order.
func (s *SchedulingService) InvitesByClub(club string) []models.StaffInvite {
	invites := s.store.Invites()
	out := make([]models.StaffInvite, 0, len(invites))
	for _, inv := range invites {
		if inv.Club == club {
			out = append(out, inv)
		}
	}
	return out
}

// UpcomingEvents returns approved events that have not started yet, soonest
// first.
func (s *SchedulingService) UpcomingEvents() []models.Event {
	return upcomingEvents(s.now(), s.store.Events())
}

// PastEvents returns approved events whose start has passed, most recent
// first.
func (s *SchedulingService) PastEvents() []models.Event {
	now := s.now()
	events := s.store.Events()
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Status == models.EventStatusApproved && e.StartsAt().Before(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// PendingApprovals returns pending events, newest submission first.
func (s *SchedulingService) PendingApprovals() []models.Event {
	events := s.store.Events()
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Status == models.EventStatusPending {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ApprovedEvents returns approved events, most recently updated first.
func (s *SchedulingService) ApprovedEvents() []models.Event {
	events := s.store.Events()
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Status == models.EventStatusApproved {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// InvitesByCategory filters invites by dashboard category, newest first.
func (s *SchedulingService) InvitesByCategory(category models.InviteCategory) []models.StaffInvite {
	invites := s.store.Invites()
	out := make([]models.StaffInvite, 0, len(invites))
	for _, inv := range invites {
		if inv.Category == category {
			out = append(out, inv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *SchedulingService) checkReferences(req dto.SubmitEventRequest) ([]appErrors.FieldError, error) {
	if s.references == nil {
		return nil, appErrors.Clone(appErrors.ErrMisconfigured, "venue catalog unavailable")
	}
	var errs []appErrors.FieldError
	if req.Venue != "" && req.Building != "" && !s.references.VenueExists(req.Building, req.Venue) {
		errs = append(errs, appErrors.FieldError{Field: "venue", Message: "Unknown venue for the selected building"})
	}
	if req.StaffCoordinator != nil && !s.references.StaffExists(req.StaffCoordinator.ID) {
		errs = append(errs, appErrors.FieldError{Field: "staffCoordinator", Message: "Unknown staff coordinator"})
	}
	return errs, nil
}

func (s *SchedulingService) rebuildAnalytics() {
	if s.analytics != nil {
		s.analytics.Rebuild()
	}
}

func (s *SchedulingService) recordSubmission(kind, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordSubmission(kind, outcome)
	}
}

// WithClock overrides the time source; tests use it to fix "now".
func (s *SchedulingService) WithClock(now func() time.Time) *SchedulingService {
	if now != nil {
		s.now = now
	}
	return s
}

// upcomingEvents filters approved events that have not started yet and sorts
// them soonest first. Shared by the store queries and by analytics rebuilds.
func upcomingEvents(now time.Time, events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Status == models.EventStatusApproved && !e.StartsAt().Before(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
