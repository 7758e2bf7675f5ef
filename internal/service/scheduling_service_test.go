package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	"github.com/campusdesk/events-api/internal/store"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
)

type countingRebuilder struct {
	calls int
}

func (c *countingRebuilder) Rebuild() { c.calls++ }

type recordingMetrics struct {
	outcomes []string
}

func (r *recordingMetrics) RecordSubmission(kind, outcome string) {
	r.outcomes = append(r.outcomes, kind+"/"+outcome)
}

type stubCatalog struct {
	venues map[string]bool
	staff  map[string]bool
}

func (s *stubCatalog) VenueExists(building, venue string) bool {
	return s.venues[building+"/"+venue]
}

func (s *stubCatalog) StaffExists(id string) bool {
	return s.staff[id]
}

const schedulingDescription = "A detailed description of the annual robotics showcase, demos included."

func submitRequest(club, date, start, end string) dto.SubmitEventRequest {
	return dto.SubmitEventRequest{
		Title:            "Robotics Showcase",
		Club:             club,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		Venue:            "Main Auditorium",
		Building:         "Main Building",
		Description:      schedulingDescription,
		StaffCoordinator: &models.StaffCoordinator{ID: "cs1", Name: "Dr. John Smith", Department: "Computer Science"},
	}
}

func newTestScheduling(t *testing.T) (*SchedulingService, *store.Memory, *countingRebuilder, *recordingMetrics) {
	t.Helper()
	memory := store.NewMemory()
	rebuilder := &countingRebuilder{}
	metrics := &recordingMetrics{}
	svc := NewSchedulingService(SchedulingServiceParams{
		Store:     memory,
		Analytics: rebuilder,
		Metrics:   metrics,
	}).WithClock(func() time.Time { return conflictNow })
	return svc, memory, rebuilder, metrics
}

func TestSubmitEventAdmission(t *testing.T) {
	svc, memory, rebuilder, metrics := newTestScheduling(t)

	// First booking is admitted as pending with a fresh identity.
	eventA, err := svc.SubmitEvent(submitRequest("Robotics Club", "2026-06-10", "10:00", "12:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, eventA.ID)
	assert.Equal(t, models.EventStatusPending, eventA.Status)
	assert.Equal(t, conflictNow.UTC(), eventA.CreatedAt)
	assert.Equal(t, 1, rebuilder.calls)

	// An overlapping slot on the same venue and date is rejected and the
	// collection stays untouched.
	_, err = svc.SubmitEvent(submitRequest("Chess Club", "2026-06-10", "11:00", "13:00"))
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SCHEDULE_CONFLICT", appErr.Code)
	assert.Equal(t, 409, appErr.Status)
	assert.Len(t, memory.Events(), 1)
	assert.Equal(t, 1, rebuilder.calls)

	// A back-to-back slot is admitted.
	eventC, err := svc.SubmitEvent(submitRequest("Chess Club", "2026-06-10", "12:00", "13:00"))
	require.NoError(t, err)
	assert.NotEqual(t, eventA.ID, eventC.ID)
	assert.Len(t, memory.Events(), 2)
	assert.Equal(t, 2, rebuilder.calls)

	assert.Equal(t, []string{
		"event/accepted",
		"event/conflict_rejected",
		"event/accepted",
	}, metrics.outcomes)
}

func TestSubmitEventValidationRejection(t *testing.T) {
	svc, memory, rebuilder, _ := newTestScheduling(t)

	req := submitRequest("Robotics Club", "2026-06-10", "10:00", "12:00")
	req.Title = ""
	req.Description = "Too short."

	_, err := svc.SubmitEvent(req)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, []appErrors.FieldError{
		{Field: "title", Message: "Event title is required"},
		{Field: "description", Message: "Description must be at least 50 characters long"},
	}, appErr.Fields)

	assert.Empty(t, memory.Events())
	assert.Zero(t, rebuilder.calls)
}

func TestSubmitEventLeadTimeRejection(t *testing.T) {
	svc, memory, _, _ := newTestScheduling(t)

	// Same-day submission fails the notice rule before the conflict gate
	// ever sees it.
	_, err := svc.SubmitEvent(submitRequest("Robotics Club", "2026-06-01", "15:00", "16:00"))
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Fields, appErrors.FieldError{Field: "date", Message: "Events must be scheduled at least 24 hours in advance"})
	assert.Empty(t, memory.Events())
}

func TestSubmitEventStrictReferences(t *testing.T) {
	memory := store.NewMemory()
	catalog := &stubCatalog{
		venues: map[string]bool{"Main Building/Main Auditorium": true},
		staff:  map[string]bool{"cs1": true},
	}
	svc := NewSchedulingService(SchedulingServiceParams{
		Store:            memory,
		References:       catalog,
		StrictReferences: true,
	}).WithClock(func() time.Time { return conflictNow })

	_, err := svc.SubmitEvent(submitRequest("Robotics Club", "2026-06-10", "10:00", "12:00"))
	require.NoError(t, err)

	req := submitRequest("Robotics Club", "2026-06-11", "10:00", "12:00")
	req.Venue = "Broom Closet"
	_, err = svc.SubmitEvent(req)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, appErrors.FieldError{Field: "venue", Message: "Unknown venue for the selected building"})
}

func TestSubmitTicket(t *testing.T) {
	svc, memory, rebuilder, metrics := newTestScheduling(t)

	ticket, err := svc.SubmitTicket(dto.SubmitTicketRequest{
		Club:        "Robotics Club",
		Title:       "Projector broken",
		Description: schedulingDescription,
		Category:    "Equipment",
		Priority:    "high",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)
	assert.Equal(t, models.TicketPriorityHigh, ticket.Priority)
	assert.Len(t, memory.Tickets(), 1)
	assert.Equal(t, 1, rebuilder.calls)
	assert.Equal(t, []string{"ticket/accepted"}, metrics.outcomes)

	_, err = svc.SubmitTicket(dto.SubmitTicketRequest{Club: "Robotics Club"})
	require.Error(t, err)
	assert.Len(t, memory.Tickets(), 1)
}

func TestSubmitStaffInvite(t *testing.T) {
	svc, memory, _, _ := newTestScheduling(t)

	invite, err := svc.SubmitStaffInvite(dto.SubmitStaffInviteRequest{
		Club:        "Robotics Club",
		Department:  "Computer Science",
		StaffID:     "cs1",
		StaffName:   "Dr. John Smith",
		Role:        "Coordinator",
		Description: schedulingDescription,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusPending, invite.Status)
	assert.Equal(t, models.InviteCategoryPending, invite.Category)
	assert.Len(t, memory.Invites(), 1)
}

func TestEventsByClubInsertionOrder(t *testing.T) {
	svc, _, _, _ := newTestScheduling(t)

	_, err := svc.SubmitEvent(submitRequest("Robotics Club", "2026-06-10", "10:00", "12:00"))
	require.NoError(t, err)
	_, err = svc.SubmitEvent(submitRequest("Chess Club", "2026-06-10", "13:00", "14:00"))
	require.NoError(t, err)
	third := submitRequest("Robotics Club", "2026-06-12", "10:00", "12:00")
	third.Title = "Robotics Workshop"
	_, err = svc.SubmitEvent(third)
	require.NoError(t, err)

	events := svc.EventsByClub("Robotics Club")
	require.Len(t, events, 2)
	assert.Equal(t, "Robotics Showcase", events[0].Title)
	assert.Equal(t, "Robotics Workshop", events[1].Title)
}

func TestEventProjections(t *testing.T) {
	memory := store.NewMemory()
	svc := NewSchedulingService(SchedulingServiceParams{Store: memory}).
		WithClock(func() time.Time { return conflictNow })

	base := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	seed := []models.Event{
		{ID: "e1", Date: "2026-06-10", StartTime: "10:00", EndTime: "12:00", Status: models.EventStatusApproved, CreatedAt: base, UpdatedAt: base},
		{ID: "e2", Date: "2026-05-20", StartTime: "10:00", EndTime: "12:00", Status: models.EventStatusApproved, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(3 * time.Hour)},
		{ID: "e3", Date: "2026-06-05", StartTime: "10:00", EndTime: "12:00", Status: models.EventStatusApproved, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "e4", Date: "2026-07-01", StartTime: "10:00", EndTime: "12:00", Status: models.EventStatusPending, CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base.Add(3 * time.Hour)},
		{ID: "e5", Date: "2026-07-02", StartTime: "10:00", EndTime: "12:00", Status: models.EventStatusPending, CreatedAt: base.Add(4 * time.Hour), UpdatedAt: base.Add(4 * time.Hour)},
	}
	for _, e := range seed {
		memory.AppendEvent(e)
	}

	upcoming := svc.UpcomingEvents()
	require.Len(t, upcoming, 2)
	assert.Equal(t, "e3", upcoming[0].ID)
	assert.Equal(t, "e1", upcoming[1].ID)

	past := svc.PastEvents()
	require.Len(t, past, 1)
	assert.Equal(t, "e2", past[0].ID)

	pending := svc.PendingApprovals()
	require.Len(t, pending, 2)
	assert.Equal(t, "e5", pending[0].ID)
	assert.Equal(t, "e4", pending[1].ID)

	approved := svc.ApprovedEvents()
	require.Len(t, approved, 3)
	assert.Equal(t, "e2", approved[0].ID)
	assert.Equal(t, "e3", approved[1].ID)
	assert.Equal(t, "e1", approved[2].ID)
}

func TestInvitesByCategory(t *testing.T) {
	memory := store.NewMemory()
	svc := NewSchedulingService(SchedulingServiceParams{Store: memory}).
		WithClock(func() time.Time { return conflictNow })

	base := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	memory.AppendInvite(models.StaffInvite{ID: "i1", Category: models.InviteCategoryPending, CreatedAt: base})
	memory.AppendInvite(models.StaffInvite{ID: "i2", Category: models.InviteCategoryApproved, CreatedAt: base.Add(time.Hour)})
	memory.AppendInvite(models.StaffInvite{ID: "i3", Category: models.InviteCategoryPending, CreatedAt: base.Add(2 * time.Hour)})

	pending := svc.InvitesByCategory(models.InviteCategoryPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "i3", pending[0].ID)
	assert.Equal(t, "i1", pending[1].ID)

	approved := svc.InvitesByCategory(models.InviteCategoryApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, "i2", approved[0].ID)
}
