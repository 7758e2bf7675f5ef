package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
)

var fixedNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.Local)

const longDescription = "A detailed description of the annual robotics showcase, demos included."

func validEventRequest() dto.SubmitEventRequest {
	return dto.SubmitEventRequest{
		Title:            "Robotics Showcase",
		Club:             "Robotics Club",
		Date:             "2026-06-10",
		StartTime:        "10:00",
		EndTime:          "12:00",
		Venue:            "Main Auditorium",
		Building:         "Main Building",
		Description:      longDescription,
		StaffCoordinator: &models.StaffCoordinator{ID: "cs1", Name: "Dr. John Smith", Department: "Computer Science"},
	}
}

func fieldMessages(errs []appErrors.FieldError, field string) []string {
	var out []string
	for _, e := range errs {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestEventRulesAcceptsValidRequest(t *testing.T) {
	errs := DefaultEventRules().Event(fixedNow, validEventRequest())
	assert.Empty(t, errs)
}

func TestEventRulesCollectsAllMissingFields(t *testing.T) {
	errs := DefaultEventRules().Event(fixedNow, dto.SubmitEventRequest{})

	expected := []appErrors.FieldError{
		{Field: "title", Message: "Event title is required"},
		{Field: "date", Message: "Event date is required"},
		{Field: "startTime", Message: "Start time is required"},
		{Field: "endTime", Message: "End time is required"},
		{Field: "venue", Message: "Venue is required"},
		{Field: "building", Message: "Building is required"},
		{Field: "staffCoordinator", Message: "Staff coordinator is required"},
		{Field: "description", Message: "Event description is required"},
	}
	assert.Equal(t, expected, errs)
}

func TestEventRulesInvalidDate(t *testing.T) {
	req := validEventRequest()
	req.Date = "next tuesday"
	errs := DefaultEventRules().Event(fixedNow, req)
	assert.Equal(t, []string{"Event date is invalid"}, fieldMessages(errs, "date"))
}

func TestEventRulesPastDate(t *testing.T) {
	req := validEventRequest()
	req.Date = "2026-05-20"
	errs := DefaultEventRules().Event(fixedNow, req)
	messages := fieldMessages(errs, "date")
	require.NotEmpty(t, messages)
	assert.Equal(t, "Event date must be in the future", messages[0])
}

func TestEventRulesLeadTime(t *testing.T) {
	req := validEventRequest()
	req.Date = fixedNow.Format("2006-01-02")
	req.StartTime = "15:00"
	req.EndTime = "16:00"
	errs := DefaultEventRules().Event(fixedNow, req)
	assert.Contains(t, fieldMessages(errs, "date"), "Events must be scheduled at least 24 hours in advance")
}

func TestEventRulesLeadTimeBoundary(t *testing.T) {
	// Exactly 24 hours ahead is not "at least 24 hours": Before(now+24h) is
	// false, so the boundary passes.
	req := validEventRequest()
	req.Date = "2026-06-02"
	req.StartTime = "12:00"
	req.EndTime = "13:00"
	errs := DefaultEventRules().Event(fixedNow, req)
	assert.Empty(t, errs)
}

func TestEventRulesEndBeforeStart(t *testing.T) {
	req := validEventRequest()
	req.StartTime = "14:00"
	req.EndTime = "13:00"
	errs := DefaultEventRules().Event(fixedNow, req)
	assert.Equal(t, []string{"End time must be after start time"}, fieldMessages(errs, "endTime"))
}

func TestEventRulesEndEqualsStart(t *testing.T) {
	req := validEventRequest()
	req.StartTime = "14:00"
	req.EndTime = "14:00"
	errs := DefaultEventRules().Event(fixedNow, req)
	assert.Equal(t, []string{"End time must be after start time"}, fieldMessages(errs, "endTime"))
}

func TestEventRulesOperatingWindow(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		startMsg   bool
		endMsg     bool
	}{
		{"before opening", "08:00", "10:00", true, false},
		{"after closing", "18:00", "19:00", true, true},
		{"ends after closing", "16:00", "18:30", false, true},
		{"window edges", "09:00", "17:00", false, false},
		// The window check only looks at the hour component, so 17:30
		// still counts as the 5 PM hour and passes.
		{"half past five", "17:30", "17:45", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validEventRequest()
			req.StartTime = tc.start
			req.EndTime = tc.end
			errs := DefaultEventRules().Event(fixedNow, req)

			startMessages := fieldMessages(errs, "startTime")
			if tc.startMsg {
				assert.Contains(t, startMessages, "Events must be scheduled between 9 AM and 5 PM")
			} else {
				assert.Empty(t, startMessages)
			}
			endMessages := fieldMessages(errs, "endTime")
			if tc.endMsg {
				assert.Contains(t, endMessages, "Events must end between 9 AM and 5 PM")
			} else {
				assert.Empty(t, endMessages)
			}
		})
	}
}

func TestEventRulesDescription(t *testing.T) {
	t.Run("blank yields only the required error", func(t *testing.T) {
		req := validEventRequest()
		req.Description = "   "
		errs := DefaultEventRules().Event(fixedNow, req)
		assert.Equal(t, []string{"Event description is required"}, fieldMessages(errs, "description"))
	})

	t.Run("short yields only the length error", func(t *testing.T) {
		req := validEventRequest()
		req.Description = "Too short to say anything useful."
		errs := DefaultEventRules().Event(fixedNow, req)
		assert.Equal(t, []string{"Description must be at least 50 characters long"}, fieldMessages(errs, "description"))
	})
}

func TestEventRulesSkipsWindowWhenDateInvalid(t *testing.T) {
	req := validEventRequest()
	req.Date = "not-a-date"
	req.StartTime = "08:00"
	errs := DefaultEventRules().Event(fixedNow, req)
	assert.Empty(t, fieldMessages(errs, "startTime"))
}

func TestTicketRules(t *testing.T) {
	errs := Ticket(dto.SubmitTicketRequest{})
	expected := []appErrors.FieldError{
		{Field: "title", Message: "Ticket title is required"},
		{Field: "description", Message: "Description is required"},
		{Field: "category", Message: "Category is required"},
		{Field: "priority", Message: "Priority level is required"},
	}
	assert.Equal(t, expected, errs)

	errs = Ticket(dto.SubmitTicketRequest{
		Title:       "Projector broken",
		Description: longDescription,
		Category:    "Equipment",
		Priority:    "high",
	})
	assert.Empty(t, errs)
}

func TestStaffInviteRules(t *testing.T) {
	errs := StaffInvite(dto.SubmitStaffInviteRequest{Role: "  "})
	expected := []appErrors.FieldError{
		{Field: "department", Message: "Department is required"},
		{Field: "staff", Message: "Staff member selection is required"},
		{Field: "role", Message: "Role is required"},
		{Field: "description", Message: "Description is required"},
	}
	assert.Equal(t, expected, errs)

	errs = StaffInvite(dto.SubmitStaffInviteRequest{
		Department:  "Computer Science",
		StaffID:     "cs1",
		StaffName:   "Dr. John Smith",
		Role:        "Coordinator",
		Description: longDescription,
	})
	assert.Empty(t, errs)
}
