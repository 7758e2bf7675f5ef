// Package validation holds the pure admission rules for submissions. Rules
// collect every violation in evaluation order; they never short-circuit and
// never touch state.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/campusdesk/events-api/internal/dto"
	"github.com/campusdesk/events-api/internal/models"
	appErrors "github.com/campusdesk/events-api/pkg/errors"
)

const minDescriptionLen = 50

// EventRules parameterises the event admission checks. The zero value is not
// usable; construct via DefaultEventRules or from config.
type EventRules struct {
	LeadTime    time.Duration
	OpeningHour int
	ClosingHour int
}

// DefaultEventRules returns the campus policy: 24 hours notice, events
// between 09:00 and 17:00.
func DefaultEventRules() EventRules {
	return EventRules{LeadTime: 24 * time.Hour, OpeningHour: 9, ClosingHour: 17}
}

// Event checks a candidate event submission against field-level and business
// constraints. `now` is the injected evaluation time.
func (r EventRules) Event(now time.Time, req dto.SubmitEventRequest) []appErrors.FieldError {
	var errs []appErrors.FieldError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, appErrors.FieldError{Field: "title", Message: "Event title is required"})
	}

	dateValid := false
	if req.Date == "" {
		errs = append(errs, appErrors.FieldError{Field: "date", Message: "Event date is required"})
	} else if day, err := models.ParseDate(req.Date); err != nil {
		errs = append(errs, appErrors.FieldError{Field: "date", Message: "Event date is invalid"})
	} else {
		dateValid = true
		if day.Before(now) {
			errs = append(errs, appErrors.FieldError{Field: "date", Message: "Event date must be in the future"})
		}
	}

	if req.StartTime == "" {
		errs = append(errs, appErrors.FieldError{Field: "startTime", Message: "Start time is required"})
	}
	if req.EndTime == "" {
		errs = append(errs, appErrors.FieldError{Field: "endTime", Message: "End time is required"})
	}

	if dateValid && req.StartTime != "" && req.EndTime != "" {
		errs = append(errs, r.timeWindow(now, req.Date, req.StartTime, req.EndTime)...)
	}

	if req.Venue == "" {
		errs = append(errs, appErrors.FieldError{Field: "venue", Message: "Venue is required"})
	}
	if req.Building == "" {
		errs = append(errs, appErrors.FieldError{Field: "building", Message: "Building is required"})
	}
	if req.StaffCoordinator == nil {
		errs = append(errs, appErrors.FieldError{Field: "staffCoordinator", Message: "Staff coordinator is required"})
	}

	errs = append(errs, describeErrors(req.Description, "Event description is required")...)

	return errs
}

// timeWindow applies the lead-time, ordering, and operating-hours checks once
// both clock times are present on a parseable date.
func (r EventRules) timeWindow(now time.Time, date, startTime, endTime string) []appErrors.FieldError {
	var errs []appErrors.FieldError

	start, startErr := models.CombineDateTime(date, startTime)
	end, endErr := models.CombineDateTime(date, endTime)
	if startErr != nil {
		return append(errs, appErrors.FieldError{Field: "startTime", Message: "Start time is invalid"})
	}
	if endErr != nil {
		return append(errs, appErrors.FieldError{Field: "endTime", Message: "End time is invalid"})
	}

	if start.Before(now.Add(r.LeadTime)) {
		errs = append(errs, appErrors.FieldError{Field: "date", Message: "Events must be scheduled at least 24 hours in advance"})
	}
	if !end.After(start) {
		errs = append(errs, appErrors.FieldError{Field: "endTime", Message: "End time must be after start time"})
	}

	// Hour-only window check: a start of 17:30 passes because 17 <= 17.
	// Inherited boundary looseness, kept deliberately.
	if h := start.Hour(); h < r.OpeningHour || h > r.ClosingHour {
		errs = append(errs, appErrors.FieldError{Field: "startTime", Message: "Events must be scheduled between 9 AM and 5 PM"})
	}
	if h := end.Hour(); h < r.OpeningHour || h > r.ClosingHour {
		errs = append(errs, appErrors.FieldError{Field: "endTime", Message: "Events must end between 9 AM and 5 PM"})
	}

	return errs
}

// Ticket checks an overlap/issue report submission.
func Ticket(req dto.SubmitTicketRequest) []appErrors.FieldError {
	var errs []appErrors.FieldError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, appErrors.FieldError{Field: "title", Message: "Ticket title is required"})
	}
	errs = append(errs, describeErrors(req.Description, "Description is required")...)
	if req.Category == "" {
		errs = append(errs, appErrors.FieldError{Field: "category", Message: "Category is required"})
	}
	if req.Priority == "" {
		errs = append(errs, appErrors.FieldError{Field: "priority", Message: "Priority level is required"})
	}

	return errs
}

// StaffInvite checks a coordinator invitation submission.
func StaffInvite(req dto.SubmitStaffInviteRequest) []appErrors.FieldError {
	var errs []appErrors.FieldError

	if req.Department == "" {
		errs = append(errs, appErrors.FieldError{Field: "department", Message: "Department is required"})
	}
	if req.StaffID == "" {
		errs = append(errs, appErrors.FieldError{Field: "staff", Message: "Staff member selection is required"})
	}
	if strings.TrimSpace(req.Role) == "" {
		errs = append(errs, appErrors.FieldError{Field: "role", Message: "Role is required"})
	}
	errs = append(errs, describeErrors(req.Description, "Description is required")...)

	return errs
}

// describeErrors reports emptiness or shortness of a description, never both:
// a present-but-short description yields only the length error.
func describeErrors(description, requiredMessage string) []appErrors.FieldError {
	if strings.TrimSpace(description) == "" {
		return []appErrors.FieldError{{Field: "description", Message: requiredMessage}}
	}
	if utf8.RuneCountInString(description) < minDescriptionLen {
		return []appErrors.FieldError{{Field: "description", Message: "Description must be at least 50 characters long"}}
	}
	return nil
}
