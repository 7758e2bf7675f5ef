package service

import (
	"time"

	"github.com/campusdesk/events-api/internal/models"
)

// ConflictChecker decides whether a candidate slot is blocked against the
// current event collection. It is a second, independent gate after field
// validation: the lead-time rule is enforced here as well as in the
// validation rules, matching the behaviour of the legacy dashboard.
type ConflictChecker struct {
	leadTime time.Duration
}

// NewConflictChecker constructs a checker with the given notice period.
func NewConflictChecker(leadTime time.Duration) *ConflictChecker {
	if leadTime <= 0 {
		leadTime = 24 * time.Hour
	}
	return &ConflictChecker{leadTime: leadTime}
}

// Blocked reports whether the candidate slot must be rejected. Two
// independent conditions block: insufficient notice, or a time overlap with
// any existing event on the same venue and date. Event status is ignored on
// purpose: a pending request reserves its slot until an admin decides.
func (c *ConflictChecker) Blocked(now time.Time, events []models.Event, date, startTime, endTime, venue string) bool {
	newStart, err := models.CombineDateTime(date, startTime)
	if err != nil {
		return false // unparseable input never reaches this gate; validation rejects it first
	}
	if newStart.Before(now.Add(c.leadTime)) {
		return true
	}

	newEnd, err := models.CombineDateTime(date, endTime)
	if err != nil {
		return false
	}

	for _, event := range events {
		if event.Venue != venue || event.Date != date {
			continue
		}
		// Half-open interval test: touching boundaries do not overlap, so
		// back-to-back bookings are allowed.
		if newStart.Before(event.EndsAt()) && newEnd.After(event.StartsAt()) {
			return true
		}
	}

	return false
}
