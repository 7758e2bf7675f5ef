package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/events-api/internal/models"
)

var conflictNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.Local)

func bookedEvent(venue, date, start, end string, status models.EventStatus) models.Event {
	return models.Event{
		ID:        "existing",
		Title:     "Existing Booking",
		Venue:     venue,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestConflictCheckerOverlap(t *testing.T) {
	existing := []models.Event{
		bookedEvent("Main Auditorium", "2026-06-10", "10:00", "12:00", models.EventStatusPending),
	}
	checker := NewConflictChecker(24 * time.Hour)

	cases := []struct {
		name       string
		start, end string
		venue      string
		date       string
		blocked    bool
	}{
		{"partial overlap from the right", "11:00", "13:00", "Main Auditorium", "2026-06-10", true},
		{"partial overlap from the left", "09:00", "11:00", "Main Auditorium", "2026-06-10", true},
		{"identical slot", "10:00", "12:00", "Main Auditorium", "2026-06-10", true},
		{"enveloping slot", "09:00", "15:00", "Main Auditorium", "2026-06-10", true},
		{"contained slot", "10:30", "11:30", "Main Auditorium", "2026-06-10", true},
		{"back-to-back after", "12:00", "13:00", "Main Auditorium", "2026-06-10", false},
		{"back-to-back before", "09:00", "10:00", "Main Auditorium", "2026-06-10", false},
		{"different venue", "10:00", "12:00", "Lecture Hall 1", "2026-06-10", false},
		{"different date", "10:00", "12:00", "Main Auditorium", "2026-06-11", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := checker.Blocked(conflictNow, existing, tc.date, tc.start, tc.end, tc.venue)
			assert.Equal(t, tc.blocked, got)
		})
	}
}

func TestConflictCheckerIgnoresStatus(t *testing.T) {
	// A rejected booking still reserves its slot in the checker; admission
	// only looks at venue, date, and times.
	existing := []models.Event{
		bookedEvent("Main Auditorium", "2026-06-10", "10:00", "12:00", models.EventStatusRejected),
	}
	checker := NewConflictChecker(24 * time.Hour)
	assert.True(t, checker.Blocked(conflictNow, existing, "2026-06-10", "11:00", "13:00", "Main Auditorium"))
}

func TestConflictCheckerLeadTime(t *testing.T) {
	checker := NewConflictChecker(24 * time.Hour)

	// Inside the notice period blocks even with an empty collection.
	assert.True(t, checker.Blocked(conflictNow, nil, "2026-06-01", "15:00", "16:00", "Main Auditorium"))
	assert.True(t, checker.Blocked(conflictNow, nil, "2026-06-02", "11:00", "12:00", "Main Auditorium"))

	// Exactly at the notice boundary passes.
	assert.False(t, checker.Blocked(conflictNow, nil, "2026-06-02", "12:00", "13:00", "Main Auditorium"))
}

func TestConflictCheckerUnparseableInput(t *testing.T) {
	checker := NewConflictChecker(24 * time.Hour)

	// Field validation rejects malformed slots before this gate runs, so
	// the checker treats them as non-blocking rather than guessing.
	assert.False(t, checker.Blocked(conflictNow, nil, "someday", "10:00", "12:00", "Main Auditorium"))
	assert.False(t, checker.Blocked(conflictNow, nil, "2026-06-10", "ten", "12:00", "Main Auditorium"))
	assert.False(t, checker.Blocked(conflictNow, nil, "2026-06-10", "10:00", "noon", "Main Auditorium"))
}
