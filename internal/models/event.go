package models

import "time"

// EventStatus captures the administrative lifecycle of a scheduling request.
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusApproved  EventStatus = "approved"
	EventStatusRejected  EventStatus = "rejected"
	EventStatusCompleted EventStatus = "completed"
)

// StaffCoordinator references a staff record from the department catalog.
type StaffCoordinator struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Event is a club's scheduling request. Dates are local calendar days
// ("2006-01-02") and times are local clock times ("15:04"); the dashboard
// client has no timezone handling, so the pair is only meaningful combined.
type Event struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Club              string            `json:"club"`
	Date              string            `json:"date"`
	StartTime         string            `json:"startTime"`
	EndTime           string            `json:"endTime"`
	Venue             string            `json:"venue"`
	Building          string            `json:"building"`
	Description       string            `json:"description"`
	Status            EventStatus       `json:"status"`
	ClubLogo          string            `json:"clubLogo,omitempty"`
	EventPoster       string            `json:"eventPoster,omitempty"`
	StaffCoordinator  *StaffCoordinator `json:"staffCoordinator"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	RejectionReason   string            `json:"rejectionReason,omitempty"`
	Requirements      string            `json:"requirements,omitempty"`
	ExpectedAttendees int               `json:"expectedAttendees,omitempty"`
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseDate interprets a calendar day at local midnight.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, time.Local)
}

// CombineDateTime derives a full local timestamp from a calendar day and a
// clock time.
func CombineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, date+" "+clock, time.Local)
}

// StartsAt returns the event's combined start timestamp. The zero time is
// returned for malformed fields, which cannot appear on stored events.
func (e Event) StartsAt() time.Time {
	ts, err := CombineDateTime(e.Date, e.StartTime)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// EndsAt returns the event's combined end timestamp.
func (e Event) EndsAt() time.Time {
	ts, err := CombineDateTime(e.Date, e.EndTime)
	if err != nil {
		return time.Time{}
	}
	return ts
}
