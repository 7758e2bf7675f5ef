package dto

import "github.com/campusdesk/events-api/internal/models"

// SubmitEventRequest is the partially-filled event record a club submits.
// Admission rules run over it before any state changes.
type SubmitEventRequest struct {
	Title             string                   `json:"title"`
	Club              string                   `json:"club"`
	Date              string                   `json:"date"`
	StartTime         string                   `json:"startTime"`
	EndTime           string                   `json:"endTime"`
	Venue             string                   `json:"venue"`
	Building          string                   `json:"building"`
	Description       string                   `json:"description"`
	Requirements      string                   `json:"requirements"`
	ExpectedAttendees int                      `json:"expectedAttendees"`
	ClubLogo          string                   `json:"clubLogo"`
	EventPoster       string                   `json:"eventPoster"`
	StaffCoordinator  *models.StaffCoordinator `json:"staffCoordinator"`
}

// SubmitTicketRequest reports an overlap or venue issue.
type SubmitTicketRequest struct {
	Club        string   `json:"club"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Attachments []string `json:"attachments"`
}

// SubmitStaffInviteRequest asks a staff member to coordinate for a club.
type SubmitStaffInviteRequest struct {
	Club        string `json:"club"`
	Department  string `json:"department"`
	StaffID     string `json:"staffId"`
	StaffName   string `json:"staffName"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// SubmitResponse returns the identity assigned to an accepted submission.
type SubmitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
