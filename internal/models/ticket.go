package models

import "time"

// TicketStatus captures the support lifecycle of an overlap/issue report.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// TicketPriority is the reporter-declared urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// TicketCategory buckets reports for triage.
type TicketCategory string

const (
	TicketCategoryTechnical TicketCategory = "Technical"
	TicketCategoryVenue     TicketCategory = "Venue"
	TicketCategoryEquipment TicketCategory = "Equipment"
	TicketCategoryOther     TicketCategory = "Other"
)

// Ticket is an issue report tied to a club. Resolution is an external
// administrative action.
type Ticket struct {
	ID          string         `json:"id"`
	Club        string         `json:"club"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
	Category    TicketCategory `json:"category"`
	Attachments []string       `json:"attachments,omitempty"`
	Resolution  string         `json:"resolution,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
