package models

import "time"

// InviteStatus captures the staff member's decision on a coordination request.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

// InviteCategory mirrors the invite status coarsely for dashboard filtering.
type InviteCategory string

const (
	InviteCategoryPending  InviteCategory = "pending"
	InviteCategoryApproved InviteCategory = "approved"
)

// StaffInvite asks a staff member to coordinate a club's events.
// Acceptance and rejection are external actions.
type StaffInvite struct {
	ID              string         `json:"id"`
	Club            string         `json:"club"`
	StaffID         string         `json:"staffId"`
	StaffName       string         `json:"staffName"`
	Department      string         `json:"department"`
	Role            string         `json:"role"`
	Status          InviteStatus   `json:"status"`
	Category        InviteCategory `json:"category"`
	Description     string         `json:"description"`
	Response        string         `json:"response,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
