package models

// ClubEventCount is the number of events owned by a club.
type ClubEventCount struct {
	Club  string `json:"club"`
	Count int    `json:"count"`
}

// BuildingUsageCount is the number of events hosted in a building.
type BuildingUsageCount struct {
	Building string `json:"building"`
	Count    int    `json:"count"`
}

// TicketPriorityCount groups tickets by declared priority.
type TicketPriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// DepartmentInviteCount groups staff invites by department.
type DepartmentInviteCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// StatusCount groups events by status; the label is capitalized for display.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthCount groups events by English calendar month name.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// EventAnalytics is a derived snapshot over the three collections. It has no
// identity of its own: it is always rebuilt in full, never patched.
type EventAnalytics struct {
	ClubEvents          []ClubEventCount        `json:"clubEvents"`
	BuildingUsage       []BuildingUsageCount    `json:"buildingUsage"`
	UpcomingEvents      []Event                 `json:"upcomingEvents"`
	TotalEvents         int                     `json:"totalEvents"`
	PendingApprovals    int                     `json:"pendingApprovals"`
	TicketsByPriority   []TicketPriorityCount   `json:"ticketsByPriority"`
	InvitesByDepartment []DepartmentInviteCount `json:"invitesByDepartment"`
	EventsByStatus      []StatusCount           `json:"eventsByStatus"`
	MonthlyEventCount   []MonthCount            `json:"monthlyEventCount"`
}
