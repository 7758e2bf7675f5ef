package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campusdesk/events-api/internal/models"
	"github.com/campusdesk/events-api/internal/store"
)

type rebuildObserver interface {
	ObserveAnalyticsRebuild(duration time.Duration)
}

// AnalyticsService maintains the derived analytics snapshot. Every rebuild
// is a full reduction over the three collections; nothing is patched
// incrementally, so the snapshot can never drift from the source data.
type AnalyticsService struct {
	store   *store.Memory
	logger  *zap.Logger
	metrics rebuildObserver
	now     func() time.Time

	mu       sync.RWMutex
	snapshot models.EventAnalytics
}

// NewAnalyticsService constructs the aggregator and primes an initial
// snapshot from the current (usually empty) collections.
func NewAnalyticsService(st *store.Memory, logger *zap.Logger) *AnalyticsService {
	if st == nil {
		st = store.NewMemory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AnalyticsService{store: st, logger: logger, now: time.Now}
	s.Rebuild()
	return s
}

// Rebuild recomputes the snapshot from scratch. Called synchronously after
// every successful mutation; calling it again without an intervening
// mutation yields an identical result.
func (s *AnalyticsService) Rebuild() {
	started := time.Now()
	events, tickets, invites := s.store.Snapshot()
	now := s.now()

	snapshot := models.EventAnalytics{
		ClubEvents:          clubEventCounts(events),
		BuildingUsage:       buildingUsageCounts(events),
		UpcomingEvents:      upcomingEvents(now, events),
		TotalEvents:         len(events),
		PendingApprovals:    countPending(events),
		TicketsByPriority:   ticketPriorityCounts(tickets),
		InvitesByDepartment: departmentInviteCounts(invites),
		EventsByStatus:      statusCounts(events),
		MonthlyEventCount:   monthCounts(events),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ObserveAnalyticsRebuild(time.Since(started))
	}
}

// Snapshot returns the current analytics value. The embedded slices are
// copies; callers may not observe later rebuilds through them.
func (s *AnalyticsService) Snapshot() models.EventAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snapshot
	out.ClubEvents = append([]models.ClubEventCount(nil), s.snapshot.ClubEvents...)
	out.BuildingUsage = append([]models.BuildingUsageCount(nil), s.snapshot.BuildingUsage...)
	out.UpcomingEvents = append([]models.Event(nil), s.snapshot.UpcomingEvents...)
	out.TicketsByPriority = append([]models.TicketPriorityCount(nil), s.snapshot.TicketsByPriority...)
	out.InvitesByDepartment = append([]models.DepartmentInviteCount(nil), s.snapshot.InvitesByDepartment...)
	out.EventsByStatus = append([]models.StatusCount(nil), s.snapshot.EventsByStatus...)
	out.MonthlyEventCount = append([]models.MonthCount(nil), s.snapshot.MonthlyEventCount...)
	return out
}

// WithClock overrides the time source; tests use it to fix "now".
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	if now != nil {
		s.now = now
	}
	return s
}

// WithMetrics attaches a rebuild duration observer.
func (s *AnalyticsService) WithMetrics(metrics rebuildObserver) *AnalyticsService {
	s.metrics = metrics
	return s
}

// groupedCounter accumulates counts per string key, remembering the order in
// which keys were first seen so group order matches the reduction order.
type groupedCounter struct {
	order  []string
	counts map[string]int
}

func newGroupedCounter() *groupedCounter {
	return &groupedCounter{counts: make(map[string]int)}
}

func (g *groupedCounter) add(key string) {
	if _, seen := g.counts[key]; !seen {
		g.order = append(g.order, key)
	}
	g.counts[key]++
}

func clubEventCounts(events []models.Event) []models.ClubEventCount {
	g := newGroupedCounter()
	for _, e := range events {
		g.add(e.Club)
	}
	out := make([]models.ClubEventCount, 0, len(g.order))
	for _, club := range g.order {
		out = append(out, models.ClubEventCount{Club: club, Count: g.counts[club]})
	}
	return out
}

func buildingUsageCounts(events []models.Event) []models.BuildingUsageCount {
	g := newGroupedCounter()
	for _, e := range events {
		g.add(e.Building)
	}
	out := make([]models.BuildingUsageCount, 0, len(g.order))
	for _, building := range g.order {
		out = append(out, models.BuildingUsageCount{Building: building, Count: g.counts[building]})
	}
	return out
}

func ticketPriorityCounts(tickets []models.Ticket) []models.TicketPriorityCount {
	g := newGroupedCounter()
	for _, t := range tickets {
		g.add(string(t.Priority))
	}
	out := make([]models.TicketPriorityCount, 0, len(g.order))
	for _, priority := range g.order {
		out = append(out, models.TicketPriorityCount{Priority: priority, Count: g.counts[priority]})
	}
	return out
}

func departmentInviteCounts(invites []models.StaffInvite) []models.DepartmentInviteCount {
	g := newGroupedCounter()
	for _, inv := range invites {
		g.add(inv.Department)
	}
	out := make([]models.DepartmentInviteCount, 0, len(g.order))
	for _, department := range g.order {
		out = append(out, models.DepartmentInviteCount{Department: department, Count: g.counts[department]})
	}
	return out
}

func statusCounts(events []models.Event) []models.StatusCount {
	g := newGroupedCounter()
	for _, e := range events {
		g.add(string(e.Status))
	}
	out := make([]models.StatusCount, 0, len(g.order))
	for _, status := range g.order {
		out = append(out, models.StatusCount{Status: capitalize(status), Count: g.counts[status]})
	}
	return out
}

func monthCounts(events []models.Event) []models.MonthCount {
	g := newGroupedCounter()
	for _, e := range events {
		day, err := models.ParseDate(e.Date)
		if err != nil {
			continue // stored events always carry a valid date
		}
		g.add(day.Month().String())
	}
	out := make([]models.MonthCount, 0, len(g.order))
	for _, month := range g.order {
		out = append(out, models.MonthCount{Month: month, Count: g.counts[month]})
	}
	return out
}

func countPending(events []models.Event) int {
	n := 0
	for _, e := range events {
		if e.Status == models.EventStatusPending {
			n++
		}
	}
	return n
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
