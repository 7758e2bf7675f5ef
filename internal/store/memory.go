// Package store owns the authoritative in-memory collections. Nothing else
// mutates them: the scheduling service is the single writer and readers get
// copies, so a returned slice can be sorted or filtered freely.
package store

import (
	"sync"

	"github.com/campusdesk/events-api/internal/models"
)

// Memory holds the three collections in insertion order. Appends never
// reorder; reads are safe under concurrent use.
type Memory struct {
	mu      sync.RWMutex
	events  []models.Event
	tickets []models.Ticket
	invites []models.StaffInvite
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// AppendEvent adds an event to the end of the collection.
func (m *Memory) AppendEvent(event models.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

// AppendTicket adds a ticket to the end of the collection.
func (m *Memory) AppendTicket(ticket models.Ticket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets = append(m.tickets, ticket)
}

// AppendInvite adds a staff invite to the end of the collection.
func (m *Memory) AppendInvite(invite models.StaffInvite) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invites = append(m.invites, invite)
}

// Events returns a copy of the event collection in insertion order.
func (m *Memory) Events() []models.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyEvents(m.events)
}

// Tickets returns a copy of the ticket collection in insertion order.
func (m *Memory) Tickets() []models.Ticket {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Ticket, len(m.tickets))
	copy(out, m.tickets)
	return out
}

// Invites returns a copy of the invite collection in insertion order.
func (m *Memory) Invites() []models.StaffInvite {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.StaffInvite, len(m.invites))
	copy(out, m.invites)
	return out
}

// Snapshot returns all three collections under a single read lock so derived
// analytics always see a consistent view.
func (m *Memory) Snapshot() ([]models.Event, []models.Ticket, []models.StaffInvite) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	events := copyEvents(m.events)
	tickets := make([]models.Ticket, len(m.tickets))
	copy(tickets, m.tickets)
	invites := make([]models.StaffInvite, len(m.invites))
	copy(invites, m.invites)
	return events, tickets, invites
}

func copyEvents(src []models.Event) []models.Event {
	out := make([]models.Event, len(src))
	copy(out, src)
	return out
}
