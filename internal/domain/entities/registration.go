package entities

import "time"

// Registration records one attendee signing up for an event. Registrations
// are append-only: created by the registration write path, never updated or
// deleted afterwards.
type Registration struct {
	ID        uint
	EventID   uint
	Reference string // public lookup code handed back to the registrant
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
