// Package memory provides in-memory repositories backing tests and local
// runs without PostgreSQL. The store enforces the same referential integrity
// the SQL schema does.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/ports/output"
)

var (
	_ output.EventRepository        = (*EventRepository)(nil)
	_ output.RegistrationRepository = (*RegistrationRepository)(nil)
)

// Store holds the shared dataset. Repositories are views over one Store so
// derived attendee counts and referential checks see the same data.
type Store struct {
	mu            sync.RWMutex
	events        []entities.Event
	registrations []entities.Registration
	nextEventID   uint
	nextRegID     uint
}

func NewStore() *Store {
	return &Store{nextEventID: 1, nextRegID: 1}
}

func (s *Store) Events() *EventRepository {
	return &EventRepository{s: s}
}

func (s *Store) Registrations() *RegistrationRepository {
	return &RegistrationRepository{s: s}
}

type EventRepository struct {
	s *Store
}

func (r *EventRepository) Create(_ context.Context, event *entities.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insertEvent(event)
	return nil
}

func (r *EventRepository) CreateBatch(_ context.Context, events []*entities.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, event := range events {
		r.s.insertEvent(event)
	}
	return nil
}

func (r *EventRepository) FindByID(_ context.Context, id uint) (*entities.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.events {
		if r.s.events[i].ID == id {
			e := r.s.events[i]
			e.Attendees = r.s.countAttendees(id)
			return &e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *EventRepository) ListWithAttendees(_ context.Context) ([]entities.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Event, len(r.s.events))
	copy(out, r.s.events)
	for i := range out {
		out[i].Attendees = r.s.countAttendees(out[i].ID)
	}
	return out, nil
}

func (r *EventRepository) TitlesByIDs(_ context.Context, ids []uint) (map[uint]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	want := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	titles := make(map[uint]string, len(ids))
	for i := range r.s.events {
		if _, ok := want[r.s.events[i].ID]; ok {
			titles[r.s.events[i].ID] = r.s.events[i].Title
		}
	}
	return titles, nil
}

type RegistrationRepository struct {
	s *Store
}

func (r *RegistrationRepository) Create(_ context.Context, registration *entities.Registration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.eventExists(registration.EventID) {
		return domain.ErrEventNotFound
	}
	r.s.insertRegistration(registration)
	return nil
}

func (r *RegistrationRepository) CreateBatch(_ context.Context, registrations []*entities.Registration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// all-or-none: verify every reference before touching the log
	for _, registration := range registrations {
		if !r.s.eventExists(registration.EventID) {
			return domain.ErrEventNotFound
		}
	}
	for _, registration := range registrations {
		r.s.insertRegistration(registration)
	}
	return nil
}

func (r *RegistrationRepository) ListCreatedSince(_ context.Context, cutoff time.Time) ([]entities.Registration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Registration, 0)
	for i := range r.s.registrations {
		if !r.s.registrations[i].CreatedAt.Before(cutoff) {
			out = append(out, r.s.registrations[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *RegistrationRepository) CountCreatedSince(_ context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for i := range r.s.registrations {
		if !r.s.registrations[i].CreatedAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

func (s *Store) insertEvent(event *entities.Event) {
	event.ID = s.nextEventID
	s.nextEventID++
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.events = append(s.events, *event)
}

func (s *Store) insertRegistration(registration *entities.Registration) {
	registration.ID = s.nextRegID
	s.nextRegID++
	if registration.CreatedAt.IsZero() {
		registration.CreatedAt = time.Now()
	}
	s.registrations = append(s.registrations, *registration)
}

func (s *Store) eventExists(id uint) bool {
	for i := range s.events {
		if s.events[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Store) countAttendees(eventID uint) int {
	n := 0
	for i := range s.registrations {
		if s.registrations[i].EventID == eventID {
			n++
		}
	}
	return n
}
