package seed

import (
	"errors"
	"testing"
	"time"

	"eventhub/internal/domain"
)

var (
	from = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func TestEventsWithinWindow(t *testing.T) {
	g := NewGenerator(42)
	events := g.Events(50, from, to)
	if len(events) != 50 {
		t.Fatalf("len = %d, want 50", len(events))
	}
	for i, event := range events {
		if event.Title == "" {
			t.Errorf("event %d has empty title", i)
		}
		if event.Date.Before(from) || event.Date.After(to) {
			t.Errorf("event %d date %v outside [%v, %v]", i, event.Date, from, to)
		}
		if event.Price != nil && *event.Price < 0 {
			t.Errorf("event %d has negative price %v", i, *event.Price)
		}
	}
}

func TestRegistrationsReferenceGeneratedEvents(t *testing.T) {
	g := NewGenerator(42)
	eventIDs := []uint{11, 23, 37}
	valid := map[uint]bool{11: true, 23: true, 37: true}

	regs, err := g.Registrations(200, eventIDs, from, to)
	if err != nil {
		t.Fatalf("Registrations: %v", err)
	}
	if len(regs) != 200 {
		t.Fatalf("len = %d, want 200", len(regs))
	}
	for i, reg := range regs {
		if !valid[reg.EventID] {
			t.Fatalf("registration %d references unknown event id %d", i, reg.EventID)
		}
		if reg.Name == "" || reg.Email == "" {
			t.Errorf("registration %d missing name or email", i)
		}
		if reg.Reference == "" {
			t.Errorf("registration %d missing reference", i)
		}
		if reg.CreatedAt.Before(from) || reg.CreatedAt.After(to) {
			t.Errorf("registration %d created_at %v outside window", i, reg.CreatedAt)
		}
	}
}

func TestRegistrationsRequireEvents(t *testing.T) {
	g := NewGenerator(1)
	if _, err := g.Registrations(5, nil, from, to); !errors.Is(err, domain.ErrNoEvents) {
		t.Errorf("err = %v, want ErrNoEvents", err)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(7).Events(10, from, to)
	b := NewGenerator(7).Events(10, from, to)
	for i := range a {
		if a[i].Title != b[i].Title || !a[i].Date.Equal(b[i].Date) {
			t.Fatalf("same seed produced different events at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
