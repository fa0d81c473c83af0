package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventhub/internal/application"
	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/infrastructure/memory"
	"eventhub/internal/ports/input"
)

func seedEvent(t *testing.T, store *memory.Store) *entities.Event {
	t.Helper()
	event := &entities.Event{Title: "Go Conference", Date: time.Now().Add(24 * time.Hour)}
	if err := store.Events().Create(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func TestRegisterSuccess(t *testing.T) {
	store := memory.NewStore()
	event := seedEvent(t, store)
	svc := application.NewRegistrationService(store.Registrations())

	reg, err := svc.Register(context.Background(), input.RegisterInput{
		EventID: event.ID,
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.ID == 0 {
		t.Error("expected an assigned id")
	}
	if reg.Reference == "" {
		t.Error("expected a reference code")
	}

	got, err := store.Events().FindByID(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Attendees != 1 {
		t.Errorf("attendees = %d, want 1", got.Attendees)
	}
}

func TestRegisterValidation(t *testing.T) {
	store := memory.NewStore()
	event := seedEvent(t, store)
	svc := application.NewRegistrationService(store.Registrations())

	cases := map[string]input.RegisterInput{
		"missing event": {Name: "Ada", Email: "ada@example.com"},
		"missing name":  {EventID: event.ID, Email: "ada@example.com"},
		"missing email": {EventID: event.ID, Name: "Ada"},
		"bad email":     {EventID: event.ID, Name: "Ada", Email: "not-an-email"},
		"blank name":    {EventID: event.ID, Name: "   ", Email: "ada@example.com"},
	}
	for name, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidRegistration) {
			t.Errorf("%s: err = %v, want ErrInvalidRegistration", name, err)
		}
	}

	// No partial writes happened.
	count, err := store.Registrations().CountCreatedSince(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("CountCreatedSince: %v", err)
	}
	if count != 0 {
		t.Errorf("registrations = %d, want 0", count)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	store := memory.NewStore()
	svc := application.NewRegistrationService(store.Registrations())

	_, err := svc.Register(context.Background(), input.RegisterInput{
		EventID: 404,
		Name:    "Ada",
		Email:   "ada@example.com",
	})
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}
