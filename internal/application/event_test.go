package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventhub/internal/application"
	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/domain/filter"
	"eventhub/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

func newEventService(store *memory.Store) *application.EventService {
	return application.NewEventService(store.Events()).
		WithClock(func() time.Time { return fixedNow })
}

func TestCreateEventRequiresTitle(t *testing.T) {
	svc := newEventService(memory.NewStore())
	err := svc.CreateEvent(context.Background(), &entities.Event{Title: "   "})
	if !errors.Is(err, domain.ErrInvalidEvent) {
		t.Errorf("err = %v, want ErrInvalidEvent", err)
	}
}

func TestGetEventNotFound(t *testing.T) {
	svc := newEventService(memory.NewStore())
	if _, err := svc.GetEvent(context.Background(), 99); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestListFiltered(t *testing.T) {
	store := memory.NewStore()
	svc := newEventService(store)
	ctx := context.Background()

	events := []*entities.Event{
		{Title: "Go Conference", Location: "Berlin", Date: fixedNow.Add(48 * time.Hour)},
		{Title: "Jazz Night", Location: "Paris", Date: fixedNow.Add(-48 * time.Hour)},
	}
	if err := store.Events().CreateBatch(ctx, events); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := svc.ListFiltered(ctx, filter.Filters{Status: filter.StatusUpcoming})
	if err != nil {
		t.Fatalf("ListFiltered: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Go Conference" {
		t.Errorf("got %v, want only the upcoming event", got)
	}

	// Empty filters are the identity.
	all, err := svc.ListFiltered(ctx, filter.Filters{})
	if err != nil {
		t.Fatalf("ListFiltered: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}
}

func TestFacets(t *testing.T) {
	store := memory.NewStore()
	svc := newEventService(store)
	ctx := context.Background()

	if err := store.Events().Create(ctx, &entities.Event{
		Title:    "Go Conference",
		Location: "Berlin",
		Tags:     entities.ParseTags("tech, community"),
		Date:     fixedNow,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	facets, err := svc.Facets(ctx)
	if err != nil {
		t.Fatalf("Facets: %v", err)
	}
	if len(facets.Locations) != 1 || facets.Locations[0] != "Berlin" {
		t.Errorf("locations = %v", facets.Locations)
	}
	if len(facets.Categories) != 2 {
		t.Errorf("categories = %v", facets.Categories)
	}
}
