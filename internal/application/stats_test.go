package application_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"eventhub/internal/application"
	"eventhub/internal/domain/entities"
	"eventhub/internal/domain/stats"
	"eventhub/internal/infrastructure/memory"
)

func seedStatsData(t *testing.T, store *memory.Store) []*entities.Event {
	t.Helper()
	ctx := context.Background()

	events := make([]*entities.Event, 5)
	for i := range events {
		events[i] = &entities.Event{
			Title: []string{"E1", "E2", "E3", "E4", "E5"}[i],
			Date:  fixedNow,
		}
	}
	if err := store.Events().CreateBatch(ctx, events); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	add := func(event *entities.Event, n int, at time.Time) {
		for i := 0; i < n; i++ {
			err := store.Registrations().Create(ctx, &entities.Registration{
				EventID:   event.ID,
				Name:      "Guest",
				Email:     "guest@example.com",
				CreatedAt: at,
			})
			if err != nil {
				t.Fatalf("Create registration: %v", err)
			}
		}
	}
	inWindow := fixedNow.Add(-24 * time.Hour)
	add(events[2], 10, inWindow) // E3
	add(events[0], 7, inWindow)  // E1
	add(events[1], 3, inWindow)  // E2
	add(events[3], 2, inWindow)  // E4
	// E5 gets none; one stale registration falls outside the window.
	add(events[0], 1, fixedNow.AddDate(0, 0, -45))

	return events
}

func newStatsService(store *memory.Store, opts stats.Options) *application.StatsService {
	return application.NewStatsService(store.Registrations(), store.Events(), opts).
		WithClock(func() time.Time { return fixedNow })
}

func TestPopularEventsRoundTrip(t *testing.T) {
	store := memory.NewStore()
	events := seedStatsData(t, store)
	svc := newStatsService(store, stats.Options{})

	got, err := svc.PopularEvents(context.Background())
	if err != nil {
		t.Fatalf("PopularEvents: %v", err)
	}
	want := []stats.PopularEvent{
		{EventID: events[2].ID, Title: "E3", TotalRegistrations: 10},
		{EventID: events[0].ID, Title: "E1", TotalRegistrations: 7},
		{EventID: events[1].ID, Title: "E2", TotalRegistrations: 3},
		{EventID: events[3].ID, Title: "E4", TotalRegistrations: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PopularEvents = %v, want %v", got, want)
	}
}

func TestDailyRegistrationsWindowAndIdempotence(t *testing.T) {
	store := memory.NewStore()
	seedStatsData(t, store)
	svc := newStatsService(store, stats.Options{})
	ctx := context.Background()

	first, err := svc.DailyRegistrations(ctx)
	if err != nil {
		t.Fatalf("DailyRegistrations: %v", err)
	}
	// All in-window registrations share one calendar date; the stale one is
	// excluded.
	if len(first) != 1 {
		t.Fatalf("len = %d, want 1 (got %v)", len(first), first)
	}
	if first[0].Count != 22 {
		t.Errorf("count = %d, want 22", first[0].Count)
	}

	second, err := svc.DailyRegistrations(ctx)
	if err != nil {
		t.Fatalf("DailyRegistrations: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation diverged: %v vs %v", first, second)
	}
}

func TestStatsEmptyLog(t *testing.T) {
	store := memory.NewStore()
	svc := newStatsService(store, stats.Options{})
	ctx := context.Background()

	daily, err := svc.DailyRegistrations(ctx)
	if err != nil {
		t.Fatalf("DailyRegistrations: %v", err)
	}
	if len(daily) != 0 {
		t.Errorf("daily = %v, want empty", daily)
	}

	popular, err := svc.PopularEvents(ctx)
	if err != nil {
		t.Fatalf("PopularEvents: %v", err)
	}
	if len(popular) != 0 {
		t.Errorf("popular = %v, want empty", popular)
	}
}
