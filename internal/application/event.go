package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/domain/filter"
	"eventhub/internal/ports/input"
	"eventhub/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	now       func() time.Time
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// WithClock overrides the time source used for date buckets, e.g. to pin the
// timezone "today" is computed in.
func (s *EventService) WithClock(now func() time.Time) *EventService {
	s.now = now
	return s
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.ListWithAttendees(ctx)
}

func (s *EventService) ListFiltered(ctx context.Context, f filter.Filters) ([]entities.Event, error) {
	events, err := s.eventRepo.ListWithAttendees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return filter.Apply(events, f, s.now()), nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return domain.ErrInvalidEvent
	}
	return s.eventRepo.Create(ctx, event)
}

func (s *EventService) Facets(ctx context.Context) (filter.Facets, error) {
	events, err := s.eventRepo.ListWithAttendees(ctx)
	if err != nil {
		return filter.Facets{}, fmt.Errorf("list events: %w", err)
	}
	return filter.ExtractFacets(events), nil
}
