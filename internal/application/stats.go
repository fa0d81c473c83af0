package application

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/domain/stats"
	"eventhub/internal/ports/input"
	"eventhub/internal/ports/output"
)

var _ input.StatsUseCase = (*StatsService)(nil)

// StatsService feeds the organizer dashboard. Both aggregations are scoped to
// the trailing 30-day window and read-only; an empty registration log is a
// valid result, not an error.
type StatsService struct {
	registrationRepo output.RegistrationRepository
	eventRepo        output.EventRepository
	opts             stats.Options
	now              func() time.Time
}

func NewStatsService(
	registrationRepo output.RegistrationRepository,
	eventRepo output.EventRepository,
	opts stats.Options,
) *StatsService {
	return &StatsService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		opts:             opts,
		now:              time.Now,
	}
}

// WithClock overrides the time source used for the reporting window.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

func (s *StatsService) DailyRegistrations(ctx context.Context) ([]stats.DailyCount, error) {
	regs, err := s.registrationRepo.ListCreatedSince(ctx, stats.WindowStart(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return stats.DailyCounts(regs, s.opts), nil
}

func (s *StatsService) PopularEvents(ctx context.Context) ([]stats.PopularEvent, error) {
	regs, err := s.registrationRepo.ListCreatedSince(ctx, stats.WindowStart(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if len(regs) == 0 {
		return []stats.PopularEvent{}, nil
	}
	titles, err := s.eventRepo.TitlesByIDs(ctx, stats.EventIDs(regs))
	if err != nil {
		return nil, fmt.Errorf("fetch event titles: %w", err)
	}
	return stats.PopularEvents(regs, titles, stats.TopEventsLimit), nil
}
