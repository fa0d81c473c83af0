package input

import (
	"context"

	"eventhub/internal/domain/stats"
)

type StatsUseCase interface {
	// DailyRegistrations returns the registration count per calendar date
	// within the trailing reporting window, ordered ascending.
	DailyRegistrations(ctx context.Context) ([]stats.DailyCount, error)
	// PopularEvents returns the top events by registration count within the
	// trailing reporting window, ordered descending.
	PopularEvents(ctx context.Context) ([]stats.PopularEvent, error)
}
