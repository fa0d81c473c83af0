package input

import (
	"context"

	"eventhub/internal/domain/entities"
	"eventhub/internal/domain/filter"
)

type EventUseCase interface {
	ListEvents(ctx context.Context) ([]entities.Event, error)
	// ListFiltered runs the faceted filter engine over the full event
	// collection and returns the order-preserving subsequence.
	ListFiltered(ctx context.Context, f filter.Filters) ([]entities.Event, error)
	GetEvent(ctx context.Context, id uint) (*entities.Event, error)
	CreateEvent(ctx context.Context, event *entities.Event) error
	Facets(ctx context.Context) (filter.Facets, error)
}
