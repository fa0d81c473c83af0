package output

import (
	"context"

	"eventhub/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	// CreateBatch inserts all events in a single transaction; either every
	// event is persisted (with its assigned id written back) or none are.
	CreateBatch(ctx context.Context, events []*entities.Event) error
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	// ListWithAttendees returns every event with its derived registration
	// count attached, ordered by id.
	ListWithAttendees(ctx context.Context) ([]entities.Event, error)
	TitlesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}
