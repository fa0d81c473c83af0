package output

import (
	"context"
	"time"

	"eventhub/internal/domain/entities"
)

type RegistrationRepository interface {
	// Create inserts a single registration. A registration referencing a
	// nonexistent event fails with domain.ErrEventNotFound; no partial write
	// occurs.
	Create(ctx context.Context, registration *entities.Registration) error
	// CreateBatch inserts all registrations in a single transaction; a
	// mid-batch failure leaves no rows behind.
	CreateBatch(ctx context.Context, registrations []*entities.Registration) error
	ListCreatedSince(ctx context.Context, cutoff time.Time) ([]entities.Registration, error)
	CountCreatedSince(ctx context.Context, cutoff time.Time) (int64, error)
}
