package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

// foreign key violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgForeignKeyViolation = "23503"

type RegistrationRepository struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entities.Registration) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO registrations (event_id, reference, name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		int64(registration.EventID),
		registration.Reference,
		registration.Name,
		registration.Email,
		textOrNull(registration.Phone),
	).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("create registration: %w", err)
	}
	registration.ID = uint(id)
	registration.CreatedAt = timestamptzToTime(createdAt)
	return nil
}

// CreateBatch bulk-loads registrations with COPY inside one transaction, so a
// mid-batch failure leaves no rows behind. Ids are not written back; callers
// doing bulk loads only need the insert to be all-or-none.
func (r *RegistrationRepository) CreateBatch(ctx context.Context, registrations []*entities.Registration) error {
	if len(registrations) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin registration batch: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"registrations"},
		[]string{"event_id", "reference", "name", "email", "phone", "created_at"},
		pgx.CopyFromSlice(len(registrations), func(i int) ([]any, error) {
			reg := registrations[i]
			return []any{
				int64(reg.EventID),
				reg.Reference,
				reg.Name,
				reg.Email,
				textOrNull(reg.Phone),
				reg.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy registrations: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *RegistrationRepository) ListCreatedSince(ctx context.Context, cutoff time.Time) ([]entities.Registration, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, reference, name, email, phone, created_at
		FROM registrations
		WHERE created_at >= $1
		ORDER BY created_at`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Registration, 0)
	for rows.Next() {
		var (
			id, eventID int64
			reference   pgtype.Text
			name, email string
			phone       pgtype.Text
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &eventID, &reference, &name, &email, &phone, &createdAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, entities.Registration{
			ID:        uint(id),
			EventID:   uint(eventID),
			Reference: textOrEmpty(reference),
			Name:      name,
			Email:     email,
			Phone:     textOrEmpty(phone),
			CreatedAt: timestamptzToTime(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

func (r *RegistrationRepository) CountCreatedSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE created_at >= $1`, cutoff,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}
