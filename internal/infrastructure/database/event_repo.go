package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const insertEventSQL = `
INSERT INTO events (title, description, location, date, price, tags, organizer)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, insertEventSQL,
		event.Title,
		textOrNull(event.Description),
		textOrNull(event.Location),
		event.Date,
		float8OrNull(event.Price),
		textOrNull(event.Tags.String()),
		textOrNull(event.Organizer),
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	event.CreatedAt = timestamptzToTime(createdAt)
	return nil
}

// CreateBatch inserts all events inside one transaction, writing the assigned
// ids back into the given entities. A failure rolls the whole batch back.
func (r *EventRepository) CreateBatch(ctx context.Context, events []*entities.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin event batch: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, event := range events {
		batch.Queue(insertEventSQL,
			event.Title,
			textOrNull(event.Description),
			textOrNull(event.Location),
			event.Date,
			float8OrNull(event.Price),
			textOrNull(event.Tags.String()),
			textOrNull(event.Organizer),
		)
	}
	results := tx.SendBatch(ctx, batch)
	for _, event := range events {
		var (
			id        int64
			createdAt pgtype.Timestamptz
		)
		if err := results.QueryRow().Scan(&id, &createdAt); err != nil {
			results.Close()
			return fmt.Errorf("insert event batch: %w", err)
		}
		event.ID = uint(id)
		event.CreatedAt = timestamptzToTime(createdAt)
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close event batch: %w", err)
	}
	return tx.Commit(ctx)
}

const selectEventSQL = `
SELECT e.id, e.title, e.description, e.location, e.date, e.price, e.tags, e.organizer,
       e.created_at, COUNT(r.id) AS attendees
FROM events e
LEFT JOIN registrations r ON r.event_id = e.id`

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx, selectEventSQL+" WHERE e.id = $1 GROUP BY e.id", int64(id))
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

func (r *EventRepository) ListWithAttendees(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, selectEventSQL+" GROUP BY e.id ORDER BY e.id")
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) TitlesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM events WHERE id = ANY($1)`, raw)
	if err != nil {
		return nil, fmt.Errorf("get event titles: %w", err)
	}
	defer rows.Close()

	titles := make(map[uint]string, len(ids))
	for rows.Next() {
		var (
			id    int64
			title string
		)
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("scan event title: %w", err)
		}
		titles[uint(id)] = title
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get event titles: %w", err)
	}
	return titles, nil
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		id                    int64
		title                 string
		description, location pgtype.Text
		date, createdAt       pgtype.Timestamptz
		price                 pgtype.Float8
		tags, organizer       pgtype.Text
		attendees             int64
	)
	err := row.Scan(&id, &title, &description, &location, &date, &price, &tags, &organizer, &createdAt, &attendees)
	if err != nil {
		return nil, err
	}
	return &entities.Event{
		ID:          uint(id),
		Title:       title,
		Description: textOrEmpty(description),
		Location:    textOrEmpty(location),
		Date:        timestamptzToTime(date),
		Price:       float8OrNil(price),
		Tags:        entities.ParseTags(textOrEmpty(tags)),
		Organizer:   textOrEmpty(organizer),
		Attendees:   int(attendees),
		CreatedAt:   timestamptzToTime(createdAt),
	}, nil
}
