package repository

import (
	"context"
	"time"

	"hub-booking/internal/domain/event"
	"hub-booking/internal/infra"
	"hub-booking/internal/infra/db"
	"hub-booking/internal/infra/repository/converter"
	"hub-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	selectEventByID = `SELECT ` + converter.EventColumns + ` FROM events WHERE id = $1`

	lockEventByID = selectEventByID + ` FOR UPDATE`

	selectUpcomingEvents = `SELECT ` + converter.EventColumns + ` FROM events
		WHERE starts_at >= $1
		ORDER BY starts_at, id
		LIMIT $2`

	selectEventsStartingBetween = `SELECT ` + converter.EventColumns + ` FROM events
		WHERE status = 'approved' AND starts_at >= $1 AND starts_at < $2
		ORDER BY starts_at, id`

	insertEvent = `INSERT INTO events (` + converter.EventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	updateEventStatus = `UPDATE events SET status = $2, rejection_reason = $3, updated_at = $4 WHERE id = $1`

	updateEventAttendance = `UPDATE events SET attendees = $2, waitlist = $3, updated_at = $4 WHERE id = $1`
)

type EventRepository struct {
	db  db.DBTX
	now func() time.Time
}

func NewEventRepository(db db.DBTX) *EventRepository {
	return &EventRepository{db: db, now: time.Now}
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return r.findOne(ctx, selectEventByID, id)
}

func (r *EventRepository) LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return r.findOne(ctx, lockEventByID, id)
}

func (r *EventRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*event.Event, error) {
	var rec converter.EventRecord
	if err := r.db.QueryRow(ctx, query, id).Scan(rec.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	e, err := converter.EventToDomain(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed event row", err, infra.KindDBFailure)
	}
	return e, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*event.Event, error) {
	return r.list(ctx, "failed to list upcoming events", selectUpcomingEvents, from, limit)
}

func (r *EventRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*event.Event, error) {
	return r.list(ctx, "failed to list events in window", selectEventsStartingBetween, from, to)
}

func (r *EventRepository) list(ctx context.Context, msg, query string, args ...any) ([]*event.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.EventRecord, error) {
		var rec converter.EventRecord
		err := row.Scan(rec.ScanTargets()...)
		return rec, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err, infra.KindDBFailure)
	}

	result := make([]*event.Event, 0, len(records))
	for _, rec := range records {
		e, err := converter.EventToDomain(rec)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed event row", err, infra.KindDBFailure)
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	rec := converter.EventToRecord(e)
	if _, err := r.db.Exec(ctx, insertEvent, rec.ScanTargets()...); err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, e *event.Event) error {
	tag, err := r.db.Exec(ctx, updateEventStatus, e.ID(), string(e.Status()), e.RejectionReason(), pgconv.TimeToPgtype(e.UpdatedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update event status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) SaveAttendance(ctx context.Context, eventID uuid.UUID, attendees, waitlist []uuid.UUID) error {
	if attendees == nil {
		attendees = []uuid.UUID{}
	}
	if waitlist == nil {
		waitlist = []uuid.UUID{}
	}
	tag, err := r.db.Exec(ctx, updateEventAttendance, eventID, attendees, waitlist, pgconv.TimeToPgtype(r.now()))
	if err != nil {
		return infra.WrapRepoErr("failed to save event attendance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}
