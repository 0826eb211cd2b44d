package queries

import (
	"context"
	"time"

	"hub-booking/internal/domain/event"
	"hub-booking/internal/infra"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type EventReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*event.Event, error)
}

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListUpcoming(ctx context.Context, limit int) ([]*EventView, error)
}

type eventQueriesImpl struct {
	reader EventReader
	clock  clock.Clock
}

func NewEventQueries(reader EventReader, clk clock.Clock) EventQueries {
	return &eventQueriesImpl{reader: reader, clock: clk}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	e, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewEventView(e), nil
}

func (q *eventQueriesImpl) ListUpcoming(ctx context.Context, limit int) ([]*EventView, error) {
	events, err := q.reader.ListUpcoming(ctx, q.clock.Now(), ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	out := make([]*EventView, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventView(e))
	}
	return out, nil
}
