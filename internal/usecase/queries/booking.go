package queries

import (
	"context"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingView, error)
	ListMine(ctx context.Context, actor shared.Actor, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	reader BookingReader
}

func NewBookingQueries(reader BookingReader) BookingQueries {
	return &bookingQueriesImpl{reader: reader}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingView, error) {
	b, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Hide existence from members who do not own it
	if !actor.CanManageBooking(b) {
		return nil, errs.ErrBookingNotFound
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, limit int) ([]*BookingView, error) {
	bookings, err := q.reader.ListByMember(ctx, actor.MemberID, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewBookingViews(bookings), nil
}
