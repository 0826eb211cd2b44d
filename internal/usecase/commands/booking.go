package commands

import (
	"context"
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra"
	"hub-booking/internal/infra/metrics"
	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OriginSingle     = "single"
	OriginRecurrence = "recurrence"
)

type CreateBookingInput struct {
	AmenityID uuid.UUID
	// MemberID books on behalf of another member; honoured for admins only.
	MemberID uuid.UUID
	Start    time.Time
	End      time.Time
	Note     string
}

type BookingCommands interface {
	BookingWriter
	CreateBooking(ctx context.Context, input CreateBookingInput, actor shared.Actor) (*booking.Booking, error)
	Approve(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error)
	CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error)
	CheckOut(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error)
	Reschedule(ctx context.Context, id uuid.UUID, tr booking.TimeRange, actor shared.Actor) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator SnapshotInvalidator
	publisher   notify.Publisher
	clock       clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, invalidator SnapshotInvalidator, publisher notify.Publisher, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		publisher:   publisher,
		clock:       clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput, actor shared.Actor) (*booking.Booking, error) {
	tr, err := booking.NewTimeRange(input.Start, input.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	memberID := actor.MemberID
	if actor.IsAdmin() && input.MemberID != uuid.Nil {
		memberID = input.MemberID
	}

	b, err := booking.NewBooking(input.AmenityID, memberID, tr, booking.NewNote(input.Note), uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return uc.Create(ctx, b)
}

// Create locks the amenity row, rescans its active bookings and inserts b.
// The bookings exclusion constraint backs the scan up.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Amenities().LockByID(ctx, b.AmenityID())
		if err != nil {
			return mapAmenityErr(err)
		}
		if err := a.CanHost(b.Start(), b.End()); err != nil {
			return mapHostErr(err)
		}
		if err := ensureFree(ctx, tx, b.AmenityID(), b.TimeRange(), nil); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return mapBookingWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	origin := OriginSingle
	if b.Recurrence() != nil {
		origin = OriginRecurrence
	}
	metrics.RecordBookingCreated(origin)
	uc.invalidator.Invalidate(ctx, b.AmenityID())

	if origin == OriginSingle {
		uc.publisher.Publish(ctx, notify.New(
			notify.KindBookingCreated,
			b.ID(),
			[]uuid.UUID{b.MemberID()},
			"Your booking request has been received",
			uc.clock.Now(),
		).With("amenity_id", b.AmenityID()).With("start_time", b.Start()).With("end_time", b.End()))
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) Approve(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error) {
	return uc.transition(ctx, id, func(b *booking.Booking) error {
		if !actor.IsAdmin() {
			return errs.ErrForbidden
		}
		return nil
	}, (*booking.Booking).Approve)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error) {
	return uc.transition(ctx, id, ownedBy(actor), (*booking.Booking).Cancel)
}

func (uc *bookingUseCaseImpl) CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error) {
	return uc.transition(ctx, id, ownedBy(actor), (*booking.Booking).CheckIn)
}

func (uc *bookingUseCaseImpl) CheckOut(ctx context.Context, id uuid.UUID, actor shared.Actor) (*booking.Booking, error) {
	b, err := uc.transition(ctx, id, ownedBy(actor), (*booking.Booking).CheckOut)
	if err != nil {
		return nil, err
	}
	uc.publisher.Publish(ctx, notify.New(
		notify.KindBookingCheckedOut,
		b.ID(),
		[]uuid.UUID{b.MemberID()},
		"You have been checked out",
		uc.clock.Now(),
	))
	return b, nil
}

func (uc *bookingUseCaseImpl) Reschedule(ctx context.Context, id uuid.UUID, tr booking.TimeRange, actor shared.Actor) (*booking.Booking, error) {
	current, err := uc.uow.Reads().Bookings().FindByID(ctx, id)
	if err != nil {
		return nil, mapBookingErr(err)
	}
	if !actor.CanManageBooking(current) {
		return nil, errs.ErrForbidden
	}

	var out *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Amenity first, same order as Create
		a, err := tx.Amenities().LockByID(ctx, current.AmenityID())
		if err != nil {
			return mapAmenityErr(err)
		}
		b, err := tx.Bookings().LockByID(ctx, id)
		if err != nil {
			return mapBookingErr(err)
		}
		if err := a.CanHost(tr.Start(), tr.End()); err != nil {
			return mapHostErr(err)
		}
		exclude := b.ID()
		if err := ensureFree(ctx, tx, b.AmenityID(), tr, &exclude); err != nil {
			return err
		}
		if err := b.Reschedule(tr, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapBookingWriteErr(err)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx, out.AmenityID())
	return out, nil
}

func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	authorize func(b *booking.Booking) error,
	apply func(b *booking.Booking, now time.Time) error,
) (*booking.Booking, error) {
	var out *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, id)
		if err != nil {
			return mapBookingErr(err)
		}
		if err := authorize(b); err != nil {
			return err
		}
		if err := apply(b, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return mapBookingWriteErr(err)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx, out.AmenityID())
	return out, nil
}

func ownedBy(actor shared.Actor) func(b *booking.Booking) error {
	return func(b *booking.Booking) error {
		if !actor.CanManageBooking(b) {
			return errs.ErrForbidden
		}
		return nil
	}
}

// ensureFree runs the authoritative scan; callers hold the amenity row lock.
func ensureFree(ctx context.Context, tx shared.Tx, amenityID uuid.UUID, tr booking.TimeRange, excludeID *uuid.UUID) error {
	active, err := tx.Bookings().ListActiveByAmenity(ctx, amenityID, tr.Start(), tr.End())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if conflicts := booking.FindConflicts(amenityID, tr, active, excludeID); len(conflicts) > 0 {
		metrics.RecordConflict("authoritative")
		return booking.NewConflictError(conflicts)
	}
	return nil
}

func mapAmenityErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrAmenityNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapBookingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrBookingNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapHostErr(err error) error {
	if errs.Is(err, amenity.ErrNotBookable) {
		return errs.Mark(err, errs.ErrAmenityUnavailable)
	}
	return errs.Mark(err, errs.ErrInvalidTimeSlot)
}

func mapBookingWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		metrics.RecordConflict("constraint")
		return booking.NewConflictError(nil)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrBookingNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.ErrAmenityNotFound
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
