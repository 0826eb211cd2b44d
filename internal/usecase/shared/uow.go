package shared

import (
	"context"
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/domain/event"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Repositories bound to the pool for lookups outside a transaction
	Reads() Tx
}

type Tx interface {
	Amenities() AmenityRepository
	Bookings() BookingRepository
	Events() EventRepository
}

type AmenityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*amenity.Amenity, error)
	// LockByID takes a row lock so concurrent writers for the same amenity serialize.
	LockByID(ctx context.Context, id uuid.UUID) (*amenity.Amenity, error)
	List(ctx context.Context) ([]*amenity.Amenity, error)
	Create(ctx context.Context, a *amenity.Amenity) error
	Update(ctx context.Context, a *amenity.Amenity) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ListActiveByAmenity returns pending, approved and checked-in bookings overlapping [from, to).
	ListActiveByAmenity(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*booking.Booking, error)
	ListOverdueCheckedIn(ctx context.Context, endedBefore time.Time) ([]*booking.Booking, error)
	ListCompletedBefore(ctx context.Context, endedBefore time.Time, limit int) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
}

type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*event.Event, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]*event.Event, error)
	Create(ctx context.Context, e *event.Event) error
	UpdateStatus(ctx context.Context, e *event.Event) error
	// SaveAttendance overwrites both ordered member lists of the event.
	SaveAttendance(ctx context.Context, eventID uuid.UUID, attendees, waitlist []uuid.UUID) error
}
