//go:build unit

package booking_test

import (
	"testing"

	"hub-booking/internal/domain/booking"
	"hub-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ids(bookings []*booking.Booking) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID())
	}
	return out
}

func TestFindConflicts(t *testing.T) {
	amenityID := uuid.New()
	candidate := booking.MustTimeRange(at(9, 0), at(10, 0))

	stored := func(mutate func(*builder.BookingBuilder)) *booking.Booking {
		return builder.NewBookingBuilder().WithAmenityID(amenityID).With(mutate).BuildStored()
	}

	t.Run("touching bookings do not conflict", func(t *testing.T) {
		before := stored(func(b *builder.BookingBuilder) { b.At(8, 0, 9, 0) })
		after := stored(func(b *builder.BookingBuilder) { b.At(10, 0, 11, 0) })

		got := booking.FindConflicts(amenityID, candidate, []*booking.Booking{before, after}, nil)
		assert.Empty(t, got)
	})

	t.Run("inactive statuses never conflict", func(t *testing.T) {
		cancelled := stored(func(b *builder.BookingBuilder) { b.At(9, 0, 10, 0).AsCancelled() })
		completed := stored(func(b *builder.BookingBuilder) { b.At(9, 0, 10, 0).WithStatus(booking.StatusCompleted) })

		got := booking.FindConflicts(amenityID, candidate, []*booking.Booking{cancelled, completed}, nil)
		assert.Empty(t, got)
	})

	t.Run("every active status conflicts", func(t *testing.T) {
		pending := stored(func(b *builder.BookingBuilder) { b.At(9, 0, 10, 0).AsPending() })
		approved := stored(func(b *builder.BookingBuilder) { b.At(9, 30, 10, 30) })
		checkedIn := stored(func(b *builder.BookingBuilder) { b.At(8, 30, 9, 30).AsCheckedIn() })

		all := []*booking.Booking{pending, approved, checkedIn}
		got := booking.FindConflicts(amenityID, candidate, all, nil)
		if diff := cmp.Diff(ids(all), ids(got)); diff != "" {
			t.Errorf("conflicts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("excludes the booking being edited", func(t *testing.T) {
		self := stored(func(b *builder.BookingBuilder) { b.At(9, 0, 10, 0) })
		id := self.ID()

		got := booking.FindConflicts(amenityID, candidate, []*booking.Booking{self}, &id)
		assert.Empty(t, got)
	})

	t.Run("ignores other amenities", func(t *testing.T) {
		other := builder.NewBookingBuilder().At(9, 0, 10, 0).BuildStored()

		got := booking.FindConflicts(amenityID, candidate, []*booking.Booking{other}, nil)
		assert.Empty(t, got)
	})

	t.Run("keeps input order and is idempotent", func(t *testing.T) {
		late := stored(func(b *builder.BookingBuilder) { b.At(9, 45, 11, 0) })
		early := stored(func(b *builder.BookingBuilder) { b.At(8, 0, 9, 15) })
		input := []*booking.Booking{late, early}

		first := booking.FindConflicts(amenityID, candidate, input, nil)
		second := booking.FindConflicts(amenityID, candidate, input, nil)

		assert.Equal(t, []uuid.UUID{late.ID(), early.ID()}, ids(first))
		assert.Equal(t, ids(first), ids(second))
		assert.True(t, booking.HasConflict(amenityID, candidate, input, nil))
	})
}
