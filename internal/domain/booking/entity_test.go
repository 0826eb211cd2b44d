//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, time.Hour, actual.TimeRange().Duration())
		assert.Equal(t, "Team sync", actual.Note().String())
		assert.Nil(t, actual.Recurrence())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing amenity",
				mutate: func(b *builder.BookingBuilder) { b.WithAmenityID(uuid.Nil) },
				errIs:  booking.ErrMissingAmenity,
			},
			{
				name:   "missing member",
				mutate: func(b *builder.BookingBuilder) { b.WithMemberID(uuid.Nil) },
				errIs:  booking.ErrMissingMember,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.At(11, 0, 10, 0) },
				errIs:  booking.ErrInvalidTimeRange,
			},
			{
				name:   "fifteen minute booking",
				mutate: func(b *builder.BookingBuilder) { b.At(10, 0, 10, 15) },
			},
		})
	})
}

func TestBookingLifecycle(t *testing.T) {
	now := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

	t.Run("pending to completed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Approve(now))
		require.NoError(t, b.CheckIn(now.Add(time.Hour)))
		require.NoError(t, b.CheckOut(now.Add(2*time.Hour)))

		assert.Equal(t, booking.StatusCompleted, b.Status())
		require.NotNil(t, b.CheckInTime())
		require.NotNil(t, b.CheckOutTime())
		assert.Equal(t, now.Add(time.Hour), *b.CheckInTime())
		assert.False(t, b.IsActive())
	})

	t.Run("disallowed transitions", func(t *testing.T) {
		cases := []struct {
			name   string
			status booking.Status
			apply  func(*booking.Booking) error
		}{
			{"check in pending", booking.StatusPending, func(b *booking.Booking) error { return b.CheckIn(now) }},
			{"approve cancelled", booking.StatusCancelled, func(b *booking.Booking) error { return b.Approve(now) }},
			{"cancel checked in", booking.StatusCheckedIn, func(b *booking.Booking) error { return b.Cancel(now) }},
			{"check out approved", booking.StatusApproved, func(b *booking.Booking) error { return b.CheckOut(now) }},
			{"approve completed", booking.StatusCompleted, func(b *booking.Booking) error { return b.Approve(now) }},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().WithStatus(c.status).BuildStored()
				err := c.apply(b)
				require.ErrorIs(t, err, booking.ErrInvalidTransition)
				assert.Equal(t, c.status, b.Status())
			})
		}
	})

	t.Run("reschedule", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		next := booking.MustTimeRange(at(14, 0), at(15, 30))

		require.NoError(t, b.Reschedule(next, now))
		assert.Equal(t, next, b.TimeRange())

		checkedIn := builder.NewBookingBuilder().AsCheckedIn().BuildStored()
		require.ErrorIs(t, checkedIn.Reschedule(next, now), booking.ErrNotEditable)
	})

	t.Run("overdue after grace period", func(t *testing.T) {
		b := builder.NewBookingBuilder().At(8, 0, 9, 0).AsCheckedIn().BuildStored()

		assert.False(t, b.IsOverdue(at(9, 59), time.Hour))
		assert.True(t, b.IsOverdue(at(10, 0), time.Hour))
		assert.False(t, builder.NewBookingBuilder().At(8, 0, 9, 0).BuildStored().IsOverdue(at(12, 0), time.Hour))
	})

	t.Run("occurrence copies owner and tags the series", func(t *testing.T) {
		base := builder.NewBookingBuilder().BuildStored()
		tr := base.TimeRange().Shift(7 * 24 * time.Hour)

		occ := base.Occurrence(tr, booking.RecurrencePattern{Frequency: booking.FrequencyWeekly, OriginalStart: base.Start()}, now)

		assert.NotEqual(t, base.ID(), occ.ID())
		assert.Equal(t, base.AmenityID(), occ.AmenityID())
		assert.Equal(t, base.MemberID(), occ.MemberID())
		assert.Equal(t, booking.StatusPending, occ.Status())
		require.NotNil(t, occ.Recurrence())
		assert.Equal(t, base.Start(), occ.Recurrence().OriginalStart)
	})
}

func TestConflictError(t *testing.T) {
	b := builder.NewBookingBuilder().At(9, 0, 10, 0).BuildStored()
	err := booking.NewConflictError([]*booking.Booking{b})

	require.ErrorIs(t, err, booking.ErrBookingConflict)
	assert.Contains(t, err.Error(), "2025-01-06T09:00:00Z")
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
