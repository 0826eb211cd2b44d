//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/usecase/queries"
	"hub-booking/tests/common/builder"
	"hub-booking/tests/common/testutil"
	queriesmock "hub-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type availabilityFixture struct {
	amenities *queriesmock.MockAmenityReader
	bookings  *queriesmock.MockBookingSnapshotReader
	q         queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T, now time.Time) availabilityFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := availabilityFixture{
		amenities: queriesmock.NewMockAmenityReader(ctrl),
		bookings:  queriesmock.NewMockBookingSnapshotReader(ctrl),
	}
	f.q = queries.NewAvailabilityQueries(f.amenities, f.bookings, clock.NewFixedClock(now))
	return f
}

func TestAvailabilityQueries_Day(t *testing.T) {
	room := builder.NewAmenityBuilder().BuildStored()

	t.Run("marks booked, past and free slots", func(t *testing.T) {
		f := newAvailabilityFixture(t, monday.Add(9*time.Hour))
		taken := builder.NewBookingBuilder().WithAmenityID(room.ID()).At(10, 0, 11, 0).BuildStored()
		f.amenities.EXPECT().FindByID(gomock.Any(), room.ID()).Return(room, nil)
		f.bookings.EXPECT().ListActiveByAmenity(gomock.Any(), room.ID(), monday, monday.AddDate(0, 0, 1)).
			Return([]*booking.Booking{taken}, nil)

		day, err := f.q.Day(context.Background(), room.ID(), monday)
		require.NoError(t, err)

		assert.Equal(t, "2025-01-06", day.Date)
		assert.True(t, day.Open)
		require.Len(t, day.Slots, 20)
		assert.Equal(t, string(amenity.SlotPast), day.Slots[0].State)  // 08:00
		assert.Equal(t, string(amenity.SlotFree), day.Slots[2].State)  // 09:00
		assert.Equal(t, string(amenity.SlotBooked), day.Slots[4].State) // 10:00
		assert.Equal(t, string(amenity.SlotBooked), day.Slots[5].State) // 10:30
		assert.Equal(t, string(amenity.SlotFree), day.Slots[6].State)  // 11:00
		assert.Equal(t, 16, day.FreeSlots)
	})

	t.Run("closed weekday", func(t *testing.T) {
		f := newAvailabilityFixture(t, monday)
		saturday := monday.AddDate(0, 0, 5)
		f.amenities.EXPECT().FindByID(gomock.Any(), room.ID()).Return(room, nil)
		f.bookings.EXPECT().ListActiveByAmenity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		day, err := f.q.Day(context.Background(), room.ID(), saturday)
		require.NoError(t, err)
		assert.False(t, day.Open)
		assert.Zero(t, day.FreeSlots)
		for _, s := range day.Slots {
			assert.False(t, s.Available)
			assert.Equal(t, string(amenity.SlotClosed), s.State)
		}
	})

	t.Run("day is taken in the amenity's zone", func(t *testing.T) {
		hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
		require.NoError(t, err)
		local := builder.NewAmenityBuilder().WithAvailability(amenity.DefaultAvailability(hcm)).BuildStored()
		f := newAvailabilityFixture(t, monday)
		localMidnight := time.Date(2025, time.January, 6, 0, 0, 0, 0, hcm)

		f.amenities.EXPECT().FindByID(gomock.Any(), local.ID()).Return(local, nil)
		f.bookings.EXPECT().ListActiveByAmenity(gomock.Any(), local.ID(), localMidnight, localMidnight.AddDate(0, 0, 1)).Return(nil, nil)

		day, err := f.q.Day(context.Background(), local.ID(), monday)
		require.NoError(t, err)
		assert.Equal(t, 8, day.Slots[0].Start.In(hcm).Hour())
		assert.Equal(t, time.Date(2025, time.January, 6, 1, 0, 0, 0, time.UTC), day.Slots[0].Start.UTC())
	})

	t.Run("unknown amenity", func(t *testing.T) {
		f := newAvailabilityFixture(t, monday)
		id := uuid.New()
		f.amenities.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("amenity", errors.New("no rows"), infra.KindNotFound))

		_, err := f.q.Day(context.Background(), id, monday)
		testutil.AssertErrorIs(t, err, errs.ErrAmenityNotFound)
	})
}

func TestAvailabilityQueries_Week(t *testing.T) {
	room := builder.NewAmenityBuilder().BuildStored()
	f := newAvailabilityFixture(t, monday)
	wednesday := builder.NewBookingBuilder().WithAmenityID(room.ID()).
		WithRange(monday.AddDate(0, 0, 2).Add(8*time.Hour), monday.AddDate(0, 0, 2).Add(18*time.Hour)).BuildStored()

	f.amenities.EXPECT().FindByID(gomock.Any(), room.ID()).Return(room, nil)
	f.bookings.EXPECT().ListActiveByAmenity(gomock.Any(), room.ID(), monday, monday.AddDate(0, 0, 7)).
		Return([]*booking.Booking{wednesday}, nil).Times(1)

	week, err := f.q.Week(context.Background(), room.ID(), monday)
	require.NoError(t, err)
	require.Len(t, week, 7)

	dates := make([]string, 0, len(week))
	for _, d := range week {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10", "2025-01-11", "2025-01-12"}, dates)
	assert.Equal(t, 20, week[0].FreeSlots)
	assert.Zero(t, week[2].FreeSlots)
	assert.False(t, week[5].Open)
	assert.False(t, week[6].Open)
}

func TestAvailabilityQueries_Alternatives(t *testing.T) {
	room := builder.NewAmenityBuilder().BuildStored()
	f := newAvailabilityFixture(t, monday)
	taken := builder.NewBookingBuilder().WithAmenityID(room.ID()).At(8, 0, 11, 0).BuildStored()
	f.amenities.EXPECT().FindByID(gomock.Any(), room.ID()).Return(room, nil)
	f.bookings.EXPECT().ListActiveByAmenity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{taken}, nil)

	candidate := booking.MustTimeRange(monday.Add(10*time.Hour), monday.Add(11*time.Hour+30*time.Minute))
	alts, err := f.q.Alternatives(context.Background(), room.ID(), candidate, 2)
	require.NoError(t, err)

	require.Len(t, alts, 2)
	assert.Equal(t, monday.Add(11*time.Hour), alts[0].Start)
	assert.Equal(t, monday.Add(12*time.Hour+30*time.Minute), alts[0].End)
	assert.Equal(t, monday.Add(11*time.Hour+30*time.Minute), alts[1].Start)
}
