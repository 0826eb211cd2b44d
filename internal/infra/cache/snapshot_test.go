//go:build unit

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra/cache"
	"hub-booking/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	bookings []*booking.Booking
	err      error
	calls    int
}

func (s *countingSource) ListActiveByAmenity(context.Context, uuid.UUID, time.Time, time.Time) ([]*booking.Booking, error) {
	s.calls++
	return s.bookings, s.err
}

func setup(t *testing.T, source cache.BookingSource) (*cache.SnapshotCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cache.NewSnapshotCache(client, source, 30*time.Second, logger), mr
}

func TestSnapshotCache(t *testing.T) {
	ctx := context.Background()
	amenityID := uuid.New()
	stored := builder.NewBookingBuilder().WithAmenityID(amenityID).At(9, 0, 10, 30).BuildStored()
	from := stored.Start().Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	t.Run("second read is served from redis", func(t *testing.T) {
		source := &countingSource{bookings: []*booking.Booking{stored}}
		c, _ := setup(t, source)

		first, err := c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)
		second, err := c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)

		assert.Equal(t, 1, source.calls)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID(), second[0].ID())
		assert.True(t, first[0].Start().Equal(second[0].Start()))
		assert.Equal(t, booking.StatusApproved, second[0].Status())
	})

	t.Run("invalidate forces a fresh read", func(t *testing.T) {
		source := &countingSource{bookings: []*booking.Booking{stored}}
		c, _ := setup(t, source)

		_, err := c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)
		c.Invalidate(ctx, amenityID)
		_, err = c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)

		assert.Equal(t, 2, source.calls)
	})

	t.Run("entries expire", func(t *testing.T) {
		source := &countingSource{bookings: []*booking.Booking{stored}}
		c, mr := setup(t, source)

		_, err := c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)
		mr.FastForward(31 * time.Second)
		_, err = c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)

		assert.Equal(t, 2, source.calls)
	})

	t.Run("redis outage reads through", func(t *testing.T) {
		source := &countingSource{bookings: []*booking.Booking{stored}}
		c, mr := setup(t, source)
		mr.Close()

		got, err := c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("source errors are returned and not cached", func(t *testing.T) {
		source := &countingSource{err: errors.New("db down")}
		c, _ := setup(t, source)

		_, err := c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.Error(t, err)
		_, err = c.ListActiveByAmenity(ctx, amenityID, from, to)
		require.Error(t, err)
		assert.Equal(t, 2, source.calls)
	})
}
