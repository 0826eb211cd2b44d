//go:build unit

package converter_test

import (
	"testing"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra/repository/converter"
	"hub-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRecordRecurrence(t *testing.T) {
	t.Run("one-off booking stores NULL frequency", func(t *testing.T) {
		rec := converter.BookingToRecord(builder.NewBookingBuilder().BuildStored())
		assert.False(t, rec.RecurrenceFrequency.Valid)
		assert.False(t, rec.RecurrenceOriginalStart.Valid)

		b, err := converter.BookingToDomain(rec)
		require.NoError(t, err)
		assert.Nil(t, b.Recurrence())
	})

	t.Run("series tag survives the row", func(t *testing.T) {
		origin := time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)
		stored := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Recurrence = &booking.RecurrencePattern{Frequency: booking.FrequencyWeekly, OriginalStart: origin}
		}).BuildStored()

		rec := converter.BookingToRecord(stored)
		require.True(t, rec.RecurrenceFrequency.Valid)
		assert.Equal(t, "weekly", rec.RecurrenceFrequency.String)

		b, err := converter.BookingToDomain(rec)
		require.NoError(t, err)
		require.NotNil(t, b.Recurrence())
		assert.Equal(t, booking.FrequencyWeekly, b.Recurrence().Frequency)
		assert.True(t, origin.Equal(b.Recurrence().OriginalStart))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		rec := converter.BookingToRecord(builder.NewBookingBuilder().BuildStored())
		rec.Status = "archived"

		_, err := converter.BookingToDomain(rec)
		require.Error(t, err)
	})
}
