//go:build unit

package booking_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"hub-booking/internal/domain/booking"
	"hub-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRecurrenceRuleValidate(t *testing.T) {
	base := at(10, 0)
	before := base.Add(-time.Hour)
	after := base.AddDate(0, 1, 0)

	cases := []struct {
		name  string
		rule  booking.RecurrenceRule
		errIs error
	}{
		{name: "weekly with count", rule: booking.RecurrenceRule{Frequency: booking.FrequencyWeekly, Occurrences: intPtr(3)}},
		{name: "daily with end date", rule: booking.RecurrenceRule{Frequency: booking.FrequencyDaily, EndDate: &after}},
		{name: "monthly unbounded", rule: booking.RecurrenceRule{Frequency: booking.FrequencyMonthly}},
		{name: "unknown frequency", rule: booking.RecurrenceRule{Frequency: "yearly"}, errIs: booking.ErrUnknownFrequency},
		{name: "zero occurrences", rule: booking.RecurrenceRule{Frequency: booking.FrequencyDaily, Occurrences: intPtr(0)}, errIs: booking.ErrRecurrenceCount},
		{name: "negative occurrences", rule: booking.RecurrenceRule{Frequency: booking.FrequencyDaily, Occurrences: intPtr(-2)}, errIs: booking.ErrRecurrenceCount},
		{name: "above cap", rule: booking.RecurrenceRule{Frequency: booking.FrequencyDaily, Occurrences: intPtr(booking.MaxOccurrences + 1)}, errIs: booking.ErrRecurrenceTooLarge},
		{name: "end date before start", rule: booking.RecurrenceRule{Frequency: booking.FrequencyWeekly, EndDate: &before}, errIs: booking.ErrRecurrenceEndDate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.rule.Validate(base)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			testutil.RequireErrorIs(t, err, c.errIs)
			testutil.RequireErrorIs(t, err, booking.ErrInvalidRecurrence)
		})
	}
}

func TestRecurrenceRuleBounds(t *testing.T) {
	assert.Equal(t, booking.MaxOccurrences, booking.RecurrenceRule{Frequency: booking.FrequencyDaily}.Limit())
	assert.Equal(t, 4, booking.RecurrenceRule{Frequency: booking.FrequencyDaily, Occurrences: intPtr(4)}.Limit())

	end := at(10, 0)
	rule := booking.RecurrenceRule{Frequency: booking.FrequencyDaily, EndDate: &end}
	assert.True(t, rule.Within(end), "end date is inclusive")
	assert.False(t, rule.Within(end.Add(time.Nanosecond)))
}

func TestRecurrenceRuleNth(t *testing.T) {
	t.Run("weekly steps", func(t *testing.T) {
		rule := booking.RecurrenceRule{Frequency: booking.FrequencyWeekly}
		base := time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)

		var got []string
		for n := 0; n < 3; n++ {
			got = append(got, rule.Nth(base, n, time.UTC).Format(time.DateTime))
		}
		assert.Equal(t, []string{"2025-01-06 10:00:00", "2025-01-13 10:00:00", "2025-01-20 10:00:00"}, got)
	})

	t.Run("monthly clamps to month end and returns to base day", func(t *testing.T) {
		rule := booking.RecurrenceRule{Frequency: booking.FrequencyMonthly}
		base := time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC)

		assert.Equal(t, time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC), rule.Nth(base, 1, time.UTC))
		assert.Equal(t, time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC), rule.Nth(base, 2, time.UTC))
		assert.Equal(t, time.Date(2025, time.April, 30, 9, 0, 0, 0, time.UTC), rule.Nth(base, 3, time.UTC))
		assert.Equal(t, time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
			rule.Nth(time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC), 1, time.UTC))
	})

	t.Run("daily keeps local wall clock across DST", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		rule := booking.RecurrenceRule{Frequency: booking.FrequencyDaily}
		base := time.Date(2025, time.March, 29, 9, 0, 0, 0, loc)

		next := rule.Nth(base, 1, loc)
		assert.Equal(t, 9, next.Hour())
		assert.Equal(t, 23*time.Hour, next.Sub(base))
	})
}
