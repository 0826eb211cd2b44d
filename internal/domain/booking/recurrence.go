package booking

import (
	"time"

	"hub-booking/internal/pkg/errs"
)

// MaxOccurrences bounds an expansion when the rule sets neither an end date nor a count.
const MaxOccurrences = 999

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

type RecurrenceRule struct {
	Frequency   Frequency
	EndDate     *time.Time
	Occurrences *int
}

func (r RecurrenceRule) Validate(baseStart time.Time) error {
	if !r.Frequency.IsValid() {
		return errs.Mark(errs.Wrapf(ErrUnknownFrequency, "frequency %q", r.Frequency), ErrInvalidRecurrence)
	}
	if r.Occurrences != nil {
		if *r.Occurrences <= 0 {
			return errs.Mark(ErrRecurrenceCount, ErrInvalidRecurrence)
		}
		if *r.Occurrences > MaxOccurrences {
			return errs.Mark(ErrRecurrenceTooLarge, ErrInvalidRecurrence)
		}
	}
	if r.EndDate != nil && r.EndDate.Before(baseStart) {
		return errs.Mark(ErrRecurrenceEndDate, ErrInvalidRecurrence)
	}
	return nil
}

// Limit is the occurrence count the expansion may reach.
func (r RecurrenceRule) Limit() int {
	if r.Occurrences != nil {
		return *r.Occurrences
	}
	return MaxOccurrences
}

// Within reports whether cursor is still on or before the end date.
func (r RecurrenceRule) Within(cursor time.Time) bool {
	return r.EndDate == nil || !cursor.After(*r.EndDate)
}

// Nth returns the start of occurrence n (0 is base itself), computed on the wall
// clock of loc so a series keeps its local hour across DST changes. Monthly
// steps keep the base day of month and clamp to the last day of shorter months.
func (r RecurrenceRule) Nth(base time.Time, n int, loc *time.Location) time.Time {
	if loc == nil {
		loc = base.Location()
	}
	local := base.In(loc)
	switch r.Frequency {
	case FrequencyDaily:
		return local.AddDate(0, 0, n)
	case FrequencyWeekly:
		return local.AddDate(0, 0, 7*n)
	case FrequencyMonthly:
		return addMonthsClamped(local, n)
	default:
		return local
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
