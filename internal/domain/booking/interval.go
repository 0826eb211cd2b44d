package booking

import (
	"fmt"
	"time"
)

// Overlaps reports whether the half-open ranges [aStart, aEnd) and [bStart, bEnd) intersect.
// A range ending exactly when the other starts does not overlap it.
// Both ranges must satisfy start < end; that is the caller's precondition.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

// MustTimeRange is for fixtures and internally derived ranges known to be valid.
func MustTimeRange(start, end time.Time) TimeRange {
	tr, err := NewTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return tr
}

func (r TimeRange) Start() time.Time { return r.start }
func (r TimeRange) End() time.Time   { return r.end }

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return Overlaps(r.start, r.end, other.start, other.end)
}

// StartingAt keeps the exact duration, fractional hours included.
func (r TimeRange) StartingAt(start time.Time) TimeRange {
	return TimeRange{start: start, end: start.Add(r.Duration())}
}

func (r TimeRange) Shift(d time.Duration) TimeRange {
	return TimeRange{start: r.start.Add(d), end: r.end.Add(d)}
}

func (r TimeRange) In(loc *time.Location) TimeRange {
	return TimeRange{start: r.start.In(loc), end: r.end.In(loc)}
}

func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}
