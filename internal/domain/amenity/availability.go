package amenity

import (
	"slices"
	"time"
	_ "time/tzdata"
)

const DefaultTimeZone = "Asia/Ho_Chi_Minh"

var allowedSlotMinutes = []int{15, 30, 60}

// Availability is the weekly opening pattern of an amenity. Hours are wall-clock
// hours in Location; EndHour 24 means the grid runs until midnight.
type Availability struct {
	StartHour     int
	EndHour       int
	AvailableDays []time.Weekday
	SlotMinutes   int
	Location      *time.Location
}

func NewAvailability(startHour, endHour int, days []time.Weekday, slotMinutes int, loc *time.Location) (Availability, error) {
	if startHour < 0 || startHour > 23 || endHour < 1 || endHour > 24 || startHour >= endHour {
		return Availability{}, ErrInvalidHours
	}
	if !slices.Contains(allowedSlotMinutes, slotMinutes) {
		return Availability{}, ErrInvalidSlotDuration
	}
	normalized := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return Availability{}, ErrInvalidWeekday
		}
		if !slices.Contains(normalized, d) {
			normalized = append(normalized, d)
		}
	}
	slices.Sort(normalized)
	if loc == nil {
		loc = time.UTC
	}

	return Availability{
		StartHour:     startHour,
		EndHour:       endHour,
		AvailableDays: normalized,
		SlotMinutes:   slotMinutes,
		Location:      loc,
	}, nil
}

// DefaultAvailability is weekdays 08:00 to 18:00 in half-hour slots.
func DefaultAvailability(loc *time.Location) Availability {
	if loc == nil {
		loc = time.UTC
	}
	return Availability{
		StartHour:     8,
		EndHour:       18,
		AvailableDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		SlotMinutes:   30,
		Location:      loc,
	}
}

func (a Availability) SlotDuration() time.Duration {
	return time.Duration(a.SlotMinutes) * time.Minute
}

func (a Availability) SlotCount() int {
	return (a.EndHour - a.StartHour) * 60 / a.SlotMinutes
}

func (a Availability) IsOpenOn(day time.Weekday) bool {
	return slices.Contains(a.AvailableDays, day)
}

// Hours returns the opening and closing instants of the local day containing date.
func (a Availability) Hours(date time.Time) (time.Time, time.Time) {
	y, m, d := date.In(a.Location).Date()
	return time.Date(y, m, d, a.StartHour, 0, 0, 0, a.Location),
		time.Date(y, m, d, a.EndHour, 0, 0, 0, a.Location)
}

// Covers reports whether [start, end) falls inside the opening hours of an open day.
func (a Availability) Covers(start, end time.Time) bool {
	local := start.In(a.Location)
	if !a.IsOpenOn(local.Weekday()) {
		return false
	}
	open, closeAt := a.Hours(local)
	return !start.Before(open) && !end.After(closeAt)
}
