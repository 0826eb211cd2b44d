package amenity

import (
	"time"

	"hub-booking/internal/domain/booking"
)

type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

type SlotState string

const (
	SlotFree   SlotState = "free"
	SlotBooked SlotState = "booked"
	SlotPast   SlotState = "past"
	SlotClosed SlotState = "closed"
)

// StateAt layers the past marker over the booked/free flag.
func (s TimeSlot) StateAt(now time.Time) SlotState {
	switch {
	case s.Start.Before(now):
		return SlotPast
	case !s.Available:
		return SlotBooked
	default:
		return SlotFree
	}
}

// GenerateSlots builds the slot grid of the local day containing date. Slots are
// chronological, SlotCount() long, and free iff no active booking overlaps them.
// Weekday gating is not applied here; see GenerateDaySlots.
func GenerateSlots(date time.Time, av Availability, bookings []*booking.Booking) []TimeSlot {
	loc := av.Location
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.In(loc).Date()
	count := av.SlotCount()
	slots := make([]TimeSlot, 0, count)
	for i := 0; i < count; i++ {
		start := time.Date(y, m, d, av.StartHour, i*av.SlotMinutes, 0, 0, loc)
		end := time.Date(y, m, d, av.StartHour, (i+1)*av.SlotMinutes, 0, 0, loc)
		slots = append(slots, TimeSlot{
			Start:     start,
			End:       end,
			Available: !bookedDuring(start, end, bookings),
		})
	}
	return slots
}

func bookedDuring(start, end time.Time, bookings []*booking.Booking) bool {
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		if booking.Overlaps(start, end, b.Start(), b.End()) {
			return true
		}
	}
	return false
}

type DayGrid struct {
	Date  time.Time
	Open  bool
	Slots []TimeSlot
}

// GenerateDaySlots is GenerateSlots with weekday gating: on a closed day every slot is unavailable.
func GenerateDaySlots(date time.Time, av Availability, bookings []*booking.Booking) DayGrid {
	loc := av.Location
	if loc == nil {
		loc = time.UTC
	}
	local := date.In(loc)
	y, m, d := local.Date()
	grid := DayGrid{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, loc),
		Open:  av.IsOpenOn(local.Weekday()),
		Slots: GenerateSlots(date, av, bookings),
	}
	if !grid.Open {
		for i := range grid.Slots {
			grid.Slots[i].Available = false
		}
	}
	return grid
}

func (g DayGrid) StateAt(i int, now time.Time) SlotState {
	if !g.Open {
		return SlotClosed
	}
	return g.Slots[i].StateAt(now)
}

func (g DayGrid) FreeCount(now time.Time) int {
	n := 0
	for i := range g.Slots {
		if g.StateAt(i, now) == SlotFree {
			n++
		}
	}
	return n
}

// Alternatives lists up to limit start-aligned ranges of length d that fit in
// consecutive free slots not yet started at now.
func (g DayGrid) Alternatives(d time.Duration, now time.Time, limit int) []booking.TimeRange {
	out := make([]booking.TimeRange, 0)
	if !g.Open || len(g.Slots) == 0 || d <= 0 || limit <= 0 {
		return out
	}
	slotLen := g.Slots[0].End.Sub(g.Slots[0].Start)
	need := int((d + slotLen - 1) / slotLen)
	for i := 0; i+need <= len(g.Slots) && len(out) < limit; i++ {
		if g.runIsFree(i, need, now) {
			out = append(out, booking.MustTimeRange(g.Slots[i].Start, g.Slots[i].Start.Add(d)))
		}
	}
	return out
}

func (g DayGrid) runIsFree(from, n int, now time.Time) bool {
	for j := from; j < from+n; j++ {
		if g.StateAt(j, now) != SlotFree {
			return false
		}
	}
	return true
}
