package event

import "github.com/google/uuid"

// Promotion is the outcome of moving waitlisted members into attendance.
// The caller appends Promoted to the attendees and stores RemainingWaitlist.
type Promotion struct {
	Promoted          []uuid.UUID
	RemainingWaitlist []uuid.UUID
}

func (p Promotion) IsEmpty() bool {
	return len(p.Promoted) == 0
}

// AvailableSpots returns the free places for capacity and the current attendee
// count. Zero capacity is unlimited and reported with limited=false.
func AvailableSpots(capacity, attendees int) (spots int, limited bool) {
	if capacity <= 0 {
		return 0, false
	}
	return max(0, capacity-attendees), true
}

// Promote takes up to requested members from the front of waitlist, bounded by
// the free places left by attendees. The remainder keeps its order. Inputs are
// not modified.
func Promote(capacity int, attendees, waitlist []uuid.UUID, requested int) Promotion {
	toPromote := min(requested, len(waitlist))
	if spots, limited := AvailableSpots(capacity, len(attendees)); limited {
		toPromote = min(toPromote, spots)
	}
	if toPromote <= 0 {
		return Promotion{
			Promoted:          []uuid.UUID{},
			RemainingWaitlist: append([]uuid.UUID{}, waitlist...),
		}
	}

	return Promotion{
		Promoted:          append([]uuid.UUID{}, waitlist[:toPromote]...),
		RemainingWaitlist: append([]uuid.UUID{}, waitlist[toPromote:]...),
	}
}
