package booking

import "github.com/google/uuid"

// FindConflicts returns the active bookings of amenityID that overlap candidate,
// in input order. The booking identified by excludeID is ignored so an existing
// booking can be checked against its own new interval.
func FindConflicts(amenityID uuid.UUID, candidate TimeRange, bookings []*Booking, excludeID *uuid.UUID) []*Booking {
	conflicts := make([]*Booking, 0)
	for _, b := range bookings {
		if b == nil || b.amenityID != amenityID || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.id == *excludeID {
			continue
		}
		if candidate.Overlaps(b.timeRange) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

func HasConflict(amenityID uuid.UUID, candidate TimeRange, bookings []*Booking, excludeID *uuid.UUID) bool {
	return len(FindConflicts(amenityID, candidate, bookings, excludeID)) > 0
}
