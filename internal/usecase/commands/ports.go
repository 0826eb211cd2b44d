package commands

import (
	"context"

	"hub-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// ConflictChecker is the advisory pre-flight. It never fails; an unreachable
// store reads as "no conflicts".
type ConflictChecker interface {
	CheckConflicts(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, excludeID *uuid.UUID) []*booking.Booking
}

// BookingWriter persists an already built booking, re-checking conflicts
// authoritatively. A rejected interval comes back as *booking.ConflictError.
type BookingWriter interface {
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
}

// SnapshotInvalidator drops cached active-booking snapshots after a write.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, amenityID uuid.UUID)
}
