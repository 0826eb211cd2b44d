package queries

import (
	"context"
	"log/slog"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra/metrics"

	"github.com/google/uuid"
)

// BookingSnapshotReader yields the active bookings of an amenity overlapping [from, to).
type BookingSnapshotReader interface {
	ListActiveByAmenity(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

type ConflictQueries interface {
	// Check is the advisory pre-flight used by the UI and by recurrence expansion.
	// A failed fetch is logged and reported as "no conflicts"; the write path
	// re-checks under a lock.
	Check(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, excludeID *uuid.UUID) ConflictResult
	CheckConflicts(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, excludeID *uuid.UUID) []*booking.Booking
}

type conflictQueriesImpl struct {
	reader BookingSnapshotReader
	logger *slog.Logger
}

func NewConflictQueries(reader BookingSnapshotReader, logger *slog.Logger) ConflictQueries {
	return &conflictQueriesImpl{reader: reader, logger: logger}
}

func (q *conflictQueriesImpl) Check(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, excludeID *uuid.UUID) ConflictResult {
	return NewConflictResult(q.CheckConflicts(ctx, amenityID, candidate, excludeID))
}

func (q *conflictQueriesImpl) CheckConflicts(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, excludeID *uuid.UUID) []*booking.Booking {
	from, to := snapshotWindow(candidate)
	active, err := q.reader.ListActiveByAmenity(ctx, amenityID, from, to)
	if err != nil {
		q.logger.Warn("conflict check degraded, treating as free",
			"amenity_id", amenityID,
			"range", candidate.String(),
			"error", err,
		)
		metrics.RecordAdvisoryDegraded()
		return []*booking.Booking{}
	}

	conflicts := booking.FindConflicts(amenityID, candidate, active, excludeID)
	if len(conflicts) > 0 {
		metrics.RecordConflict("advisory")
	}
	return conflicts
}

// snapshotWindow widens the candidate to whole UTC days so neighbouring checks
// share a cached snapshot.
func snapshotWindow(candidate booking.TimeRange) (time.Time, time.Time) {
	const day = 24 * time.Hour
	from := candidate.Start().UTC().Truncate(day)
	to := candidate.End().UTC().Truncate(day)
	if to.Before(candidate.End()) {
		to = to.Add(day)
	}
	return from, to
}
