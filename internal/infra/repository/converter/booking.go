package converter

import (
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRecord mirrors a bookings row.
type BookingRecord struct {
	ID                      uuid.UUID
	AmenityID               uuid.UUID
	MemberID                uuid.UUID
	StartTime               pgtype.Timestamptz
	EndTime                 pgtype.Timestamptz
	Status                  string
	Notes                   string
	RecurrenceFrequency     pgtype.Text
	RecurrenceOriginalStart pgtype.Timestamptz
	CheckInTime             pgtype.Timestamptz
	CheckOutTime            pgtype.Timestamptz
	CreatedAt               pgtype.Timestamptz
	UpdatedAt               pgtype.Timestamptz
}

const BookingColumns = `id, amenity_id, member_id, start_time, end_time, status, notes,
	recurrence_frequency, recurrence_original_start, check_in_time, check_out_time,
	created_at, updated_at`

// ScanTargets lists the fields in BookingColumns order.
func (r *BookingRecord) ScanTargets() []any {
	return []any{
		&r.ID, &r.AmenityID, &r.MemberID, &r.StartTime, &r.EndTime, &r.Status, &r.Notes,
		&r.RecurrenceFrequency, &r.RecurrenceOriginalStart, &r.CheckInTime, &r.CheckOutTime,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func BookingToDomain(r BookingRecord) (*booking.Booking, error) {
	status, err := booking.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	tr, err := booking.NewTimeRange(r.StartTime.Time, r.EndTime.Time)
	if err != nil {
		return nil, err
	}

	var recurrence *booking.RecurrencePattern
	if freq := pgconv.StringPtrFromPgtype(r.RecurrenceFrequency); freq != nil {
		recurrence = &booking.RecurrencePattern{
			Frequency:     booking.Frequency(*freq),
			OriginalStart: r.RecurrenceOriginalStart.Time,
		}
	}

	return booking.ReconstructBooking(
		r.ID, r.AmenityID, r.MemberID,
		tr,
		status,
		booking.NewNote(r.Notes),
		recurrence,
		pgconv.TimePtrFromPgtype(r.CheckInTime),
		pgconv.TimePtrFromPgtype(r.CheckOutTime),
		r.CreatedAt.Time, r.UpdatedAt.Time,
	), nil
}

func BookingToRecord(b *booking.Booking) BookingRecord {
	rec := BookingRecord{
		ID:           b.ID(),
		AmenityID:    b.AmenityID(),
		MemberID:     b.MemberID(),
		StartTime:    pgconv.TimeToPgtype(b.Start()),
		EndTime:      pgconv.TimeToPgtype(b.End()),
		Status:       b.Status().String(),
		Notes:        b.Note().String(),
		CheckInTime:  pgconv.TimePtrToPgtype(b.CheckInTime()),
		CheckOutTime: pgconv.TimePtrToPgtype(b.CheckOutTime()),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if p := b.Recurrence(); p != nil {
		freq := p.Frequency.String()
		rec.RecurrenceFrequency = pgconv.StringPtrToPgtype(&freq)
		rec.RecurrenceOriginalStart = pgconv.TimeToPgtype(p.OriginalStart)
	}
	return rec
}
