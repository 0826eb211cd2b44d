package repository

import (
	"context"
	"time"

	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra"
	"hub-booking/internal/infra/db"
	"hub-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const activeStatuses = `('pending', 'approved', 'checked-in')`

var (
	selectBookingByID = `SELECT ` + converter.BookingColumns + ` FROM bookings WHERE id = $1`

	lockBookingByID = selectBookingByID + ` FOR UPDATE`

	selectActiveByAmenity = `SELECT ` + converter.BookingColumns + ` FROM bookings
		WHERE amenity_id = $1 AND status IN ` + activeStatuses + `
		AND start_time < $3 AND end_time > $2
		ORDER BY start_time, id`

	selectByMember = `SELECT ` + converter.BookingColumns + ` FROM bookings
		WHERE member_id = $1
		ORDER BY start_time DESC, id
		LIMIT $2`

	selectOverdueCheckedIn = `SELECT ` + converter.BookingColumns + ` FROM bookings
		WHERE status = 'checked-in' AND end_time <= $1
		ORDER BY end_time, id`

	selectCompletedBefore = `SELECT ` + converter.BookingColumns + ` FROM bookings
		WHERE status = 'completed' AND end_time < $1
		ORDER BY end_time, id
		LIMIT $2`

	insertBooking = `INSERT INTO bookings (` + converter.BookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	updateBooking = `UPDATE bookings SET
		start_time = $2, end_time = $3, status = $4, notes = $5,
		check_in_time = $6, check_out_time = $7, updated_at = $8
		WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, selectBookingByID, id)
}

func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, lockBookingByID, id)
}

func (r *BookingRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*booking.Booking, error) {
	var rec converter.BookingRecord
	if err := r.db.QueryRow(ctx, query, id).Scan(rec.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingToDomain(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) ListActiveByAmenity(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list active bookings", selectActiveByAmenity, amenityID, from, to)
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list member bookings", selectByMember, memberID, limit)
}

func (r *BookingRepository) ListOverdueCheckedIn(ctx context.Context, endedBefore time.Time) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list overdue bookings", selectOverdueCheckedIn, endedBefore)
}

func (r *BookingRepository) ListCompletedBefore(ctx context.Context, endedBefore time.Time, limit int) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list completed bookings", selectCompletedBefore, endedBefore, limit)
}

func (r *BookingRepository) list(ctx context.Context, msg, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.BookingRecord, error) {
		var rec converter.BookingRecord
		err := row.Scan(rec.ScanTargets()...)
		return rec, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err, infra.KindDBFailure)
	}

	result := make([]*booking.Booking, 0, len(records))
	for _, rec := range records {
		b, err := converter.BookingToDomain(rec)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed booking row", err, infra.KindDBFailure)
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	rec := converter.BookingToRecord(b)
	if _, err := r.db.Exec(ctx, insertBooking, rec.ScanTargets()...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	rec := converter.BookingToRecord(b)
	tag, err := r.db.Exec(ctx, updateBooking,
		rec.ID, rec.StartTime, rec.EndTime, rec.Status, rec.Notes,
		rec.CheckInTime, rec.CheckOutTime, rec.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
