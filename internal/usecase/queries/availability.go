package queries

import (
	"context"
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/infra"
	"hub-booking/internal/pkg/clock"
	"hub-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DaysPerWeek             = 7
	DefaultAlternativeLimit = 3
)

type AmenityReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*amenity.Amenity, error)
	List(ctx context.Context) ([]*amenity.Amenity, error)
}

type AvailabilityQueries interface {
	// Day returns the slot grid of the calendar day of date in the amenity's time zone.
	Day(ctx context.Context, amenityID uuid.UUID, date time.Time) (*DayAvailabilityView, error)
	// Week returns seven consecutive day grids starting at date.
	Week(ctx context.Context, amenityID uuid.UUID, date time.Time) ([]*DayAvailabilityView, error)
	// Alternatives proposes free ranges with the candidate's duration on the candidate's day.
	Alternatives(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, limit int) ([]RangeView, error)
}

type availabilityQueriesImpl struct {
	amenities AmenityReader
	bookings  BookingSnapshotReader
	clock     clock.Clock
}

func NewAvailabilityQueries(amenities AmenityReader, bookings BookingSnapshotReader, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{amenities: amenities, bookings: bookings, clock: clk}
}

func (q *availabilityQueriesImpl) Day(ctx context.Context, amenityID uuid.UUID, date time.Time) (*DayAvailabilityView, error) {
	a, err := q.findAmenity(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	grid, err := q.grid(ctx, a, localDay(date, a.Location()))
	if err != nil {
		return nil, err
	}
	return newDayView(a.ID(), grid, q.clock.Now()), nil
}

func (q *availabilityQueriesImpl) Week(ctx context.Context, amenityID uuid.UUID, date time.Time) ([]*DayAvailabilityView, error) {
	a, err := q.findAmenity(ctx, amenityID)
	if err != nil {
		return nil, err
	}

	first := localDay(date, a.Location())
	bookings, err := q.bookings.ListActiveByAmenity(ctx, a.ID(), first, first.AddDate(0, 0, DaysPerWeek))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	days := make([]*DayAvailabilityView, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		grid := amenity.GenerateDaySlots(first.AddDate(0, 0, i), a.Availability(), bookings)
		days = append(days, newDayView(a.ID(), grid, now))
	}
	return days, nil
}

func (q *availabilityQueriesImpl) Alternatives(ctx context.Context, amenityID uuid.UUID, candidate booking.TimeRange, limit int) ([]RangeView, error) {
	if limit <= 0 {
		limit = DefaultAlternativeLimit
	}
	a, err := q.findAmenity(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	grid, err := q.grid(ctx, a, localDay(candidate.Start().In(a.Location()), a.Location()))
	if err != nil {
		return nil, err
	}

	ranges := grid.Alternatives(candidate.Duration(), q.clock.Now(), limit)
	out := make([]RangeView, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, RangeView{Start: r.Start(), End: r.End()})
	}
	return out, nil
}

func (q *availabilityQueriesImpl) findAmenity(ctx context.Context, id uuid.UUID) (*amenity.Amenity, error) {
	a, err := q.amenities.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAmenityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return a, nil
}

func (q *availabilityQueriesImpl) grid(ctx context.Context, a *amenity.Amenity, day time.Time) (amenity.DayGrid, error) {
	bookings, err := q.bookings.ListActiveByAmenity(ctx, a.ID(), day, day.AddDate(0, 0, 1))
	if err != nil {
		return amenity.DayGrid{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return amenity.GenerateDaySlots(day, a.Availability(), bookings), nil
}

// localDay keeps the calendar date of t and pins it to midnight in loc.
func localDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func newDayView(amenityID uuid.UUID, grid amenity.DayGrid, now time.Time) *DayAvailabilityView {
	slots := make([]SlotView, 0, len(grid.Slots))
	for i, s := range grid.Slots {
		slots = append(slots, SlotView{
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
			State:     string(grid.StateAt(i, now)),
		})
	}
	return &DayAvailabilityView{
		AmenityID: amenityID,
		Date:      grid.Date.Format(time.DateOnly),
		Open:      grid.Open,
		FreeSlots: grid.FreeCount(now),
		Slots:     slots,
	}
}
