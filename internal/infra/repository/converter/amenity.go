package converter

import (
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/pkg/errs"
	"hub-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AmenityRecord struct {
	ID            uuid.UUID
	Name          string
	Type          string
	Capacity      int32
	Description   string
	IsAvailable   bool
	StartHour     int16
	EndHour       int16
	AvailableDays []int16
	SlotMinutes   int16
	TimeZone      string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

const AmenityColumns = `id, name, type, capacity, description, is_available,
	start_hour, end_hour, available_days, slot_minutes, time_zone, created_at, updated_at`

func (r *AmenityRecord) ScanTargets() []any {
	return []any{
		&r.ID, &r.Name, &r.Type, &r.Capacity, &r.Description, &r.IsAvailable,
		&r.StartHour, &r.EndHour, &r.AvailableDays, &r.SlotMinutes, &r.TimeZone,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

// AmenityToDomain validates the stored opening pattern; a row with a bad zone
// or hours is rejected instead of producing a broken slot grid.
func AmenityToDomain(r AmenityRecord) (*amenity.Amenity, error) {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "amenity %s", r.ID)
	}
	days := make([]time.Weekday, len(r.AvailableDays))
	for i, d := range r.AvailableDays {
		days[i] = time.Weekday(d)
	}
	av, err := amenity.NewAvailability(int(r.StartHour), int(r.EndHour), days, int(r.SlotMinutes), loc)
	if err != nil {
		return nil, errs.Wrapf(err, "amenity %s", r.ID)
	}
	t := amenity.Type(r.Type)
	if !t.IsValid() {
		return nil, errs.Wrapf(amenity.ErrInvalidType, "amenity %s", r.ID)
	}

	return amenity.ReconstructAmenity(
		r.ID, r.Name, t, int(r.Capacity), r.Description, r.IsAvailable, av,
		r.CreatedAt.Time, r.UpdatedAt.Time,
	), nil
}

func AmenityToRecord(a *amenity.Amenity) AmenityRecord {
	av := a.Availability()
	days := make([]int16, len(av.AvailableDays))
	for i, d := range av.AvailableDays {
		days[i] = int16(d)
	}
	return AmenityRecord{
		ID:            a.ID(),
		Name:          a.Name(),
		Type:          string(a.Type()),
		Capacity:      int32(a.Capacity()),
		Description:   a.Description(),
		IsAvailable:   a.IsAvailable(),
		StartHour:     int16(av.StartHour),
		EndHour:       int16(av.EndHour),
		AvailableDays: days,
		SlotMinutes:   int16(av.SlotMinutes),
		TimeZone:      av.Location.String(),
		CreatedAt:     pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}
