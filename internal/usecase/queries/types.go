package queries

import (
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/domain/booking"
	"hub-booking/internal/domain/event"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID           uuid.UUID       `json:"id"`
	AmenityID    uuid.UUID       `json:"amenity_id"`
	MemberID     uuid.UUID       `json:"member_id"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Status       string          `json:"status"`
	Note         string          `json:"note,omitempty"`
	Recurrence   *RecurrenceView `json:"recurrence,omitempty"`
	CheckInTime  *time.Time      `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time      `json:"check_out_time,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type RecurrenceView struct {
	Frequency     string    `json:"frequency"`
	OriginalStart time.Time `json:"original_start"`
}

// AmenityView represents read-optimized amenity data
type AmenityView struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Capacity     int              `json:"capacity"`
	Description  string           `json:"description,omitempty"`
	IsAvailable  bool             `json:"is_available"`
	OpeningHours OpeningHoursView `json:"opening_hours"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type OpeningHoursView struct {
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	AvailableDays []int  `json:"available_days"`
	SlotMinutes   int    `json:"slot_minutes"`
	TimeZone      string `json:"time_zone"`
}

// EventView represents read-optimized event data
type EventView struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Location        string      `json:"location,omitempty"`
	StartsAt        time.Time   `json:"starts_at"`
	Capacity        int         `json:"capacity"`
	OrganizerID     uuid.UUID   `json:"organizer_id"`
	Status          string      `json:"status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	Attendees       []uuid.UUID `json:"attendees"`
	Waitlist        []uuid.UUID `json:"waitlist"`
	SpotsLeft       *int        `json:"spots_left,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type ConflictView struct {
	BookingID uuid.UUID `json:"booking_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type ConflictResult struct {
	HasConflicts bool           `json:"has_conflicts"`
	Conflicts    []ConflictView `json:"conflicts"`
}

type SlotView struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
	State     string    `json:"state"`
}

type DayAvailabilityView struct {
	AmenityID uuid.UUID  `json:"amenity_id"`
	Date      string     `json:"date"`
	Open      bool       `json:"open"`
	FreeSlots int        `json:"free_slots"`
	Slots     []SlotView `json:"slots"`
}

type RangeView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:           b.ID(),
		AmenityID:    b.AmenityID(),
		MemberID:     b.MemberID(),
		StartTime:    b.Start(),
		EndTime:      b.End(),
		Status:       b.Status().String(),
		Note:         b.Note().String(),
		CheckInTime:  b.CheckInTime(),
		CheckOutTime: b.CheckOutTime(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
	if p := b.Recurrence(); p != nil {
		v.Recurrence = &RecurrenceView{Frequency: p.Frequency.String(), OriginalStart: p.OriginalStart}
	}
	return v
}

func NewBookingViews(bs []*booking.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, NewBookingView(b))
	}
	return out
}

func NewAmenityView(a *amenity.Amenity) *AmenityView {
	av := a.Availability()
	days := make([]int, 0, len(av.AvailableDays))
	for _, d := range av.AvailableDays {
		days = append(days, int(d))
	}
	return &AmenityView{
		ID:          a.ID(),
		Name:        a.Name(),
		Type:        string(a.Type()),
		Capacity:    a.Capacity(),
		Description: a.Description(),
		IsAvailable: a.IsAvailable(),
		OpeningHours: OpeningHoursView{
			StartHour:     av.StartHour,
			EndHour:       av.EndHour,
			AvailableDays: days,
			SlotMinutes:   av.SlotMinutes,
			TimeZone:      a.Location().String(),
		},
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func NewEventView(e *event.Event) *EventView {
	v := &EventView{
		ID:              e.ID(),
		Title:           e.Title(),
		Description:     e.Description(),
		Location:        e.Location(),
		StartsAt:        e.StartsAt(),
		Capacity:        e.Capacity(),
		OrganizerID:     e.OrganizerID(),
		Status:          string(e.Status()),
		RejectionReason: e.RejectionReason(),
		Attendees:       e.Attendees(),
		Waitlist:        e.Waitlist(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
	if spots, limited := event.AvailableSpots(e.Capacity(), len(v.Attendees)); limited {
		v.SpotsLeft = &spots
	}
	return v
}

func NewConflictResult(conflicts []*booking.Booking) ConflictResult {
	views := make([]ConflictView, 0, len(conflicts))
	for _, c := range conflicts {
		views = append(views, ConflictView{
			BookingID: c.ID(),
			StartTime: c.Start(),
			EndTime:   c.End(),
			Status:    c.Status().String(),
		})
	}
	return ConflictResult{HasConflicts: len(views) > 0, Conflicts: views}
}
