package response

import (
	"time"

	"hub-booking/internal/domain/amenity"
	"hub-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AmenityResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	Capacity     int                  `json:"capacity"`
	Description  string               `json:"description,omitempty"`
	IsAvailable  bool                 `json:"is_available"`
	OpeningHours OpeningHoursResponse `json:"opening_hours"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

type OpeningHoursResponse struct {
	StartHour     int    `json:"start_hour"`
	EndHour       int    `json:"end_hour"`
	AvailableDays []int  `json:"available_days"`
	SlotMinutes   int    `json:"slot_minutes"`
	TimeZone      string `json:"time_zone"`
}

func FromAmenityView(v *queries.AmenityView) *AmenityResponse {
	return mapView[AmenityResponse](v)
}

func FromAmenity(a *amenity.Amenity) *AmenityResponse {
	return FromAmenityView(queries.NewAmenityView(a))
}

func FromAmenityViews(vs []*queries.AmenityView) []*AmenityResponse {
	out := make([]*AmenityResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromAmenityView(v))
	}
	return out
}
